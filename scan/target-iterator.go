package scan

import (
	"context"
	"fmt"
	"io"
	"net/netip"
)

// TargetIterator 把一个输入的目标展开为地址:IP,CIDR网段,或者域名解析出的所有地址
type TargetIterator struct {
	target   string
	resolver Resolver
	isCIDR   bool
	ip       netip.Addr   //CIDR中下一个要返回的地址
	prefix   netip.Prefix //CIDR的网段
	addrs    []netip.Addr //IP或域名的解析结果
	resolved bool
	index    int
}

// NewTargetIterator 127.0.0.1/24 -> 127.0.0.0 ... 127.0.0.255
func NewTargetIterator(target string, resolver Resolver) *TargetIterator {
	prefix, err := netip.ParsePrefix(target)

	ti := &TargetIterator{
		target:   target,
		resolver: resolver,
		isCIDR:   err == nil, //看是否成功解析
	}

	if ti.isCIDR {
		ti.prefix = prefix.Masked() //还原成网段的第一个地址
		ti.ip = ti.prefix.Addr()
	}
	return ti
}

// Name 域名目标返回原始域名,IP和CIDR返回空
func (ti *TargetIterator) Name() string {
	if ti.isCIDR {
		return ""
	}
	if _, err := netip.ParseAddr(ti.target); err == nil {
		return ""
	}
	return ti.target
}

// Next 返回下一个地址,全部返回后为io.EOF
func (ti *TargetIterator) Next(ctx context.Context) (netip.Addr, error) {
	if ti.isCIDR {
		if !ti.ip.IsValid() || !ti.prefix.Contains(ti.ip) { //Next()溢出时返回零值
			return netip.Addr{}, io.EOF
		}
		ip := ti.ip
		ti.ip = ti.ip.Next()
		return ip, nil
	}

	if !ti.resolved {
		addrs, err := ti.resolve(ctx)
		if err != nil {
			return netip.Addr{}, err
		}
		ti.addrs = addrs
		ti.resolved = true
	}
	if ti.index >= len(ti.addrs) {
		return netip.Addr{}, io.EOF
	}
	ip := ti.addrs[ti.index]
	ti.index++
	return ip, nil
}

func (ti *TargetIterator) resolve(ctx context.Context) ([]netip.Addr, error) {
	//先按IP解析,不是IP再当作域名
	if ip, err := netip.ParseAddr(ti.target); err == nil {
		return []netip.Addr{ip.Unmap()}, nil
	}
	if ti.resolver == nil {
		return nil, fmt.Errorf("lookup %s: no resolver configured", ti.target)
	}
	addrs, err := ti.resolver.LookupAddrs(ctx, ti.target)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("lookup %s: %w", ti.target, ErrNoAddresses)
	}
	return addrs, nil
}

// ResolveTargets 为每个解析出的地址构建一个Target,任何一个解析失败都直接返回错误
func ResolveTargets(ctx context.Context, inputs []string, resolver Resolver, ports []Port) ([]Target, error) {
	var targets []Target
	for _, input := range inputs {
		ti := NewTargetIterator(input, resolver)
		for {
			ip, err := ti.Next(ctx)
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("resolve target %q: %w", input, err)
			}
			targets = append(targets, NewTarget(ti.Name(), ip, ports))
		}
	}
	return targets, nil
}
