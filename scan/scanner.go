package scan

import (
	"context"
	"net/netip"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// Prober 判断单个地址上的端口是否接受连接,所有失败都折叠为false,不返回错误
type Prober interface {
	Probe(ctx context.Context, addr netip.AddrPort) bool
}

// Config 扫描引擎的配置
type Config struct {
	Timeout time.Duration //单个探测的超时,<=0时使用DefaultTimeout
	Workers int           //同时进行的探测数量上限,0表示不限制
	Prober  Prober        //为nil时使用ConnectProber
	OnProbe func(Port)    //每个端口完成后回调,会被并发调用
}

// Target 一个已解析的地址,以及要对它扫描的端口
type Target struct {
	Address netip.AddrPort //端口部分只是占位,每次探测时被替换
	Name    string         //域名解析出的目标会保留原始域名
	Ports   []Port
}

// NewTarget 每个Target持有独立的端口副本
func NewTarget(name string, addr netip.Addr, ports []Port) Target {
	owned := make([]Port, len(ports))
	copy(owned, ports)
	return Target{
		Address: netip.AddrPortFrom(addr, 0),
		Name:    name,
		Ports:   owned,
	}
}

// OpenPorts 返回开放的端口,必须在扫描完成后调用
func (t Target) OpenPorts() []Port {
	open := []Port{}
	for _, p := range t.Ports {
		if p.IsOpen() {
			open = append(open, p)
		}
	}
	return open
}

// IsUp 至少有一个开放端口
func (t Target) IsUp() bool {
	return len(t.OpenPorts()) > 0
}

// Scanner 并发扫描引擎:每个目标一个协程,每个端口一个协程
type Scanner struct {
	timeout time.Duration
	prober  Prober
	sem     *semaphore.Weighted //nil表示不限制并发
	onProbe func(Port)
}

// NewScanner 根据配置创建扫描引擎
func NewScanner(cfg Config) *Scanner {
	s := &Scanner{
		timeout: cfg.Timeout,
		prober:  cfg.Prober,
		onProbe: cfg.OnProbe,
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.prober == nil {
		s.prober = NewConnectProber(s.timeout)
	}
	if cfg.Workers > 0 { //信号量在所有目标之间共享,限制的是总的探测数量
		s.sem = semaphore.NewWeighted(int64(cfg.Workers))
	}
	return s
}

// ScanTargets 对每个目标并发执行ScanPorts,返回顺序为完成顺序
func (s *Scanner) ScanTargets(ctx context.Context, targets []Target) []Target {
	wg := &sync.WaitGroup{}
	resultChan := make(chan Target, len(targets))

	for _, t := range targets {
		wg.Add(1)
		go func(job targetJob) {
			defer wg.Done()
			resultChan <- job.run(ctx, s)
		}(targetJob{target: t})
	}

	wg.Wait() //所有目标完成之前阻塞在此
	close(resultChan)

	results := make([]Target, 0, len(targets))
	for t := range resultChan {
		results = append(results, t)
	}
	return results
}

// ScanPorts 对一个地址的所有端口并发探测,每个端口一个协程,返回的端口数量与输入相同
func (s *Scanner) ScanPorts(ctx context.Context, addr netip.AddrPort, ports []Port) []Port {
	wg := &sync.WaitGroup{}
	portChan := make(chan Port, len(ports))

	for _, p := range ports {
		wg.Add(1)
		//值拷贝,协程独占这个端口
		go func(job probeJob) {
			defer wg.Done()
			portChan <- job.run(ctx, s)
		}(probeJob{
			addr: netip.AddrPortFrom(addr.Addr(), p.Number),
			port: p,
		})
	}

	wg.Wait()
	close(portChan)

	results := make([]Port, 0, len(ports))
	for p := range portChan {
		results = append(results, p)
	}
	return results
}

func (s *Scanner) probe(ctx context.Context, addr netip.AddrPort) bool {
	if s.sem != nil {
		if err := s.sem.Acquire(ctx, 1); err != nil { //只会因为ctx被取消而失败
			return false
		}
		defer s.sem.Release(1)
	}
	return s.prober.Probe(ctx, addr)
}

// SortTargets 按地址和端口排序,扫描结果本身是完成顺序
func SortTargets(targets []Target) {
	for _, t := range targets {
		sortPorts(t.Ports)
	}
	sort.SliceStable(targets, func(i, j int) bool {
		if targets[i].Name != targets[j].Name {
			return targets[i].Name < targets[j].Name
		}
		return targets[i].Address.Addr().Less(targets[j].Address.Addr())
	})
}

func logTarget(t Target) *log.Entry {
	fields := log.Fields{"target": t.Address.Addr().String()}
	if t.Name != "" {
		fields["name"] = t.Name
	}
	return log.WithFields(fields)
}
