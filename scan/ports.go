package scan

import (
	"fmt"
	"sort"
)

type PortState uint8

const (
	PortUnknown PortState = iota //尚未扫描
	PortOpen
	PortClosed //关闭或不可达,不做区分
)

func (s PortState) String() string {
	switch s {
	case PortOpen:
		return "open"
	case PortClosed:
		return "closed"
	}
	return "unknown"
}

// MaxCommonPorts 常用端口表最多提供的端口数量
const MaxCommonPorts = 5000

// UnknownService 用户指定的端口使用的服务名
const UnknownService = "unknown"

// Port 一个待扫描的端口,State只会被扫描它的协程修改一次
type Port struct {
	Service string
	Number  uint16
	State   PortState
}

// IsOpen 在扫描完成前调用属于使用错误,直接panic
func (p Port) IsOpen() bool {
	if p.State == PortUnknown {
		panic(fmt.Sprintf("port %d: no port scanning result available", p.Number))
	}
	return p.State == PortOpen
}

// CommonPorts 按开放频率返回前n个常用端口,上限为MaxCommonPorts和表的长度
func CommonPorts(n int) []Port {
	if n <= 0 {
		return []Port{}
	}
	if n > MaxCommonPorts {
		n = MaxCommonPorts
	}
	if n > len(knownPorts) {
		n = len(knownPorts)
	}
	ports := make([]Port, 0, n)
	for _, kp := range knownPorts[:n] {
		ports = append(ports, Port{Service: kp.service, Number: kp.number})
	}
	return ports
}

// UserPorts 用户在命令行指定的端口,服务名统一为unknown
func UserPorts(numbers []uint16) []Port {
	ports := make([]Port, 0, len(numbers))
	for _, n := range numbers {
		ports = append(ports, Port{Service: UnknownService, Number: n})
	}
	return ports
}

// MergePorts 合并多个端口列表,同一端口号只保留第一次出现的
func MergePorts(lists ...[]Port) []Port {
	seen := make(map[uint16]struct{})
	merged := []Port{}
	for _, list := range lists {
		for _, p := range list {
			if _, ok := seen[p.Number]; ok {
				continue
			}
			seen[p.Number] = struct{}{}
			merged = append(merged, p)
		}
	}
	return merged
}

func DescribePort(number uint16) string { //返回端口的描述
	if s, ok := portIndex[number]; ok {
		return s
	}
	return UnknownService
}

var portIndex map[uint16]string

func init() {
	portIndex = make(map[uint16]string, len(knownPorts))
	for _, kp := range knownPorts { //初始化端口索引
		if _, ok := portIndex[kp.number]; !ok {
			portIndex[kp.number] = kp.service
		}
	}
}

func sortPorts(ports []Port) {
	sort.SliceStable(ports, func(i, j int) bool {
		return ports[i].Number < ports[j].Number
	})
}
