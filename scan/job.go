package scan

import (
	"context"
	"net/netip"
	"time"
)

//用于端口扫描,port是副本,只属于这个任务
type probeJob struct {
	addr netip.AddrPort //已经替换成目标端口的完整地址
	port Port
}

func (j probeJob) run(ctx context.Context, s *Scanner) Port {
	p := j.port
	if s.probe(ctx, j.addr) {
		p.State = PortOpen
	} else {
		p.State = PortClosed
	}
	if s.onProbe != nil {
		s.onProbe(p)
	}
	return p
}

//用于主机扫描
type targetJob struct {
	target Target
}

func (j targetJob) run(ctx context.Context, s *Scanner) Target {
	t := j.target
	logger := logTarget(t)
	logger.Debugf("开始扫描 %d 个端口", len(t.Ports))

	start := time.Now()
	t.Ports = s.ScanPorts(ctx, t.Address, t.Ports)

	open := 0
	for _, p := range t.Ports {
		if p.State == PortOpen {
			open++
		}
	}
	logger.WithField("latency", time.Since(start)).Debugf("扫描完毕,开放端口 %d 个", open)
	return t
}
