package scan

import (
	"context"
	"net"
	"net/netip"
	"time"
)

// DefaultTimeout 单个端口探测的默认超时
const DefaultTimeout = 3 * time.Second

// ConnectProber 是TCP全连接探测,不需要root权限
type ConnectProber struct {
	dialer *net.Dialer
}

// NewConnectProber 创建一个TCP连接探测器,timeout<=0时使用DefaultTimeout
func NewConnectProber(timeout time.Duration) *ConnectProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ConnectProber{
		dialer: &net.Dialer{
			Timeout:   timeout,
			KeepAlive: -1, //扫描不需要保持连接
		},
	}
}

// Probe 连接成功即为开放,拒绝,重置,不可达,超时都视为未开放
func (c *ConnectProber) Probe(ctx context.Context, addr netip.AddrPort) bool {
	conn, err := c.dialer.DialContext(ctx, "tcp", addr.String())
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
