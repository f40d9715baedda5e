package syn

import (
	"context"
	"io"
	"net"
	"net/netip"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/gopacket"
	"golang.org/x/sync/singleflight"
)

// fakeHandle 记录发出的包,onWrite可以模拟对端回复
type fakeHandle struct {
	writes  atomic.Int32
	onWrite func(data []byte)
}

func (h *fakeHandle) ReadPacketData() ([]byte, gopacket.CaptureInfo, error) {
	return nil, gopacket.CaptureInfo{}, io.EOF
}

func (h *fakeHandle) WritePacketData(data []byte) error {
	h.writes.Add(1)
	if h.onWrite != nil {
		h.onWrite(data)
	}
	return nil
}

func (h *fakeHandle) Close() {}

func newTestListener(h *fakeHandle, lookup hwLookupFunc) *listener {
	return &listener{
		handle:  h,
		lookup:  lookup,
		iface:   &net.Interface{Name: "test0", HardwareAddr: localMAC},
		srcIP:   localIP,
		srcPort: localPort,
		waiters: map[replyKey][]chan bool{},
		macs:    map[netip.Addr]net.HardwareAddr{},
	}
}

// slowLookup 等待delay后返回remoteMAC,ctx先结束则返回错误
func slowLookup(delay time.Duration) hwLookupFunc {
	return func(ctx context.Context, _ *net.Interface, _, _, _ net.IP) (net.HardwareAddr, error) {
		select {
		case <-time.After(delay):
			return remoteMAC, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func TestProbePort_SharesTimeoutWithARP(t *testing.T) {
	const timeout = 300 * time.Millisecond
	h := &fakeHandle{} //目标不回复
	l := newTestListener(h, slowLookup(250*time.Millisecond))

	start := time.Now()
	if l.probePort(context.Background(), &singleflight.Group{}, remoteIP, nil, 443, timeout) {
		t.Fatalf("probe without reply reported open")
	}
	if elapsed := time.Since(start); elapsed > timeout+150*time.Millisecond {
		t.Fatalf("probe took %v, timeout is %v", elapsed, timeout)
	}
	if h.writes.Load() != 1 {
		t.Fatalf("SYN sent %d times", h.writes.Load())
	}
}

func TestProbePort_ARPSlowerThanTimeout(t *testing.T) {
	const timeout = 200 * time.Millisecond
	h := &fakeHandle{}
	l := newTestListener(h, slowLookup(time.Hour))

	start := time.Now()
	if l.probePort(context.Background(), &singleflight.Group{}, remoteIP, nil, 443, timeout) {
		t.Fatalf("probe reported open without a MAC")
	}
	if elapsed := time.Since(start); elapsed > timeout+150*time.Millisecond {
		t.Fatalf("probe took %v, timeout is %v", elapsed, timeout)
	}
	if h.writes.Load() != 0 {
		t.Fatalf("SYN sent without a MAC")
	}
}

func TestProbePort_CancelledContext(t *testing.T) {
	l := newTestListener(&fakeHandle{}, slowLookup(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if l.probePort(ctx, &singleflight.Group{}, remoteIP, nil, 443, time.Hour) {
		t.Fatalf("cancelled probe reported open")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("cancelled probe took %v", elapsed)
	}
}

func TestProbePort_Reply(t *testing.T) {
	cases := map[string]bool{"syn ack": true, "rst": false}
	for name, open := range cases {
		t.Run(name, func(t *testing.T) {
			var l *listener
			h := &fakeHandle{onWrite: func([]byte) {
				l.dispatch(replyKey{ip: remoteIP, port: 443}, open)
			}}
			l = newTestListener(h, slowLookup(0))

			if got := l.probePort(context.Background(), &singleflight.Group{}, remoteIP, nil, 443, time.Second); got != open {
				t.Fatalf("got open=%v want %v", got, open)
			}
			if _, ok := l.macs[remoteIP]; !ok {
				t.Fatalf("next hop MAC not cached")
			}
		})
	}
}
