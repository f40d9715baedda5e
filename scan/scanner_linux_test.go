package scan

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"syscall"
	"testing"
	"time"
)

// stalledListener 返回一个accept队列已满的本地端口,新的连接请求会被内核丢弃,拨号一直挂起
func stalledListener(t *testing.T) uint16 {
	t.Helper()
	fd, err := syscall.Socket(syscall.AF_INET, syscall.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("socket: %v", err)
	}
	t.Cleanup(func() { syscall.Close(fd) })
	if err := syscall.Bind(fd, &syscall.SockaddrInet4{Addr: [4]byte{127, 0, 0, 1}}); err != nil {
		t.Fatalf("bind: %v", err)
	}
	if err := syscall.Listen(fd, 0); err != nil { //backlog为0,队列里只能放一个连接
		t.Fatalf("listen: %v", err)
	}
	sa, err := syscall.Getsockname(fd)
	if err != nil {
		t.Fatalf("getsockname: %v", err)
	}
	port := uint16(sa.(*syscall.SockaddrInet4).Port)
	addr := localhost(port).String()

	//从不accept,填满队列
	for i := 0; i < 8; i++ {
		conn, err := net.DialTimeout("tcp", addr, 200*time.Millisecond)
		if err != nil {
			break
		}
		t.Cleanup(func() { conn.Close() })
	}

	_, err = net.DialTimeout("tcp", addr, 200*time.Millisecond)
	var ne net.Error
	if !errors.As(err, &ne) || !ne.Timeout() {
		t.Skipf("accept queue overflow does not stall dials here: %v", err)
	}
	return port
}

func TestScanPorts_StalledDialsRespectTimeout(t *testing.T) {
	const timeout = 300 * time.Millisecond
	port := stalledListener(t)

	numbers := make([]uint16, 200)
	for i := range numbers {
		numbers[i] = port
	}

	start := time.Now()
	got := NewScanner(Config{Timeout: timeout}).ScanPorts(context.Background(), netip.AddrPortFrom(netip.MustParseAddr("127.0.0.1"), 0), UserPorts(numbers))
	elapsed := time.Since(start)

	if elapsed < timeout-50*time.Millisecond {
		t.Fatalf("scan finished in %v, dials did not wait for the %v timeout", elapsed, timeout)
	}
	if elapsed > timeout+500*time.Millisecond {
		t.Fatalf("200 stalled dials took %v with a %v timeout, expected them to overlap", elapsed, timeout)
	}
	if len(got) != len(numbers) {
		t.Fatalf("got %d ports, want %d", len(got), len(numbers))
	}
	for _, p := range got {
		if p.State != PortClosed {
			t.Fatalf("port %d: state %s, want closed", p.Number, p.State)
		}
	}
}

func TestConnectProber_StalledDial(t *testing.T) {
	const timeout = 200 * time.Millisecond
	addr := localhost(stalledListener(t))

	start := time.Now()
	if NewConnectProber(timeout).Probe(context.Background(), addr) {
		t.Fatalf("stalled dial reported open")
	}
	if elapsed := time.Since(start); elapsed < timeout-50*time.Millisecond || elapsed > timeout+300*time.Millisecond {
		t.Fatalf("probe took %v, timeout is %v", elapsed, timeout)
	}
}
