package scan

import (
	"context"
	"net"
	"net/netip"
	"sync/atomic"
	"testing"
	"time"
)

// fakeProber 按地址返回固定结果,并记录同时进行的探测数量
type fakeProber struct {
	open     map[netip.AddrPort]bool
	delay    time.Duration
	inflight int32
	peak     int32
	calls    int32
}

func (f *fakeProber) Probe(ctx context.Context, addr netip.AddrPort) bool {
	atomic.AddInt32(&f.calls, 1)
	cur := atomic.AddInt32(&f.inflight, 1)
	defer atomic.AddInt32(&f.inflight, -1)
	for {
		peak := atomic.LoadInt32(&f.peak)
		if cur <= peak || atomic.CompareAndSwapInt32(&f.peak, peak, cur) {
			break
		}
	}

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return false
		}
	}
	if ctx.Err() != nil {
		return false
	}
	return f.open[addr]
}

// listen 启动一个本地TCP服务,接受连接后立即关闭
func listen(t *testing.T) uint16 {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()
	return uint16(l.Addr().(*net.TCPAddr).Port)
}

func localhost(port uint16) netip.AddrPort {
	return netip.AddrPortFrom(netip.MustParseAddr("127.0.0.1"), port)
}

func TestScanPorts_OpenListener(t *testing.T) {
	port := listen(t)
	s := NewScanner(Config{Timeout: time.Second})

	got := s.ScanPorts(context.Background(), localhost(0), UserPorts([]uint16{port}))
	if len(got) != 1 {
		t.Fatalf("got %d ports, want 1", len(got))
	}
	if got[0].Number != port || got[0].State != PortOpen {
		t.Fatalf("got %+v, want port %d open", got[0], port)
	}
}

func TestScanPorts_ClosedPortReturnsWithinTimeout(t *testing.T) {
	port := closedPort(t)
	s := NewScanner(Config{})

	start := time.Now()
	got := s.ScanPorts(context.Background(), localhost(0), UserPorts([]uint16{port}))
	elapsed := time.Since(start)

	if len(got) != 1 || got[0].State != PortClosed {
		t.Fatalf("got %+v, want port %d closed", got, port)
	}
	if elapsed > DefaultTimeout+500*time.Millisecond {
		t.Fatalf("scan took %v, want at most %v", elapsed, DefaultTimeout)
	}
}

func TestScanPorts_Completeness(t *testing.T) {
	prober := &fakeProber{open: map[netip.AddrPort]bool{localhost(80): true}}
	s := NewScanner(Config{Prober: prober})

	//重复的端口不去重,各自扫描
	input := UserPorts([]uint16{80, 80, 81, 82})
	got := s.ScanPorts(context.Background(), localhost(0), input)

	if len(got) != len(input) {
		t.Fatalf("got %d ports, want %d", len(got), len(input))
	}
	counts := map[uint16]int{}
	for _, p := range got {
		if p.State == PortUnknown {
			t.Fatalf("port %d left unscanned", p.Number)
		}
		if p.IsOpen() != (p.Number == 80) {
			t.Fatalf("port %d state %s", p.Number, p.State)
		}
		counts[p.Number]++
	}
	if counts[80] != 2 || counts[81] != 1 || counts[82] != 1 {
		t.Fatalf("unexpected port multiset %v", counts)
	}
	for _, p := range input {
		if p.State != PortUnknown {
			t.Fatalf("input port %d was modified", p.Number)
		}
	}
}

func TestScanTargets_TwoTargets(t *testing.T) {
	a := netip.MustParseAddr("10.0.0.1")
	b := netip.MustParseAddr("10.0.0.2")
	prober := &fakeProber{open: map[netip.AddrPort]bool{
		netip.AddrPortFrom(a, 80):  true,
		netip.AddrPortFrom(b, 443): true,
	}}
	ports := UserPorts([]uint16{22, 80, 443})
	targets := []Target{NewTarget("", a, ports), NewTarget("", b, ports)}

	got := NewScanner(Config{Prober: prober}).ScanTargets(context.Background(), targets)
	if len(got) != 2 {
		t.Fatalf("got %d targets, want 2", len(got))
	}
	wantOpen := map[netip.Addr]uint16{a: 80, b: 443}
	for _, tgt := range got {
		if len(tgt.Ports) != 3 {
			t.Fatalf("%s: got %d ports, want 3", tgt.Address, len(tgt.Ports))
		}
		open := tgt.OpenPorts()
		if len(open) != 1 {
			t.Fatalf("%s: got %d open ports, want 1", tgt.Address, len(open))
		}
		if open[0].Number != wantOpen[tgt.Address.Addr()] {
			t.Fatalf("%s: port %d open, want %d", tgt.Address, open[0].Number, wantOpen[tgt.Address.Addr()])
		}
	}
}

func TestScanTargets_Isolation(t *testing.T) {
	a := NewTarget("", netip.MustParseAddr("10.0.0.1"), UserPorts([]uint16{1, 2, 3}))
	b := NewTarget("", netip.MustParseAddr("10.0.0.2"), UserPorts([]uint16{100, 200}))

	got := NewScanner(Config{Prober: &fakeProber{}}).ScanTargets(context.Background(), []Target{a, b})
	if len(got) != 2 {
		t.Fatalf("got %d targets, want 2", len(got))
	}
	allowed := map[netip.Addr]map[uint16]bool{
		a.Address.Addr(): {1: true, 2: true, 3: true},
		b.Address.Addr(): {100: true, 200: true},
	}
	for _, tgt := range got {
		want := allowed[tgt.Address.Addr()]
		if len(tgt.Ports) != len(want) {
			t.Fatalf("%s: got %d ports, want %d", tgt.Address, len(tgt.Ports), len(want))
		}
		for _, p := range tgt.Ports {
			if !want[p.Number] {
				t.Fatalf("%s: port %d leaked from another target", tgt.Address, p.Number)
			}
		}
	}
}

func TestScanTargets_EmptyPorts(t *testing.T) {
	target := NewTarget("", netip.MustParseAddr("127.0.0.1"), CommonPorts(0))

	got := NewScanner(Config{}).ScanTargets(context.Background(), []Target{target})
	if len(got) != 1 {
		t.Fatalf("got %d targets, want 1", len(got))
	}
	if got[0].Address != target.Address || len(got[0].Ports) != 0 {
		t.Fatalf("got %+v, want target unchanged with no ports", got[0])
	}
}

func TestScanTargets_NoTargets(t *testing.T) {
	if got := NewScanner(Config{}).ScanTargets(context.Background(), nil); len(got) != 0 {
		t.Fatalf("got %v, want no targets", got)
	}
}

func TestScanTargets_SlowProbesRunConcurrently(t *testing.T) {
	const delay = 200 * time.Millisecond
	prober := &fakeProber{delay: delay}

	numbers := make([]uint16, 250)
	for i := range numbers {
		numbers[i] = uint16(i + 1)
	}
	targets := []Target{
		NewTarget("", netip.MustParseAddr("10.0.0.1"), UserPorts(numbers)),
		NewTarget("", netip.MustParseAddr("10.0.0.2"), UserPorts(numbers)),
	}

	start := time.Now()
	got := NewScanner(Config{Prober: prober}).ScanTargets(context.Background(), targets)
	elapsed := time.Since(start)

	if elapsed > delay+500*time.Millisecond {
		t.Fatalf("500 probes of %v took %v, expected them to overlap", delay, elapsed)
	}
	for _, tgt := range got {
		if len(tgt.Ports) != len(numbers) {
			t.Fatalf("%s: got %d ports, want %d", tgt.Address, len(tgt.Ports), len(numbers))
		}
	}
}

func TestScanPorts_WorkersBoundInflight(t *testing.T) {
	prober := &fakeProber{delay: 20 * time.Millisecond}
	s := NewScanner(Config{Prober: prober, Workers: 4})

	numbers := make([]uint16, 50)
	for i := range numbers {
		numbers[i] = uint16(i + 1)
	}
	got := s.ScanPorts(context.Background(), localhost(0), UserPorts(numbers))

	if len(got) != len(numbers) {
		t.Fatalf("got %d ports, want %d", len(got), len(numbers))
	}
	if peak := atomic.LoadInt32(&prober.peak); peak > 4 {
		t.Fatalf("%d probes in flight, limit is 4", peak)
	}
	if calls := atomic.LoadInt32(&prober.calls); calls != int32(len(numbers)) {
		t.Fatalf("prober called %d times, want %d", calls, len(numbers))
	}
}

func TestScanPorts_CancelledContextReportsClosed(t *testing.T) {
	prober := &fakeProber{
		open:  map[netip.AddrPort]bool{localhost(80): true},
		delay: time.Second,
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{0, 2} {
		s := NewScanner(Config{Prober: prober, Workers: workers})
		got := s.ScanPorts(ctx, localhost(0), UserPorts([]uint16{80, 81, 82}))
		if len(got) != 3 {
			t.Fatalf("workers=%d: got %d ports, want 3", workers, len(got))
		}
		for _, p := range got {
			if p.State != PortClosed {
				t.Fatalf("workers=%d: port %d is %s after cancel", workers, p.Number, p.State)
			}
		}
	}
}

func TestScanTargets_OnProbe(t *testing.T) {
	var seen int32
	s := NewScanner(Config{
		Prober: &fakeProber{},
		OnProbe: func(p Port) {
			if p.State == PortUnknown {
				t.Errorf("callback got unscanned port %d", p.Number)
			}
			atomic.AddInt32(&seen, 1)
		},
	})
	targets := []Target{
		NewTarget("", netip.MustParseAddr("10.0.0.1"), UserPorts([]uint16{1, 2, 3})),
		NewTarget("", netip.MustParseAddr("10.0.0.2"), UserPorts([]uint16{4, 5})),
	}
	s.ScanTargets(context.Background(), targets)

	if seen != 5 {
		t.Fatalf("OnProbe called %d times, want 5", seen)
	}
}

func TestSortTargets(t *testing.T) {
	targets := []Target{
		{Address: netip.AddrPortFrom(netip.MustParseAddr("10.0.0.9"), 0), Ports: UserPorts([]uint16{443, 22})},
		{Address: netip.AddrPortFrom(netip.MustParseAddr("10.0.0.10"), 0)},
		{Address: netip.AddrPortFrom(netip.MustParseAddr("10.0.0.1"), 0), Name: "b.test"},
	}
	SortTargets(targets)

	want := []string{"10.0.0.9", "10.0.0.10", "10.0.0.1"}
	for i, tgt := range targets {
		if tgt.Address.Addr().String() != want[i] {
			t.Fatalf("position %d: got %s want %s", i, tgt.Address.Addr(), want[i])
		}
	}
	if targets[0].Ports[0].Number != 22 {
		t.Fatalf("ports not sorted: %v", targets[0].Ports)
	}
}
