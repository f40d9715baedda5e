package scan

import (
	"context"
	"testing"
	"time"

	"github.com/phayes/freeport"
)

// closedPort 一个当前没有监听的本地端口
func closedPort(t *testing.T) uint16 {
	t.Helper()
	port, err := freeport.GetFreePort()
	if err != nil {
		t.Fatalf("free port: %v", err)
	}
	return uint16(port)
}

func TestConnectProber(t *testing.T) {
	p := NewConnectProber(time.Second)

	if !p.Probe(context.Background(), localhost(listen(t))) {
		t.Fatalf("listening port reported closed")
	}
	if p.Probe(context.Background(), localhost(closedPort(t))) {
		t.Fatalf("closed port reported open")
	}
}

func TestConnectProber_CancelledContext(t *testing.T) {
	p := NewConnectProber(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if p.Probe(ctx, localhost(listen(t))) {
		t.Fatalf("probe with a cancelled context reported open")
	}
}

func TestNewConnectProber_DefaultTimeout(t *testing.T) {
	if got := NewConnectProber(0).dialer.Timeout; got != DefaultTimeout {
		t.Fatalf("timeout %v, want %v", got, DefaultTimeout)
	}
}
