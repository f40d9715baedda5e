package scan

import (
	"context"
	"errors"
	"io"
	"net/netip"
	"testing"
)

type staticResolver map[string][]netip.Addr

func (r staticResolver) LookupAddrs(_ context.Context, host string) ([]netip.Addr, error) {
	addrs, ok := r[host]
	if !ok {
		return nil, ErrNoAddresses
	}
	return addrs, nil
}

func drain(t *testing.T, ti *TargetIterator) []string {
	t.Helper()
	var out []string
	for {
		ip, err := ti.Next(context.Background())
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		out = append(out, ip.String())
	}
}

func TestTargetIterator(t *testing.T) {
	resolver := staticResolver{
		"scanme.test": {netip.MustParseAddr("192.0.2.10"), netip.MustParseAddr("2001:db8::10")},
	}
	cases := map[string]struct {
		target string
		name   string
		want   []string
	}{
		"ipv4 literal":  {"127.0.0.1", "", []string{"127.0.0.1"}},
		"ipv6 literal":  {"::1", "", []string{"::1"}},
		"mapped ipv4":   {"::ffff:10.0.0.1", "", []string{"10.0.0.1"}},
		"cidr":          {"192.168.1.0/30", "", []string{"192.168.1.0", "192.168.1.1", "192.168.1.2", "192.168.1.3"}},
		"unmasked cidr": {"10.0.0.5/31", "", []string{"10.0.0.4", "10.0.0.5"}},
		"single cidr":   {"10.0.0.5/32", "", []string{"10.0.0.5"}},
		"ipv6 cidr":     {"2001:db8::/127", "", []string{"2001:db8::", "2001:db8::1"}},
		"top of space":  {"255.255.255.254/31", "", []string{"255.255.255.254", "255.255.255.255"}},
		"hostname":      {"scanme.test", "scanme.test", []string{"192.0.2.10", "2001:db8::10"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ti := NewTargetIterator(tc.target, resolver)
			got := drain(t, ti)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v want %v", got, tc.want)
				}
			}
			if ti.Name() != tc.name {
				t.Fatalf("name %q want %q", ti.Name(), tc.name)
			}
		})
	}
}

func TestTargetIterator_ResolutionError(t *testing.T) {
	ti := NewTargetIterator("missing.test", staticResolver{})
	if _, err := ti.Next(context.Background()); !errors.Is(err, ErrNoAddresses) {
		t.Fatalf("got %v, want ErrNoAddresses", err)
	}

	ti = NewTargetIterator("missing.test", nil)
	if _, err := ti.Next(context.Background()); err == nil {
		t.Fatalf("hostname without resolver should fail")
	}
}

func TestResolveTargets(t *testing.T) {
	resolver := staticResolver{
		"scanme.test": {netip.MustParseAddr("192.0.2.10"), netip.MustParseAddr("192.0.2.11")},
	}
	ports := UserPorts([]uint16{22, 80})

	targets, err := ResolveTargets(context.Background(), []string{"scanme.test", "10.0.0.0/31"}, resolver, ports)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(targets) != 4 {
		t.Fatalf("got %d targets, want 4", len(targets))
	}
	for i, want := range []string{"scanme.test", "scanme.test", "", ""} {
		if targets[i].Name != want {
			t.Fatalf("target %d name %q want %q", i, targets[i].Name, want)
		}
		if targets[i].Address.Port() != 0 || len(targets[i].Ports) != 2 {
			t.Fatalf("target %d: %+v", i, targets[i])
		}
	}

	//每个目标持有自己的端口副本
	targets[0].Ports[0].State = PortOpen
	if targets[1].Ports[0].State != PortUnknown || ports[0].State != PortUnknown {
		t.Fatalf("port list shared between targets")
	}
}

func TestResolveTargets_FailureAbortsAll(t *testing.T) {
	targets, err := ResolveTargets(context.Background(), []string{"127.0.0.1", "missing.test"}, staticResolver{}, UserPorts([]uint16{80}))
	if !errors.Is(err, ErrNoAddresses) {
		t.Fatalf("got %v, want ErrNoAddresses", err)
	}
	if targets != nil {
		t.Fatalf("got partial targets %v", targets)
	}
}
