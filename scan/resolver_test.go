package scan

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/miekg/dns"
)

// startDNSServer 启动一个只回答zone中记录的UDP DNS服务,不在zone中的域名返回NXDOMAIN
func startDNSServer(t *testing.T, records ...string) string {
	t.Helper()
	zone := map[string][]dns.RR{}
	for _, s := range records {
		rr, err := dns.NewRR(s)
		if err != nil {
			t.Fatalf("bad record %q: %v", s, err)
		}
		zone[rr.Header().Name] = append(zone[rr.Header().Name], rr)
	}

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen udp: %v", err)
	}
	started := make(chan struct{})
	srv := &dns.Server{
		PacketConn:        pc,
		NotifyStartedFunc: func() { close(started) },
		Handler: dns.HandlerFunc(func(w dns.ResponseWriter, r *dns.Msg) {
			m := new(dns.Msg)
			m.SetReply(r)
			q := r.Question[0]
			rrs, ok := zone[q.Name]
			if !ok {
				m.Rcode = dns.RcodeNameError
			}
			for _, rr := range rrs {
				if rr.Header().Rrtype == q.Qtype {
					m.Answer = append(m.Answer, rr)
				}
			}
			_ = w.WriteMsg(m)
		}),
	}
	go func() { _ = srv.ActivateAndServe() }()
	<-started
	t.Cleanup(func() { _ = srv.Shutdown() })
	return pc.LocalAddr().String()
}

func TestDNSResolver(t *testing.T) {
	server := startDNSServer(t,
		"scanme.test. 60 IN A 192.0.2.10",
		"scanme.test. 60 IN A 192.0.2.11",
		"scanme.test. 60 IN AAAA 2001:db8::10",
		"v6only.test. 60 IN AAAA 2001:db8::20",
		"empty.test. 60 IN TXT \"nothing here\"",
	)
	r := NewDNSResolver(server, time.Second)

	cases := map[string][]string{
		"scanme.test": {"192.0.2.10", "192.0.2.11", "2001:db8::10"},
		"v6only.test": {"2001:db8::20"},
	}
	for host, want := range cases {
		t.Run(host, func(t *testing.T) {
			addrs, err := r.LookupAddrs(context.Background(), host)
			if err != nil {
				t.Fatalf("lookup: %v", err)
			}
			if len(addrs) != len(want) {
				t.Fatalf("got %v want %v", addrs, want)
			}
			for i := range addrs {
				if addrs[i].String() != want[i] {
					t.Fatalf("got %v want %v", addrs, want)
				}
			}
		})
	}

	for _, host := range []string{"missing.test", "empty.test"} {
		t.Run(host, func(t *testing.T) {
			if _, err := r.LookupAddrs(context.Background(), host); !errors.Is(err, ErrNoAddresses) {
				t.Fatalf("got %v, want ErrNoAddresses", err)
			}
		})
	}
}

func TestDNSResolver_FeedsTargets(t *testing.T) {
	server := startDNSServer(t, "scanme.test. 60 IN A 192.0.2.10")

	targets, err := ResolveTargets(context.Background(), []string{"scanme.test"}, NewDNSResolver(server, time.Second), CommonPorts(3))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(targets) != 1 || targets[0].Name != "scanme.test" || targets[0].Address.Addr().String() != "192.0.2.10" {
		t.Fatalf("got %+v", targets)
	}
}

func TestNewDNSResolver_DefaultPort(t *testing.T) {
	if got := NewDNSResolver("192.0.2.53", time.Second).server; got != "192.0.2.53:53" {
		t.Fatalf("server %q", got)
	}
	if got := NewDNSResolver("[2001:db8::53]:5353", time.Second).server; got != "[2001:db8::53]:5353" {
		t.Fatalf("server %q", got)
	}
}

func TestSystemResolver_Literal(t *testing.T) {
	addrs, err := SystemResolver{}.LookupAddrs(context.Background(), "127.0.0.1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(addrs) != 1 || addrs[0].String() != "127.0.0.1" {
		t.Fatalf("got %v", addrs)
	}
}
