package cmd

import (
	"bytes"
	"context"
	"errors"
	"net"
	"reflect"
	"strconv"
	"testing"

	"github.com/fatih/color"
	"github.com/miekg/dns"

	"portscan/scan"
)

func TestGetPorts_Valid(t *testing.T) {
	cases := map[string][]uint16{
		"":                {},
		"22":              {22},
		"22,80":           {22, 80},
		"80, 22":          {80, 22},
		"1-3":             {1, 2, 3},
		"22,80,8000-8002": {22, 80, 8000, 8001, 8002},
		"65534-65535":     {65534, 65535},
		"5-5":             {5},
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			got, err := getPorts(input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) == 0 && len(want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("got %v want %v", got, want)
			}
		})
	}
}

func TestGetPorts_Invalid(t *testing.T) {
	cases := []string{
		"0",       // invalid port
		"65536",   // invalid port
		"10-1",    // reversed range
		"abc",     // bad token
		"22,",     // empty token
		"1-70000", // out of range in range
		"1-2-3",   // bad range
		"-5",      // missing start
	}
	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			if _, err := getPorts(input); err == nil {
				t.Fatalf("expected error for %q", input)
			}
		})
	}
}

func TestSelectPorts(t *testing.T) {
	t.Run("default common ports", func(t *testing.T) {
		got, err := selectPorts("", 10, false)
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if !reflect.DeepEqual(got, scan.CommonPorts(10)) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("explicit ports only", func(t *testing.T) {
		got, err := selectPorts("8080,22", 1000, false)
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if !reflect.DeepEqual(got, scan.UserPorts([]uint16{8080, 22})) {
			t.Fatalf("got %v", got)
		}
	})

	t.Run("explicit ports merged with top", func(t *testing.T) {
		got, err := selectPorts("80,9999", 3, true)
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		// 80在常用端口表中也存在,只保留一次
		seen := map[uint16]int{}
		for _, p := range got {
			seen[p.Number]++
		}
		for number, n := range seen {
			if n != 1 {
				t.Fatalf("port %d listed %d times", number, n)
			}
		}
		if got[0].Number != 80 || got[1].Number != 9999 {
			t.Fatalf("explicit ports should come first: %v", got)
		}
	})

	t.Run("bad selection", func(t *testing.T) {
		if _, err := selectPorts("x", 0, false); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestCreateProber(t *testing.T) {
	p, closeProber, err := createProber("CONNECT", scan.DefaultTimeout)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer closeProber()
	if _, ok := p.(*scan.ConnectProber); !ok {
		t.Fatalf("got %T", p)
	}

	if _, _, err := createProber("udp", scan.DefaultTimeout); err == nil {
		t.Fatalf("expected error for unknown scan type")
	}
}

func TestRunScan(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()
	port := l.Addr().(*net.TCPAddr).Port

	noColor := color.NoColor
	color.NoColor = true
	oldPorts, oldTimeout, oldUpOnly := portSelection, timeoutMS, hideUnavailableHosts
	t.Cleanup(func() {
		color.NoColor = noColor
		portSelection, timeoutMS, hideUnavailableHosts = oldPorts, oldTimeout, oldUpOnly
		rootCmd.SetOut(nil)
	})

	portSelection = strconv.Itoa(port)
	timeoutMS = 1000
	hideUnavailableHosts = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	if err := runScan(context.Background(), rootCmd, []string{"127.0.0.1"}); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "Open tcp ports for 127.0.0.1:\n  " + strconv.Itoa(port) + "\t" + scan.UnknownService + "\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

// nxdomainServer 对所有查询都返回NXDOMAIN
func nxdomainServer(t *testing.T) string {
	t.Helper()
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
			m.SetRcode(r, dns.RcodeNameError)
			_ = w.WriteMsg(m)
		}),
	}
	go func() { _ = srv.ActivateAndServe() }()
	<-started
	t.Cleanup(func() { _ = srv.Shutdown() })
	return pc.LocalAddr().String()
}

func TestRunScan_ResolutionFailure(t *testing.T) {
	oldPorts, oldResolver := portSelection, resolverAddr
	t.Cleanup(func() { portSelection, resolverAddr = oldPorts, oldResolver })

	portSelection = "80"
	resolverAddr = nxdomainServer(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)

	err := runScan(context.Background(), rootCmd, []string{"127.0.0.1", "missing.test"})
	if !errors.Is(err, scan.ErrNoAddresses) {
		t.Fatalf("got %v, want ErrNoAddresses", err)
	}
	if out.Len() != 0 {
		t.Fatalf("report printed despite resolution failure: %q", out.String())
	}
}
