package scan

import (
	"bytes"
	"net/netip"
	"testing"

	"github.com/fatih/color"
)

func TestWriteReport(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	targets := []Target{
		{
			Address: netip.AddrPortFrom(netip.MustParseAddr("192.0.2.10"), 0),
			Name:    "scanme.test",
			Ports: []Port{
				{Service: "http", Number: 80, State: PortOpen},
				{Service: "ssh", Number: 22, State: PortOpen},
			},
		},
		{
			Address: netip.AddrPortFrom(netip.MustParseAddr("10.0.0.2"), 0),
			Ports:   []Port{{Service: "telnet", Number: 23, State: PortClosed}},
		},
		{
			Address: netip.AddrPortFrom(netip.MustParseAddr("10.0.0.1"), 0),
			Ports: []Port{
				{Service: UnknownService, Number: 8080, State: PortOpen},
				{Service: "smtp", Number: 25, State: PortClosed},
			},
		},
	}

	cases := map[string]struct {
		upOnly bool
		want   string
	}{
		"all hosts": {false, "Open tcp ports for 10.0.0.1:\n" +
			"  8080\tunknown\n" +
			"Open tcp ports for 10.0.0.2:\n" +
			"Open tcp ports for scanme.test (192.0.2.10):\n" +
			"  22\tssh\n" +
			"  80\thttp\n"},
		"up only": {true, "Open tcp ports for 10.0.0.1:\n" +
			"  8080\tunknown\n" +
			"Open tcp ports for scanme.test (192.0.2.10):\n" +
			"  22\tssh\n" +
			"  80\thttp\n"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteReport(&buf, targets, tc.upOnly); err != nil {
				t.Fatalf("write: %v", err)
			}
			if buf.String() != tc.want {
				t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), tc.want)
			}
		})
	}
}
