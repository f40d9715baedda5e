package scan

import (
	"reflect"
	"testing"
)

func TestCommonPorts(t *testing.T) {
	cases := map[string]struct {
		n    int
		want int
	}{
		"zero":     {0, 0},
		"negative": {-3, 0},
		"five":     {5, 5},
		"top 1000": {1000, 1000},
		"over cap": {6000, MaxCommonPorts},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := CommonPorts(tc.n)
			if got == nil {
				t.Fatalf("CommonPorts(%d) returned nil", tc.n)
			}
			if len(got) != tc.want {
				t.Fatalf("CommonPorts(%d) returned %d ports, want %d", tc.n, len(got), tc.want)
			}
			for i, p := range got {
				if p.State != PortUnknown {
					t.Fatalf("port %d has state %s before scanning", p.Number, p.State)
				}
				if p.Number != knownPorts[i].number || p.Service != knownPorts[i].service {
					t.Fatalf("port %d = %+v, want rank order from the table", i, p)
				}
			}
		})
	}
}

func TestCommonPortsNeverExceedsMax(t *testing.T) {
	if len(knownPorts) < MaxCommonPorts {
		t.Fatalf("table has %d ports, want at least %d", len(knownPorts), MaxCommonPorts)
	}
	if got := len(CommonPorts(MaxCommonPorts + 1000)); got != MaxCommonPorts {
		t.Fatalf("got %d ports, cap is %d", got, MaxCommonPorts)
	}
}

func TestCommonPortsDefaultSet(t *testing.T) {
	ports := CommonPorts(1000)
	seen := make(map[uint16]bool, len(ports))
	for _, p := range ports {
		seen[p.Number] = true
	}
	for _, number := range []uint16{21, 22, 23, 25, 53, 80, 110, 139, 143, 443, 445, 3306, 3389, 5900, 8080} {
		if !seen[number] {
			t.Fatalf("port %d missing from the default 1000", number)
		}
	}
}

func TestKnownPortsUnique(t *testing.T) {
	seen := map[uint16]bool{}
	for _, kp := range knownPorts {
		if kp.number == 0 {
			t.Fatalf("port 0 in table")
		}
		if seen[kp.number] {
			t.Fatalf("port %d listed twice", kp.number)
		}
		seen[kp.number] = true
	}
}

func TestUserPorts(t *testing.T) {
	got := UserPorts([]uint16{8080, 22})
	want := []Port{
		{Service: UnknownService, Number: 8080},
		{Service: UnknownService, Number: 22},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestMergePorts(t *testing.T) {
	user := UserPorts([]uint16{22, 9999, 22})
	common := []Port{{Service: "ssh", Number: 22}, {Service: "http", Number: 80}}

	got := MergePorts(user, common)
	want := []Port{
		{Service: UnknownService, Number: 22},
		{Service: UnknownService, Number: 9999},
		{Service: "http", Number: 80},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}

	if got := MergePorts(); len(got) != 0 {
		t.Fatalf("merging nothing gave %v", got)
	}
}

func TestDescribePort(t *testing.T) {
	if got := DescribePort(22); got != "ssh" {
		t.Fatalf("DescribePort(22) = %q", got)
	}
	if got := DescribePort(65001); got != UnknownService {
		t.Fatalf("DescribePort(65001) = %q", got)
	}
}

func TestPortIsOpen(t *testing.T) {
	if !(Port{Number: 80, State: PortOpen}).IsOpen() {
		t.Fatalf("open port reported closed")
	}
	if (Port{Number: 80, State: PortClosed}).IsOpen() {
		t.Fatalf("closed port reported open")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("IsOpen on an unscanned port should panic")
		}
	}()
	Port{Number: 80}.IsOpen()
}

func TestPortStateString(t *testing.T) {
	for state, want := range map[PortState]string{
		PortUnknown: "unknown",
		PortOpen:    "open",
		PortClosed:  "closed",
	} {
		if got := state.String(); got != want {
			t.Fatalf("%d.String() = %q want %q", state, got, want)
		}
	}
}
