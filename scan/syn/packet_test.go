package syn

import (
	"net"
	"net/netip"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

var (
	localMAC  = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	remoteMAC = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02}
	localIP   = netip.MustParseAddr("192.0.2.1")
	remoteIP  = netip.MustParseAddr("192.0.2.99")
)

const localPort = layers.TCPPort(40000)

// reply 构造一个从remoteIP发回的TCP数据包
func reply(t *testing.T, srcPort uint16, dstPort layers.TCPPort, syn, ack, rst bool) []byte {
	t.Helper()
	eth := layers.Ethernet{SrcMAC: remoteMAC, DstMAC: localMAC, EthernetType: layers.EthernetTypeIPv4}
	ip4 := layers.IPv4{
		SrcIP:    remoteIP.AsSlice(),
		DstIP:    localIP.AsSlice(),
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
	}
	tcp := layers.TCP{
		SrcPort: layers.TCPPort(srcPort),
		DstPort: dstPort,
		SYN:     syn,
		ACK:     ack,
		RST:     rst,
		Window:  1024,
	}
	if err := tcp.SetNetworkLayerForChecksum(&ip4); err != nil {
		t.Fatalf("checksum layer: %v", err)
	}
	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, serializeOptions, &eth, &ip4, &tcp); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	return buf.Bytes()
}

func TestBuildSYN(t *testing.T) {
	data, err := buildSYN(localMAC, remoteMAC, localIP, remoteIP, localPort, 443)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	packet := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)
	eth, _ := packet.Layer(layers.LayerTypeEthernet).(*layers.Ethernet)
	ip4, _ := packet.Layer(layers.LayerTypeIPv4).(*layers.IPv4)
	tcp, _ := packet.Layer(layers.LayerTypeTCP).(*layers.TCP)
	if eth == nil || ip4 == nil || tcp == nil {
		t.Fatalf("packet missing layers: %v", packet)
	}
	if eth.DstMAC.String() != remoteMAC.String() {
		t.Fatalf("dst mac %s", eth.DstMAC)
	}
	if !ip4.SrcIP.Equal(localIP.AsSlice()) || !ip4.DstIP.Equal(remoteIP.AsSlice()) {
		t.Fatalf("ip %s -> %s", ip4.SrcIP, ip4.DstIP)
	}
	if !tcp.SYN || tcp.ACK || tcp.RST {
		t.Fatalf("flags syn=%v ack=%v rst=%v", tcp.SYN, tcp.ACK, tcp.RST)
	}
	if tcp.SrcPort != localPort || tcp.DstPort != 443 {
		t.Fatalf("ports %d -> %d", tcp.SrcPort, tcp.DstPort)
	}
}

func TestReplyDecoder(t *testing.T) {
	cases := map[string]struct {
		data     []byte
		wantOK   bool
		wantOpen bool
	}{
		"syn ack":         {reply(t, 443, localPort, true, true, false), true, true},
		"rst":             {reply(t, 443, localPort, false, false, true), true, false},
		"rst ack":         {reply(t, 443, localPort, false, true, true), true, false},
		"other dst port":  {reply(t, 443, localPort+1, true, true, false), false, false},
		"plain ack":       {reply(t, 443, localPort, false, true, false), false, false},
		"truncated frame": {[]byte{0x01, 0x02}, false, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			d := newReplyDecoder(localPort)
			key, open, ok := d.decode(tc.data)
			if ok != tc.wantOK || open != tc.wantOpen {
				t.Fatalf("got open=%v ok=%v, want open=%v ok=%v", open, ok, tc.wantOpen, tc.wantOK)
			}
			if ok && (key.ip != remoteIP || key.port != 443) {
				t.Fatalf("key %+v", key)
			}
		})
	}
}

func TestReplyDecoder_IgnoresARP(t *testing.T) {
	eth := layers.Ethernet{SrcMAC: remoteMAC, DstMAC: localMAC, EthernetType: layers.EthernetTypeARP}
	req := layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPReply,
		SourceHwAddress:   []byte(remoteMAC),
		SourceProtAddress: remoteIP.AsSlice(),
		DstHwAddress:      []byte(localMAC),
		DstProtAddress:    localIP.AsSlice(),
	}
	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, serializeOptions, &eth, &req); err != nil {
		t.Fatalf("serialize: %v", err)
	}

	if _, _, ok := newReplyDecoder(localPort).decode(buf.Bytes()); ok {
		t.Fatalf("arp packet decoded as a tcp reply")
	}
}

func TestListenerWaiters(t *testing.T) {
	l := &listener{waiters: map[replyKey][]chan bool{}}
	key := replyKey{ip: remoteIP, port: 80}
	a, b := make(chan bool, 1), make(chan bool, 1)
	l.waiters[key] = []chan bool{a, b}

	l.unregister(key, a)
	if got := l.waiters[key]; len(got) != 1 || got[0] != b {
		t.Fatalf("waiters after first unregister: %v", got)
	}
	l.unregister(key, b)
	if _, ok := l.waiters[key]; ok {
		t.Fatalf("key kept after last waiter left")
	}
}
