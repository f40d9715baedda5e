package syn

import (
	"math/rand"
	"net"
	"net/netip"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

var serializeOptions = gopacket.SerializeOptions{
	FixLengths:       true,
	ComputeChecksums: true,
}

// replyKey 用回复的来源地址和端口找到等待中的探测
type replyKey struct {
	ip   netip.Addr
	port uint16
}

// buildSYN 构造一个以太网+IPv4+TCP SYN数据包
func buildSYN(srcMAC, dstMAC net.HardwareAddr, src, dst netip.Addr, srcPort layers.TCPPort, dstPort uint16) ([]byte, error) {
	eth := layers.Ethernet{
		SrcMAC:       srcMAC,
		DstMAC:       dstMAC,
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip4 := layers.IPv4{
		SrcIP:    src.AsSlice(),
		DstIP:    dst.AsSlice(),
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
	}
	tcp := layers.TCP{
		SrcPort: srcPort,
		DstPort: layers.TCPPort(dstPort),
		Seq:     rand.Uint32(),
		Window:  1024,
		SYN:     true,
	}
	if err := tcp.SetNetworkLayerForChecksum(&ip4); err != nil {
		return nil, err
	}

	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, serializeOptions, &eth, &ip4, &tcp); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// replyDecoder 解析SYN的回复,不是并发安全的,每个读协程持有一个
type replyDecoder struct {
	eth     layers.Ethernet
	ip4     layers.IPv4
	tcp     layers.TCP
	parser  *gopacket.DecodingLayerParser
	decoded []gopacket.LayerType
	port    layers.TCPPort //本地源端口,只处理发给它的回复
}

func newReplyDecoder(port layers.TCPPort) *replyDecoder {
	d := &replyDecoder{port: port}
	d.parser = gopacket.NewDecodingLayerParser(layers.LayerTypeEthernet, &d.eth, &d.ip4, &d.tcp)
	d.parser.IgnoreUnsupported = true //TCP之后的payload不需要解析
	return d
}

// decode SYN+ACK为开放,RST为关闭,其他数据包ok为false
func (d *replyDecoder) decode(data []byte) (key replyKey, open bool, ok bool) {
	if err := d.parser.DecodeLayers(data, &d.decoded); err != nil {
		return key, false, false
	}
	hasTCP := false
	for _, layerType := range d.decoded {
		if layerType == layers.LayerTypeTCP {
			hasTCP = true
		}
	}
	if !hasTCP || d.tcp.DstPort != d.port {
		return key, false, false
	}

	src, valid := netip.AddrFromSlice(d.ip4.SrcIP)
	if !valid {
		return key, false, false
	}
	key = replyKey{ip: src.Unmap(), port: uint16(d.tcp.SrcPort)}

	switch {
	case d.tcp.SYN && d.tcp.ACK:
		return key, true, true
	case d.tcp.RST:
		return key, false, true
	}
	return key, false, false
}
