package syn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"github.com/mostlygeek/arp"
)

var errARPTimeout = errors.New("timeout getting ARP reply")

// lookupHwAddr 返回下一跳的MAC地址,有网关时是网关的MAC
func lookupHwAddr(ctx context.Context, iface *net.Interface, srcIP, dstIP, gateway net.IP) (net.HardwareAddr, error) {
	arpDst := dstIP
	if gateway != nil {
		arpDst = gateway
	}

	//先查看ARP中是否有缓存,有且正确的话直接返回
	macStr := arp.Search(arpDst.String())
	if macStr != "" && macStr != "00:00:00:00:00:00" {
		if mac, err := net.ParseMAC(macStr); err == nil {
			return mac, nil
		}
	}

	handle, err := pcap.OpenLive(iface.Name, 65536, true, 100*time.Millisecond)
	if err != nil {
		return nil, err
	}
	defer handle.Close()
	if err := handle.SetBPFFilter("arp"); err != nil {
		return nil, err
	}

	eth := layers.Ethernet{
		SrcMAC:       iface.HardwareAddr,
		DstMAC:       net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		EthernetType: layers.EthernetTypeARP,
	}
	req := layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   []byte(iface.HardwareAddr),
		SourceProtAddress: []byte(srcIP.To4()),
		DstHwAddress:      []byte{0, 0, 0, 0, 0, 0},
		DstProtAddress:    []byte(arpDst.To4()),
	}
	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, serializeOptions, &eth, &req); err != nil {
		return nil, err
	}
	if err := handle.WritePacketData(buf.Bytes()); err != nil {
		return nil, err
	}

	for ctx.Err() == nil { //读超时100ms,每轮都会检查ctx
		data, _, err := handle.ReadPacketData()
		if err == pcap.NextErrorTimeoutExpired {
			continue
		} else if err != nil {
			return nil, err
		}
		packet := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.NoCopy)
		if arpLayer := packet.Layer(layers.LayerTypeARP); arpLayer != nil {
			reply := arpLayer.(*layers.ARP)
			if reply.Operation == layers.ARPReply && bytes.Equal(reply.SourceProtAddress, arpDst.To4()) {
				return net.HardwareAddr(reply.SourceHwAddress), nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %v", errARPTimeout, ctx.Err())
}
