// Package syn 实现半开放(SYN)端口探测,需要root权限和libpcap
package syn

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"sync"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"github.com/google/gopacket/routing"
	"github.com/phayes/freeport"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ErrUnsupported 只支持以太网网卡上的IPv4目标
var ErrUnsupported = errors.New("syn scan supports only IPv4 targets behind an ethernet interface")

// Prober 实现scan.Prober,每个网卡共享一个pcap句柄和读协程
type Prober struct {
	timeout time.Duration
	router  routing.Router

	mu        sync.Mutex
	listeners map[string]*listener //按网卡名
	warned    map[string]bool
	macs      singleflight.Group
}

// NewProber timeout是单个端口的总超时,ARP解析和等待回复共用
func NewProber(timeout time.Duration) (*Prober, error) {
	router, err := routing.New()
	if err != nil {
		return nil, fmt.Errorf("syn scan: %w", err)
	}
	return &Prober{
		timeout:   timeout,
		router:    router,
		listeners: map[string]*listener{},
		warned:    map[string]bool{},
	}, nil
}

// Probe 发送SYN,收到SYN+ACK为开放;RST,超时和任何错误都视为未开放
func (p *Prober) Probe(ctx context.Context, addr netip.AddrPort) bool {
	dst := addr.Addr().Unmap()
	if !dst.Is4() {
		p.warnOnce(dst.String(), ErrUnsupported)
		return false
	}

	iface, gateway, src, err := p.router.Route(dst.AsSlice())
	if err != nil {
		log.Debugf("syn: route %s: %v", dst, err)
		return false
	}
	if len(iface.HardwareAddr) == 0 { //loopback等没有MAC的网卡
		p.warnOnce(iface.Name, ErrUnsupported)
		return false
	}

	l, err := p.listenerFor(iface, src)
	if err != nil {
		p.warnOnce(iface.Name, err)
		return false
	}
	return l.probePort(ctx, &p.macs, dst, gateway, addr.Port(), p.timeout)
}

// Close 关闭所有pcap句柄
func (p *Prober) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for name, l := range p.listeners {
		l.close()
		delete(p.listeners, name)
	}
}

func (p *Prober) listenerFor(iface *net.Interface, src net.IP) (*listener, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if l, ok := p.listeners[iface.Name]; ok {
		return l, nil
	}
	l, err := newListener(iface, src)
	if err != nil {
		return nil, err
	}
	p.listeners[iface.Name] = l
	return l, nil
}

func (p *Prober) warnOnce(key string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.warned[key] {
		return
	}
	p.warned[key] = true
	log.Warnf("syn: %s: %v, ports reported closed", key, err)
}

// packetHandle 由*pcap.Handle实现
type packetHandle interface {
	gopacket.PacketDataSource
	WritePacketData(data []byte) error
	Close()
}

type hwLookupFunc func(ctx context.Context, iface *net.Interface, srcIP, dstIP, gateway net.IP) (net.HardwareAddr, error)

// listener 一个网卡上的发送和接收,回复按(地址,端口)分发给等待的探测
type listener struct {
	handle  packetHandle
	lookup  hwLookupFunc
	iface   *net.Interface
	srcIP   netip.Addr
	srcPort layers.TCPPort

	mu      sync.Mutex
	waiters map[replyKey][]chan bool //同一端口可能被重复扫描
	macs    map[netip.Addr]net.HardwareAddr
	done    chan struct{}
}

func newListener(iface *net.Interface, src net.IP) (*listener, error) {
	srcIP, ok := netip.AddrFromSlice(src)
	if !ok {
		return nil, fmt.Errorf("invalid source address %v", src)
	}
	rawPort, err := freeport.GetFreePort() //获取一个空闲的端口作为源端口
	if err != nil {
		return nil, err
	}
	handle, err := pcap.OpenLive(iface.Name, 65535, false, 100*time.Millisecond)
	if err != nil {
		return nil, err
	}
	if err := handle.SetBPFFilter(fmt.Sprintf("tcp and dst port %d", rawPort)); err != nil {
		handle.Close()
		return nil, err
	}

	l := &listener{
		handle:  handle,
		lookup:  lookupHwAddr,
		iface:   iface,
		srcIP:   srcIP.Unmap(),
		srcPort: layers.TCPPort(rawPort),
		waiters: map[replyKey][]chan bool{},
		macs:    map[netip.Addr]net.HardwareAddr{},
		done:    make(chan struct{}),
	}
	go l.readLoop()
	log.Debugf("syn: listening on %s, source %s:%d", iface.Name, l.srcIP, rawPort)
	return l, nil
}

func (l *listener) readLoop() {
	defer close(l.done)
	decoder := newReplyDecoder(l.srcPort)
	for {
		data, _, err := l.handle.ReadPacketData()
		if err == pcap.NextErrorTimeoutExpired {
			continue
		} else if err != nil { //句柄被关闭
			return
		}
		if key, open, ok := decoder.decode(data); ok {
			l.dispatch(key, open)
		}
	}
}

func (l *listener) dispatch(key replyKey, open bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ch := range l.waiters[key] {
		select {
		case ch <- open:
		default: //已经收到过回复
		}
	}
}

// probePort ARP解析和等待回复共用timeout,整个探测不会超过timeout
func (l *listener) probePort(ctx context.Context, group *singleflight.Group, dst netip.Addr, gateway net.IP, port uint16, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dstMAC, err := l.hwAddr(ctx, group, dst, gateway)
	if err != nil {
		log.Debugf("syn: arp %s: %v", dst, err)
		return false
	}
	return l.probe(ctx, dstMAC, dst, port)
}

func (l *listener) probe(ctx context.Context, dstMAC net.HardwareAddr, dst netip.Addr, port uint16) bool {
	key := replyKey{ip: dst, port: port}
	ch := make(chan bool, 1)

	l.mu.Lock()
	l.waiters[key] = append(l.waiters[key], ch)
	l.mu.Unlock()
	defer l.unregister(key, ch)

	packet, err := buildSYN(l.iface.HardwareAddr, dstMAC, l.srcIP, dst, l.srcPort, port)
	if err != nil {
		return false
	}
	if err := l.handle.WritePacketData(packet); err != nil {
		return false
	}

	select {
	case open := <-ch:
		return open
	case <-ctx.Done(): //超时没有回复,被过滤
		return false
	}
}

func (l *listener) unregister(key replyKey, ch chan bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	chans := l.waiters[key]
	for i, c := range chans {
		if c == ch {
			chans = append(chans[:i], chans[i+1:]...)
			break
		}
	}
	if len(chans) == 0 {
		delete(l.waiters, key)
		return
	}
	l.waiters[key] = chans
}

// hwAddr 缓存下一跳的MAC,并发的探测只会发出一次ARP请求
func (l *listener) hwAddr(ctx context.Context, group *singleflight.Group, dst netip.Addr, gateway net.IP) (net.HardwareAddr, error) {
	next := dst
	if gateway != nil {
		if gw, ok := netip.AddrFromSlice(gateway); ok {
			next = gw.Unmap()
		}
	}

	l.mu.Lock()
	mac, ok := l.macs[next]
	l.mu.Unlock()
	if ok {
		return mac, nil
	}

	res := group.DoChan(l.iface.Name+"/"+next.String(), func() (interface{}, error) {
		return l.lookup(ctx, l.iface, l.srcIP.AsSlice(), dst.AsSlice(), gateway)
	})
	select {
	case r := <-res:
		if r.Err != nil {
			return nil, r.Err
		}
		mac = r.Val.(net.HardwareAddr)
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	l.mu.Lock()
	l.macs[next] = mac
	l.mu.Unlock()
	return mac, nil
}

func (l *listener) close() {
	l.handle.Close()
	<-l.done
}
