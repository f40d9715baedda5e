package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"portscan/scan"
	"portscan/scan/syn"
)

//默认值
var debug bool                //日志级别
var timeoutMS int = 3000      //连接超时
var parallelism int           //同时进行的探测数量,0为不限制
var portSelection string      //指定端口
var topPorts int = 1000       //合并的常用端口数量
var scanType = "connect"      //扫描模式
var resolverAddr string       //指定DNS服务器
var hideUnavailableHosts bool //省略没有开放端口的host
var showProgress bool         //显示进度条
var versionRequested bool     //打印版本

func init() {
	rootCmd.PersistentFlags().BoolVarP(&hideUnavailableHosts, "up-only", "u", hideUnavailableHosts, "Omit output for hosts without open ports")
	rootCmd.PersistentFlags().BoolVarP(&versionRequested, "version", "", versionRequested, "Output version information and exit")
	rootCmd.PersistentFlags().StringVarP(&scanType, "scan-type", "s", scanType, "Scan type. Must be one of connect, syn")
	rootCmd.PersistentFlags().BoolVarP(&debug, "verbose", "v", debug, "Enable verbose logging")
	rootCmd.PersistentFlags().IntVarP(&timeoutMS, "timeout-ms", "t", timeoutMS, "Per-probe timeout in MS")
	rootCmd.PersistentFlags().IntVarP(&parallelism, "workers", "w", parallelism, "Maximum probes in flight, 0 means one goroutine per port without limit")
	rootCmd.PersistentFlags().StringVarP(&portSelection, "ports", "p", portSelection, "Ports to scan. Comma separated, can use hyphens e.g. 22,80,443,8080-8090")
	rootCmd.PersistentFlags().IntVarP(&topPorts, "top", "n", topPorts, "Number of most common ports to merge in (max 5000), defaults to 0 when --ports is set")
	rootCmd.PersistentFlags().StringVarP(&resolverAddr, "resolver", "", resolverAddr, "DNS server used to resolve hostnames, e.g. 1.1.1.1:53")
	rootCmd.PersistentFlags().BoolVarP(&showProgress, "progress", "", showProgress, "Show a progress bar on stderr")
}

func createProber(scanType string, timeout time.Duration) (scan.Prober, func(), error) {
	//根据scanType来选择扫描模式
	switch strings.ToLower(scanType) {
	case "stealth", "syn", "fast": //SYN扫描
		if os.Geteuid() > 0 { //用于判断是否是root用户
			return nil, nil, fmt.Errorf("permission denied: %s scan requires root", scanType)
		}
		p, err := syn.NewProber(timeout)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil

	case "connect": //TCP连接扫描
		return scan.NewConnectProber(timeout), func() {}, nil
	}
	return nil, nil, fmt.Errorf("未知扫描模式:%v", scanType)
}

var rootCmd = &cobra.Command{
	Use:   "portscan [flags] target...",
	Short: "concurrent tcp port scanner",
	Long:  "Scan IPs, CIDR blocks or hostnames for open tcp ports.",
	Run: func(cmd *cobra.Command, args []string) { //主要的执行函数
		if versionRequested {
			fmt.Fprintln(cmd.OutOrStdout(), "development version")
			return
		}
		if debug {
			log.SetLevel(log.DebugLevel) //设置日志级别
		}
		//检查是否输入目标
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "至少指定一个目标!")
			os.Exit(1)
		}

		//设置一个主动取消的机制,被取消的探测都记为未开放
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-c //阻塞直到有信号
			log.Warn("退出...")
			cancel()
		}()

		if err := runScan(ctx, cmd, args); err != nil {
			log.Fatal(err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// runScan 解析端口和目标,执行扫描并打印报告,解析失败时在扫描开始前返回错误
func runScan(ctx context.Context, cmd *cobra.Command, args []string) error {
	ports, err := selectPorts(portSelection, topPorts, cmd.Flags().Changed("top"))
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		log.Warn("没有要扫描的端口")
	}

	timeout := time.Duration(timeoutMS) * time.Millisecond
	var resolver scan.Resolver = scan.SystemResolver{}
	if resolverAddr != "" {
		resolver = scan.NewDNSResolver(resolverAddr, timeout)
	}

	//所有目标都解析成功后才开始扫描
	targets, err := scan.ResolveTargets(ctx, args, resolver, ports)
	if err != nil {
		return err
	}

	prober, closeProber, err := createProber(scanType, timeout)
	if err != nil {
		return err
	}
	defer closeProber()

	cfg := scan.Config{
		Timeout: timeout,
		Workers: parallelism,
		Prober:  prober,
	}
	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(targets)*len(ports),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("扫描中"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		cfg.OnProbe = func(scan.Port) { _ = bar.Add(1) }
	}

	start := time.Now()
	log.Debugf("开始扫描 %d 个目标,每个目标 %d 个端口", len(targets), len(ports))
	results := scan.NewScanner(cfg).ScanTargets(ctx, targets)
	if bar != nil {
		_ = bar.Finish()
	}
	log.Debugf("扫描完毕 耗时:%v", time.Since(start))

	return scan.WriteReport(cmd.OutOrStdout(), results, hideUnavailableHosts)
}

// selectPorts 指定了端口但没有指定--top时只扫描指定的端口,否则合并常用端口
func selectPorts(selection string, top int, topChanged bool) ([]scan.Port, error) {
	numbers, err := getPorts(selection)
	if err != nil {
		return nil, err
	}
	if selection != "" && !topChanged {
		top = 0
	}
	if top > scan.MaxCommonPorts {
		log.Warnf("--top %d 超过上限,只使用前 %d 个常用端口", top, scan.MaxCommonPorts)
	}
	return scan.MergePorts(scan.UserPorts(numbers), scan.CommonPorts(top)), nil
}

func getPorts(selection string) ([]uint16, error) {
	if selection == "" {
		return nil, nil
	}

	ports := []uint16{}
	ranges := strings.Split(selection, ",")
	for _, r := range ranges {
		r = strings.TrimSpace(r)
		if r == "" {
			return nil, errors.New("Invalid port selection: empty segment")
		}
		if strings.Contains(r, "-") { //分别解析起始结束端口
			parts := strings.Split(r, "-")
			if len(parts) != 2 {
				return nil, fmt.Errorf("Invalid port selection segment: '%s'", r)
			}

			p1, err := parsePort(parts[0])
			if err != nil {
				return nil, err
			}

			p2, err := parsePort(parts[1])
			if err != nil {
				return nil, err
			}

			if p1 > p2 {
				return nil, fmt.Errorf("Invalid port range: %d-%d", p1, p2)
			}

			for i := int(p1); i <= int(p2); i++ {
				ports = append(ports, uint16(i))
			}

		} else { //按单个情况处理
			port, err := parsePort(r)
			if err != nil {
				return nil, err
			}
			ports = append(ports, port)
		}
	}
	return ports, nil
}

func parsePort(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("Invalid port number: '%s'", s)
	}
	if port > 65535 || port < 1 {
		return 0, fmt.Errorf("Invalid port number:%s,port number must be between 1 and 65535", s)
	}
	return uint16(port), nil
}
