package scan

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	openColor   = color.New(color.FgGreen)
)

// WriteReport 按目标分组打印开放端口,每行为"  端口号\t服务名",会先对targets排序;upOnly为true时省略没有开放端口的目标
func WriteReport(w io.Writer, targets []Target, upOnly bool) error {
	SortTargets(targets)
	for _, t := range targets {
		if upOnly && !t.IsUp() {
			continue
		}
		if _, err := headerColor.Fprintf(w, "Open tcp ports for %s:\n", describeTarget(t)); err != nil {
			return err
		}
		for _, p := range t.OpenPorts() {
			if _, err := openColor.Fprintf(w, "  %d\t%s\n", p.Number, p.Service); err != nil {
				return err
			}
		}
	}
	return nil
}

func describeTarget(t Target) string {
	ip := t.Address.Addr().String()
	if t.Name == "" {
		return ip
	}
	return fmt.Sprintf("%s (%s)", t.Name, ip)
}
