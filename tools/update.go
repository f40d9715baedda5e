package main

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
)

const servicesURL = "https://raw.githubusercontent.com/nmap/nmap/master/nmap-services"

// 与scan.MaxCommonPorts保持一致
const maxPorts = 5000

type entry struct {
	service string
	number  int
	freq    float64
}

//用于更新常用端口列表,按开放频率排序,加入makefile
func main() {
	resp, err := http.Get(servicesURL)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		panic(fmt.Sprintf("unexpected status: %s", resp.Status))
	}

	var entries []entry
	seen := map[int]bool{}
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		// 格式: service	port/proto	frequency	# comment
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 || !strings.HasSuffix(fields[1], "/tcp") {
			continue
		}
		number, err := strconv.Atoi(strings.TrimSuffix(fields[1], "/tcp"))
		if err != nil || number < 1 || number > 65535 || seen[number] {
			continue
		}
		freq, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			continue
		}
		seen[number] = true
		entries = append(entries, entry{service: fields[0], number: number, freq: freq})
	}
	if err := scanner.Err(); err != nil {
		panic(err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].freq > entries[j].freq
	})
	if len(entries) > maxPorts {
		entries = entries[:maxPorts]
	}

	output, err := os.Create("./scan/known.go") //默认根目录执行makefile,以执行目录为准
	if err != nil {
		panic(err)
	}
	defer output.Close()

	w := bufio.NewWriter(output)
	fmt.Fprintf(w, `package scan

// data from %s, tcp only, ranked by open-frequency
// regenerate with: go run ./tools/update.go
var knownPorts = []struct {
	number  uint16
	service string
}{
`, servicesURL)
	for _, e := range entries {
		fmt.Fprintf(w, "\t{%d, %q},\n", e.number, e.service)
	}
	fmt.Fprintln(w, "}")
	if err := w.Flush(); err != nil {
		panic(err)
	}
}
