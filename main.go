package main

import "portscan/cmd"

func main() {
	cmd.Execute()
}
