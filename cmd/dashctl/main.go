package main

import "github.com/vfg2006/consultant-dashboard-api/internal/cli"

func main() {
	cli.Execute()
}
