package main

import "github.com/louiszeng0623/Yzeng17/internal/cli"

func main() {
	cli.Execute()
}
