package main

import "github.com/mcoot/diamondstats/internal/cli"

func main() {
	cli.Execute()
}
