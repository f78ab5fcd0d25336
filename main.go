package main

import (
	"os"

	"psxdump/cli"
)

func main() {
	os.Exit(cli.Main(os.Args[1:]))
}
