package main

import (
	"os"

	"github.com/Halffd/srtmerger/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
