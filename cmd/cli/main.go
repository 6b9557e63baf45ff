package main

import (
	"os"

	"github.com/stocktake-dev/stocktake/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
