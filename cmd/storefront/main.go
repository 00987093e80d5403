package main

import (
	"os"

	"github.com/sweetbakery/storefront/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
