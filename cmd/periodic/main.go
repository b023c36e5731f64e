// Package main provides the periodic command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/periodic/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
