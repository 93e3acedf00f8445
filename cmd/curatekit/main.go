// Package main is the entry point of the curatekit CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/curatekit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
