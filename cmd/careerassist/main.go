// Package main provides the entry point for the careerassist terminal client.
package main

import (
	"fmt"
	"os"

	"github.com/hotgigs/careerassist/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
