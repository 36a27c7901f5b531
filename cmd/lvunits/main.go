// Package main provides the lvunits binary: parse quantities, convert them
// and list the vocabulary of a unit system from the command line.
package main

import (
	"fmt"
	"os"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "lvunits"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
