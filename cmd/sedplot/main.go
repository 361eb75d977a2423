// Command sedplot evaluates and plots the Marconi et al. (2004) spectral
// energy distribution of an active galactic nucleus.
//
// Usage:
//
//	sedplot [flags]
//	sedplot plot   [flags]
//	sedplot table  [flags]
//	sedplot export [flags]
//
// Without a subcommand it renders the demonstration figure: curves for
// log Lbol = 43, 45 and 47 erg/s written to marconi_sed.eps.
//
// Examples:
//
//	sedplot
//	sedplot plot -l 44,46 -o sed.svg
//	sedplot table
//	sedplot export -l 45 -f yaml
//	sedplot --config sedplot.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
