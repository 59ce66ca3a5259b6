// Command chartkit summarizes datasets and renders them as donut charts or
// heat maps, either to SVG files or in a window.
package main

import (
	"fmt"
	"os"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "chartkit:", err)
		os.Exit(1)
	}
}
