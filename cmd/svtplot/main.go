// Command svtplot renders curves and envelopes of physical quantities
// described by YAML job files.
//
// Usage:
//
//	svtplot render job.yaml --output out.png
//	svtplot units
package main

import (
	"os"
)

func main() {
	cmd := NewCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
