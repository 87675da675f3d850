// Command envdemo builds a sample window hierarchy and shows how environment
// values resolve and propagate through it.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/uienv/cmd/envdemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
