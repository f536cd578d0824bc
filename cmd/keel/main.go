// Command keel is the Keel project CLI.
package main

import (
	"fmt"
	"os"

	"github.com/go-keel/keel/cmd/keel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
