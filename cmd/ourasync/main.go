// ABOUTME: Entry point for the ourasync CLI.
// ABOUTME: Invokes the root Cobra command; exits non-zero on any failure.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
