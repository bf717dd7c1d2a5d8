// Package main provides the tower CLI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tower:", err)
		os.Exit(exitCode(err))
	}
}
