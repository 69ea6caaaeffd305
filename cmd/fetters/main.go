// Package main provides the fetters CLI, a local command-line tracker for
// job applications.
package main

import (
	"os"

	"github.com/fettersdev/fetters/internal/ui"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		ui.Failure.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
