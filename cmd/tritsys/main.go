// Package main provides the tritsys command-line tool.
package main

import (
	"os"

	"github.com/tritstack/tritsys/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
