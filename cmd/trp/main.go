// Package main is the entry point for the trp CLI tool.
package main

import (
	"os"

	"github.com/jamesWalker55/tag-repo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
