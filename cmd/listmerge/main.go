// SPDX-License-Identifier: MIT
// Package main is the entry point for the listmerge CLI.
package main

import (
	"os"

	"github.com/katalvlaran/lvlist/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
