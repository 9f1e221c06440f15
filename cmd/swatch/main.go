// Swatch - dominant colour extraction for images
//
// Swatch clusters an image's pixels in colour space and reports the
// largest clusters' average colours, ranked by population.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
