// SPDX-License-Identifier: MIT

// Command ctmc analyzes continuous-time Markov chains from model documents.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
