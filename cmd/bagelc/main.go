// Package main provides the bagelc CLI entry point.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bagelc:", err)
		os.Exit(1)
	}
}
