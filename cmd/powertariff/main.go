// Package main is the entry point for the powertariff CLI.
package main

import (
	"os"

	"powertariff/cmd/powertariff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
