// Package main is the entry point for the pricing-justifier service.
package main

import (
	"os"

	"github.com/aliaa039/Dynamic-Pricing-Justification/cmd/pricing-justifier/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
