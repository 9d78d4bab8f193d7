// Package main is the entry point for the pjctl CLI client.
package main

import (
	"github.com/aliaa039/Dynamic-Pricing-Justification/cmd/pjctl/cmd"
)

func main() {
	cmd.Execute()
}
