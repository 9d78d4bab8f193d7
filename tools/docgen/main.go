// Package main generates CLI reference documentation for pjctl and
// pricing-justifier.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	pjctl "github.com/aliaa039/Dynamic-Pricing-Justification/cmd/pjctl/cmd"
	server "github.com/aliaa039/Dynamic-Pricing-Justification/cmd/pricing-justifier/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	roots := map[string]*cobra.Command{
		"pjctl":             pjctl.Root(),
		"pricing-justifier": server.Root(),
	}
	for name, root := range roots {
		if err := generate(root, filepath.Join(*output, name)); err != nil {
			log.Fatalf("generating %s docs: %v", name, err)
		}
	}

	fmt.Printf("CLI docs generated in %s/\n", *output)
}

func generate(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	root.DisableAutoGenTag = true
	return doc.GenMarkdownTree(root, dir)
}
