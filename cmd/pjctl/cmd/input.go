package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// readJSONObject decodes a JSON object from path, or from stdin when path
// is "-".
func readJSONObject(cmd *cobra.Command, path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // path from trusted CLI flag
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%s: expected a JSON object", path)
	}
	return obj, nil
}

// productFlags are the product identity flags shared by several commands.
type productFlags struct {
	brand    string
	model    string
	category string
}

func (p *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.brand, "brand", "", "product brand")
	cmd.Flags().StringVar(&p.model, "model", "", "product model")
	cmd.Flags().StringVar(&p.category, "category", "", "product category (phone, laptop, camera, ...)")
}

func (p *productFlags) require() error {
	if strings.TrimSpace(p.brand) == "" || strings.TrimSpace(p.model) == "" {
		return fmt.Errorf("--brand and --model are required")
	}
	return nil
}
