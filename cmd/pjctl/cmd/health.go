package cmd

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aliaa039/Dynamic-Pricing-Justification/internal/cli"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "health",
		Short:   "Show server health and enabled features",
		Example: `  pjctl health --server http://pricing.internal:8000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := newClient().Health(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd, h)
			}
			tw := cli.NewTabWriter(cmd.OutOrStdout())
			tw.Writef("Status:\t%s\n", h.Status)
			tw.Writef("Service:\t%s\n", h.Service)
			tw.Writef("Price lookup:\t%s\n", strings.Join(h.Tiers, " -> "))
			tw.Writef("Web search:\t%s\n", onOff(h.Features.WebSearch))
			tw.Writef("LLM reports:\t%s\n", onOff(h.Features.LLMReports))
			tw.Writef("Specs lookup:\t%s\n", onOff(h.Features.Specs))
			return tw.Finish()
		},
	}
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
