// Package cmd implements the CLI commands for pricing-justifier.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pricing-justifier",
		Short: "Price used electronics and explain the discount",
		Long: "An API-first service that turns a computer-vision condition report into a\n" +
			"fair resale price, resolves the new-item reference price from a price\n" +
			"database, cache or live web search, and writes a justification.",
		SilenceUsage: true,
	}

	root.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file path (default: built-in defaults)")

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		versionCommand(),
		pricesCmd(),
		cacheCmd(),
	)
	return root
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
