// Package cmd implements the pjctl CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/aliaa039/Dynamic-Pricing-Justification/internal/api/client"
)

var (
	cfgFile string
	rootCmd = newRootCmd()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pjctl",
		Short: "CLI client for the Dynamic Pricing Justification API",
		Long: "pjctl is a command-line client for the pricing API.\n" +
			"It prices inspected items, renders justifications and reports,\n" +
			"searches market prices and manages the reference price database.",
		SilenceUsage: true,
	}

	root.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.pjctl.yaml)")
	root.PersistentFlags().
		String("server", "http://localhost:8000", "API server URL")
	root.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", root.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", root.PersistentFlags().Lookup("output")))

	root.AddCommand(
		calculateCmd(),
		explainCmd(),
		reportCmd(),
		validateCmd(),
		searchCmd(),
		specsCmd(),
		workflowCmd(),
		quickCmd(),
		pricesCmd(),
		cacheCmd(),
		healthCmd(),
	)
	return root
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pjctl")
	}

	viper.SetEnvPrefix("PJCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
