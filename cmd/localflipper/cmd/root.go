// Package cmd implements the CLI commands for the localflipper server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "localflipper",
	Short: "Score local marketplace listings for resale profit",
	Long: "localflipper runs saved local-marketplace searches on a schedule, prices each\n" +
		"listing against eBay comparables, and alerts on profitable pickups.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
