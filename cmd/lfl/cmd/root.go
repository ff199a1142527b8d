// Package cmd implements the lfl CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/localflipper/internal/api/client"
)

var (
	cfgFile string
	rootCmd = newRootCmd()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lfl",
		Short: "CLI client for LocalFlipper",
		Long: `lfl talks to a running LocalFlipper server.

Manage saved searches, trigger runs, browse and export deals, and price a
single listing without leaving the terminal. Settings are read from
flags, LFL_* environment variables and ~/.lfl.yaml, in that order.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $HOME/.lfl.yaml)")
	pf.String("server", "http://localhost:8080", "API server URL")
	pf.String("output", "table", "output format (table, json)")
	pf.Duration("timeout", 0, "per-request timeout (0 uses the client default)")
	for _, name := range []string{"server", "output", "timeout"} {
		cobra.CheckErr(viper.BindPFlag(name, pf.Lookup(name)))
	}

	root.AddCommand(
		searchesCmd(),
		runCmd(),
		dealsCmd(),
		evaluateCmd(),
		cleanCmd(),
		quotaCmd(),
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
	viper.SetEnvPrefix("LFL")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".lfl")
		viper.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "lfl"))
		}
	}

	err := viper.ReadInConfig()
	switch {
	case err == nil:
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	case cfgFile != "":
		cobra.CheckErr(fmt.Errorf("reading %s: %w", cfgFile, err))
	}
}

func newClient() *apiclient.Client {
	var opts []apiclient.Option
	if d := viper.GetDuration("timeout"); d > 0 {
		opts = append(opts, apiclient.WithTimeout(d))
	}
	return apiclient.New(viper.GetString("server"), opts...)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
