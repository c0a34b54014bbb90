// Package main implements the santa CLI for running Secret Santa draws from a YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/santa/internal/config"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "santa",
		Short: "Draw Secret Santa pairings and notify participants",
		Long: `santa reads a participant list from a YAML file, draws a single
closed loop of Secret Santa pairings and optionally notifies everyone
through the configured transport (log or NATS).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "santa.yaml", "path to the YAML configuration file")
	rootCmd.AddCommand(newDrawCmd(&configPath))
	rootCmd.AddCommand(newValidateCmd(&configPath))

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return cfg, nil
}
