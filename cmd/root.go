// Package cmd defines the CLI commands for the enrich executable.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadscout/enrich/internal/config"
	"github.com/leadscout/enrich/internal/logging"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Business-record enrichment scraper",
		Long: `enrich crawls the websites of business records, extracts contact,
team, acquisition, and history facts, and writes them back to the record
store along with the raw page captures.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")

	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newServeCmd())
	return cmd
}

// loadEnv loads the configuration and builds the logger shared by all
// subcommands.
func loadEnv() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, logger, nil
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
