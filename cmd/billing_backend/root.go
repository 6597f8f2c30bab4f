package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/construction_billing_app/internal/platform/config"
	"github.com/SscSPs/construction_billing_app/internal/platform/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "billing_backend",
	Short: "Construction billing backend",
	Long: `Runs the construction billing API: bills, weekly labour records (NMRs),
the PM, QC and Billing approval pipeline and the payment ledger.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration and installs the structured logger as the
// default one.
func bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := logging.New(os.Stdout, cfg.IsProduction, logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(hashSecretCmd)
}
