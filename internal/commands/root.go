package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/gstledger/internal/accounts"
	"github.com/cleared-dev/gstledger/internal/buildinfo"
	"github.com/cleared-dev/gstledger/internal/config"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "gstledger",
		Short:   "Double-entry ledger with GST splitting and sub-ledger reconciliation",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.FileName, "path to "+config.FileName)
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newChartCommand(opts))
	rootCmd.AddCommand(newReplayCommand(opts))

	return rootCmd
}

// project is a loaded configuration and its chart of accounts.
type project struct {
	cfg    *config.Config
	chart  *accounts.Registry
	logger *slog.Logger
}

func loadProject(cmd *cobra.Command, opts *rootOptions) (*project, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	chartPath := cfg.ChartPath(filepath.Dir(opts.configPath))
	chart, err := accounts.Load(chartPath, accounts.Strict(cfg.Accounts.Strict))
	if err != nil {
		return nil, fmt.Errorf("loading chart of accounts: %w", err)
	}
	logger.Debug("loaded project", "business", cfg.Business.Name, "accounts", len(chart.All()), "strict", chart.Strict())

	return &project{cfg: cfg, chart: chart, logger: logger}, nil
}
