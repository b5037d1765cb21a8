// Package cli wires configuration, logging, loading, analysis and reporting
// into the indicators command.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slopez1023/ProyectoDiana/internal/analyzer"
	"github.com/slopez1023/ProyectoDiana/internal/config"
	"github.com/slopez1023/ProyectoDiana/internal/loader"
	"github.com/slopez1023/ProyectoDiana/internal/logging"
	"github.com/slopez1023/ProyectoDiana/internal/models"
)

var (
	Version   = "dev"     // Injected via ldflags during build
	GitCommit = "unknown" // Injected via ldflags during build
)

// app is the state shared by every subcommand once the root has run
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *logging.Logger
}

// NewRootCommand builds the indicators command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "indicators",
		Short:         "Analyze institutional indicators and generate reports",
		Version:       fmt.Sprintf("%s (%s)", Version, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	root.AddCommand(analyzeCmd(a))
	root.AddCommand(reportCmd(a))
	return root
}

// Execute runs the command tree with ctx
func Execute(ctx context.Context, args []string) error {
	root := NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Logging.Validate(); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}

	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logging.SetGlobal(logger)

	a.cfg = cfg
	a.logger = logger
	return nil
}

// analyze loads input and runs the batch analysis over it
func (a *app) analyze(input string, opts loader.Options) ([]*models.IndicatorRecord, *analyzer.BatchResult, error) {
	records, summary, err := loader.New(a.logger).Load(input, opts)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("Input loaded",
		"source", summary.Source,
		"valid", summary.Valid,
		"dropped", summary.Dropped)

	result := analyzer.New(a.cfg.Analysis, a.logger).AnalyzeBatch(records)
	return records, result, nil
}
