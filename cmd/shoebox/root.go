// Root command for the shoebox CLI.
package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/driftwood-labs/shoebox/internal/metrics"
	"github.com/driftwood-labs/shoebox/internal/paths"
	"github.com/driftwood-labs/shoebox/internal/storage"
	"github.com/driftwood-labs/shoebox/internal/tasklist"
	"github.com/driftwood-labs/shoebox/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
	flagJSON      bool
	flagVerbose   bool
)

// Globals initialized by PersistentPreRunE for all subcommands.
var (
	svc    *tasklist.Service
	logger *zap.Logger

	// configDataDir and configBackend hold values loaded from config.yaml.
	configDataDir string
	configBackend string

	// configAssistEndpoint is the assist service URL from config.yaml,
	// overridden by the stored settings when those carry one.
	configAssistEndpoint string
)

var rootCmd = &cobra.Command{
	Use:     "shoebox",
	Short:   "Shoebox is a local-first task tracker",
	Version: Version,
	Long: `Shoebox keeps tasks and categories in a local store with search,
filters, sorting, statistics, and CSV export. An optional assist service
can draft tasks from free-form text.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: openServices,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeServices()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.shoebox-db)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: file, sqlite, or memory (default: file)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(assistCmd)
	rootCmd.AddCommand(configCmd)
}

// openServices loads config, builds the logger, and hydrates the task list
// service. Skipped for commands that touch no data.
func openServices(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "version", "help", "completion":
		return nil
	}

	var err error
	logger, err = buildLogger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	configDataDir = cfg.GetString(cfgKeyDataDir)
	configBackend = cfg.GetString(cfgKeyBackend)
	configAssistEndpoint = cfg.GetString(cfgKeyAssistEndpoint)

	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	backend := configBackend
	if flagBackend != "" {
		backend = flagBackend
	}

	storageConfig := types.Config{Backend: backend, DataDir: dataDir}
	if err := storageConfig.Validate(); err != nil {
		return &types.ValidationError{Field: "backend", Reason: err.Error()}
	}

	adapter, err := storage.Open(storageConfig)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	svc, err = tasklist.Open(adapter, tasklist.Options{
		Logger:   logger,
		Observer: metrics.NewRecorder(prometheus.NewRegistry()),
	})
	if err != nil {
		_ = adapter.Close()
		return fmt.Errorf("open task list: %w", err)
	}
	return nil
}

// closeServices releases the store and flushes the logger.
func closeServices() error {
	var err error
	if svc != nil {
		err = svc.Close()
		svc = nil
	}
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
	return err
}

// buildLogger returns a production logger writing to stderr. Warnings and
// above unless --verbose.
func buildLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if flagVerbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
