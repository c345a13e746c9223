// Package commands implements the growthchart command tree.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/growth/internal/config"
)

var (
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// Execute runs the growthchart root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfgPath, verbose = "", false
	cfg, logger = nil, nil

	root := &cobra.Command{
		Use:   "growthchart",
		Short: "CDC infant growth percentiles and chart series",
		Long: `growthchart computes CDC growth-chart percentiles for infant weight,
length and head circumference, and builds chart series that overlay
measurements on the P3..P97 reference curves.

Reference tables are CDC CSV files (Sex,Agemos,L,M,S,P3..P97) or compact
table blobs produced by "growthchart pack".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			level, _ := cfg.ZapLevel()
			if verbose {
				level = zapcore.DebugLevel
			}
			zc := zap.NewProductionConfig()
			zc.Level = zap.NewAtomicLevelAt(level)
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			logger.Debug("configuration loaded",
				zap.String("path", cfgPath),
				zap.String("log_level", level.String()))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(percentileCmd(), chartCmd(), packCmd(), inspectCmd())

	return root
}
