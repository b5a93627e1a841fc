package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rollout/internal/config"
)

var (
	dbPath         string
	profilePath    string
	viewer         string
	horizonWeeks   int
	replanInterval time.Duration
	verbose        bool

	cfg    config.RuntimeConfig
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rollout",
	Short: "rollout - release campaign scheduler",
	Long: `rollout turns an artist profile, a release calendar and a content
brainstorm into a concrete posting schedule: prep work for the next two
weeks, recurring posts classified against upcoming releases, and shoot and
edit days for planned content formats.

Shared campaign events live in a sqlite store so the whole team sees the
same calendar; private prep tasks are recomputed locally on every run.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		cfg = config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())
		flags := cmd.Flags()
		if flags.Changed("db") {
			cfg.DatabasePath = dbPath
		}
		if flags.Changed("profile") {
			cfg.ProfilePath = profilePath
		}
		if flags.Changed("viewer") {
			cfg.Viewer = viewer
		}
		if flags.Changed("horizon") && horizonWeeks > 0 {
			cfg.HorizonWeeks = horizonWeeks
		}
		if flags.Changed("every") && replanInterval > 0 {
			cfg.ReplanInterval = replanInterval
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	defaults := config.DefaultRuntimeConfig()
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaults.DatabasePath, "Path to the shared sqlite calendar (or set ROLLOUT_DB)")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", defaults.ProfilePath, "Path to the campaign plan file (or set ROLLOUT_PROFILE)")
	rootCmd.PersistentFlags().StringVar(&viewer, "viewer", "", "Team member name viewing the plan (or set ROLLOUT_VIEWER)")
	rootCmd.PersistentFlags().IntVar(&horizonWeeks, "horizon", defaults.HorizonWeeks, "Posting horizon in weeks")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
