package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rollout/internal/replan"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Recompute the plan on an interval and log a digest",
	Long: `Runs the plan pipeline periodically so the schedule tracks calendar
changes made by teammates. Each cycle logs how many tasks the plan holds and
how many events await a push. Ctrl-C stops the loop.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&replanInterval, "every", 30*time.Minute, "Replan interval (or set ROLLOUT_REPLAN_INTERVAL)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	svc := replan.NewService(logger)
	cycle := func() {
		now := time.Now().UTC()
		plan, repo, err := computePlan(ctx, now)
		if err != nil {
			logger.Error("replan failed", zap.Error(err))
			return
		}
		repo.Close()
		logger.Info("plan recomputed",
			zap.Int("tasks", len(plan.Tasks)),
			zap.Int("days", len(plan.Days)),
			zap.Int("pending_push", len(plan.PushList)),
			zap.Int("dropped", plan.DroppedTasks),
		)
	}

	if _, err := svc.ScheduleInterval(cfg.ReplanInterval, cycle); err != nil {
		return err
	}

	cycle()
	svc.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	svc.Stop()
	return nil
}
