package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rollout/internal/model"
	"rollout/internal/planner"
)

var pushFlag bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the campaign plan and print it day by day",
	Long: `Loads the plan file, reconciles against the shared calendar and prints
the resulting schedule. With --push, the generated shared events are written
to the calendar store; this happens at most once per campaign, later runs
treat the stored events as ground truth.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&pushFlag, "push", false, "Persist generated shared events to the calendar store")
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	now := time.Now().UTC()

	plan, repo, err := computePlan(ctx, now)
	if err != nil {
		return err
	}
	defer repo.Close()

	fmt.Print(formatPlan(plan))

	if pushFlag {
		pushed, err := pushShared(ctx, repo, plan, now, uuid.NewString)
		if err != nil {
			return err
		}
		if pushed == 0 {
			logger.Info("shared calendar already populated, nothing pushed")
		} else {
			logger.Info("shared events pushed", zap.Int("count", pushed))
		}
	}
	return nil
}

func formatPlan(plan planner.Plan) string {
	var b strings.Builder
	for _, bucket := range plan.Days {
		b.WriteString(bucket.Date.Format("Mon 2006-01-02") + "\n")
		for _, task := range bucket.Tasks {
			when := "all-day     "
			if !task.AllDay {
				when = fmt.Sprintf("%s-%s", model.FormatClock(task.StartMinute), model.FormatClock(task.EndMinute))
			}
			marker := " "
			if task.Shared {
				marker = "*"
			}
			b.WriteString(fmt.Sprintf("  %s %s [%s] %s\n", marker, when, task.Kind, task.Title))
		}
	}
	if plan.DroppedTasks > 0 {
		b.WriteString(fmt.Sprintf("\n%d tasks dropped for lack of free time\n", plan.DroppedTasks))
	}
	if len(plan.PushList) > 0 {
		b.WriteString(fmt.Sprintf("%d shared events pending push (run with --push)\n", len(plan.PushList)))
	}
	return b.String()
}
