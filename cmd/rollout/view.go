package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rollout/internal/planner"
	"rollout/internal/tui"
)

var memberFlag bool

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the campaign plan in an interactive calendar",
	Long: `Opens the computed plan in a terminal calendar: week-by-week agenda on
the left, task detail or campaign summary on the right. With --member, only
the shared calendar and the viewer's own assignments are shown; the plan
generator does not run.`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVar(&memberFlag, "member", false, "Show the persisted calendar only, as a team member sees it")
}

func runView(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	now := time.Now().UTC()

	var plan planner.Plan
	if memberFlag {
		repo, err := openStore()
		if err != nil {
			return err
		}
		defer repo.Close()
		plan = planner.MemberPlan(fetchPersisted(ctx, repo), cfg.Viewer)
	} else {
		computed, repo, err := computePlan(ctx, now)
		if err != nil {
			return err
		}
		repo.Close()
		plan = computed
	}

	program := tea.NewProgram(tui.NewModel(plan, now, cfg.Viewer))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
