package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"rollout/internal/config"
	"rollout/internal/model"
	"rollout/internal/planner"
	"rollout/internal/storage"
)

// computePlan runs the full host pipeline: load the plan file, fetch the
// persisted calendar, recompute. A failed fetch degrades to an empty
// persisted set so the engine always produces a plan.
func computePlan(ctx context.Context, now time.Time) (planner.Plan, *storage.SQLiteRepository, error) {
	inputs, err := config.LoadPlanFile(cfg.ProfilePath)
	if err != nil {
		return planner.Plan{}, nil, err
	}

	repo, err := openStore()
	if err != nil {
		return planner.Plan{}, nil, err
	}

	persisted := fetchPersisted(ctx, repo)

	var brainstorm *model.BrainstormResult
	if len(inputs.Brainstorm) > 0 {
		brainstorm = &model.BrainstormResult{Assignments: inputs.Brainstorm}
	}

	plan := planner.Recompute(planner.Inputs{
		Today:        now,
		Profile:      inputs.Profile,
		Releases:     inputs.Releases,
		Brainstorm:   brainstorm,
		Busy:         inputs.Busy,
		Persisted:    persisted,
		Viewer:       cfg.Viewer,
		HorizonWeeks: cfg.HorizonWeeks,
	})
	return plan, repo, nil
}

func openStore() (*storage.SQLiteRepository, error) {
	repo, err := storage.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open calendar store: %w", err)
	}
	return repo, nil
}

func fetchPersisted(ctx context.Context, repo *storage.SQLiteRepository) []model.ScheduledTask {
	events, err := repo.ListEvents(ctx, storage.EventListFilter{})
	if err != nil {
		logger.Warn("persisted calendar unavailable, planning from scratch", zap.Error(err))
		return nil
	}
	return storage.TasksFromEvents(events)
}

// pushShared persists the plan's push list as shared calendar events,
// assigning each a fresh durable ID.
func pushShared(ctx context.Context, repo *storage.SQLiteRepository, plan planner.Plan, now time.Time, newID func() string) (int, error) {
	for _, task := range plan.PushList {
		event := storage.EventFromTask(task, newID(), now)
		if err := repo.CreateEvent(ctx, event); err != nil {
			return 0, fmt.Errorf("push event %q: %w", task.Title, err)
		}
	}
	return len(plan.PushList), nil
}
