package main

import (
	"strings"
	"testing"
	"time"

	"rollout/internal/model"
	"rollout/internal/planner"
)

func TestFormatPlan(t *testing.T) {
	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	tasks := []model.ScheduledTask{
		{
			ID: "release-midnight-ep", Title: "Release: Midnight EP", Kind: model.KindRelease,
			Date: day, AllDay: true, Shared: true, CreatedAt: day,
		},
		{
			ID: "prep-w1-upload", Title: "Upload first clip batch", Kind: model.KindPrep,
			Date: day, StartMinute: 600, EndMinute: 660, CreatedAt: day,
		},
	}
	plan := planner.Plan{
		Tasks:        tasks,
		Days:         planner.Project(tasks),
		PushList:     tasks[:1],
		DroppedTasks: 2,
	}

	out := formatPlan(plan)
	if !strings.Contains(out, "Mon 2026-03-16") {
		t.Fatalf("missing day header:\n%s", out)
	}
	allDayIdx := strings.Index(out, "Release: Midnight EP")
	timedIdx := strings.Index(out, "Upload first clip batch")
	if allDayIdx == -1 || timedIdx == -1 || allDayIdx > timedIdx {
		t.Fatalf("all-day event must print before timed tasks:\n%s", out)
	}
	if !strings.Contains(out, "* all-day") {
		t.Fatalf("shared all-day marker missing:\n%s", out)
	}
	if !strings.Contains(out, "10:00-11:00") {
		t.Fatalf("timed interval missing:\n%s", out)
	}
	if !strings.Contains(out, "2 tasks dropped") {
		t.Fatalf("dropped count missing:\n%s", out)
	}
	if !strings.Contains(out, "1 shared events pending push") {
		t.Fatalf("push hint missing:\n%s", out)
	}
}
