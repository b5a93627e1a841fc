package planner

import (
	"testing"
	"time"

	"rollout/internal/model"
)

func monday() time.Time {
	return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
}

func assertNoOverlap(t *testing.T, tasks []model.ScheduledTask) {
	t.Helper()
	for i := range tasks {
		for j := i + 1; j < len(tasks); j++ {
			if tasks[i].AssignedTo != tasks[j].AssignedTo {
				continue
			}
			if tasks[i].Overlaps(tasks[j]) {
				t.Fatalf("tasks overlap: %s and %s on %s", tasks[i].ID, tasks[j].ID, tasks[i].DayKey())
			}
		}
	}
}

func weeklyMinutes(tasks []model.ScheduledTask, weekStart time.Time) map[int]int {
	totals := make(map[int]int)
	for _, task := range tasks {
		week := model.DaysBetween(weekStart, task.Date) / 7
		totals[week] += task.DurationMinutes()
	}
	return totals
}

func TestSchedulePrepRespectsWeeklyBudget(t *testing.T) {
	profile := model.Profile{WeeklyHourBudget: 5}
	templates := SelectPrepTemplates(profile, model.ContentSignals{})
	busy := newBusyCalendar(nil, nil)

	tasks, _ := schedulePrep(monday(), templates, profile, busy)
	if len(tasks) == 0 {
		t.Fatalf("expected some prep tasks")
	}
	for week, total := range weeklyMinutes(tasks, monday()) {
		if total > profile.WeeklyMinuteBudget() {
			t.Fatalf("week %d exceeds budget: %d > %d", week, total, profile.WeeklyMinuteBudget())
		}
	}
	assertNoOverlap(t, tasks)
}

func TestSchedulePrepPlacesWeeksInOrder(t *testing.T) {
	profile := model.Profile{WeeklyHourBudget: 10}
	templates := SelectPrepTemplates(profile, model.ContentSignals{})
	busy := newBusyCalendar(nil, nil)

	tasks, dropped := schedulePrep(monday(), templates, profile, busy)
	if dropped != 0 {
		t.Fatalf("nothing should drop with a generous budget, dropped %d", dropped)
	}
	weekEnd := monday().AddDate(0, 0, 7)
	horizon := monday().AddDate(0, 0, 14)
	for _, task := range tasks {
		if task.Date.Before(monday()) || !task.Date.Before(horizon) {
			t.Fatalf("task %s outside the two prep weeks: %s", task.ID, task.DayKey())
		}
		week1 := task.Date.Before(weekEnd)
		if week1 != (task.ID[:7] == "prep-w1") {
			t.Fatalf("task %s placed in the wrong week: %s", task.ID, task.DayKey())
		}
	}
}

func TestSchedulePrepPrefersPreferredDays(t *testing.T) {
	profile := model.Profile{
		WeeklyHourBudget: 10,
		PreferredDays:    []time.Weekday{time.Saturday, time.Sunday},
	}
	templates := PrepTemplates{Week1: []TaskTemplate{
		{Key: "one", Title: "One", DurationMinutes: 60},
	}}
	busy := newBusyCalendar(nil, nil)

	tasks, _ := schedulePrep(monday(), templates, profile, busy)
	if len(tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(tasks))
	}
	if day := tasks[0].Date.Weekday(); day != time.Saturday {
		t.Fatalf("expected the first preferred day (Saturday), got %s", day)
	}
}

func TestSchedulePrepDropsWhenNoSlotExists(t *testing.T) {
	profile := model.Profile{WeeklyHourBudget: 20}
	templates := PrepTemplates{Week1: []TaskTemplate{
		{Key: "one", Title: "One", DurationMinutes: 60},
	}}

	// Every day of week 1 is fully booked by external events.
	blocks := make([]model.BusyInterval, 0, 7)
	for offset := 0; offset < 7; offset++ {
		day := monday().AddDate(0, 0, offset)
		blocks = append(blocks, model.BusyInterval{
			Start: day.Add(time.Duration(DayStartMinute) * time.Minute),
			End:   day.Add(time.Duration(DayEndMinute) * time.Minute),
		})
	}
	busy := newBusyCalendar(blocks, nil)

	tasks, dropped := schedulePrep(monday(), templates, profile, busy)
	if len(tasks) != 0 || dropped != 1 {
		t.Fatalf("expected a silent drop with a count: tasks=%d dropped=%d", len(tasks), dropped)
	}
}

func TestSchedulePrepAvoidsExternalBusyTime(t *testing.T) {
	profile := model.Profile{WeeklyHourBudget: 6}
	templates := PrepTemplates{Week1: []TaskTemplate{
		{Key: "one", Title: "One", DurationMinutes: 90},
	}}
	day := monday()
	busy := newBusyCalendar([]model.BusyInterval{
		{
			Start: day.Add(10 * time.Hour),
			End:   day.Add(12 * time.Hour),
		},
	}, nil)

	tasks, _ := schedulePrep(day, templates, profile, busy)
	if len(tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(tasks))
	}
	if tasks[0].Date.Equal(day) && tasks[0].StartMinute < 12*60 {
		t.Fatalf("task collides with the synced event: %+v", tasks[0])
	}
}
