package planner

import (
	"fmt"
	"time"

	"rollout/internal/model"
)

// schedulePrep packs the two-week prep template set into days 0-13, under a
// per-day cap and the weekly minute budget, preferred days first. Templates
// that fit nowhere are dropped and counted.
func schedulePrep(today time.Time, templates PrepTemplates, profile model.Profile, busy *busyCalendar) (tasks []model.ScheduledTask, dropped int) {
	weeks := [][]TaskTemplate{templates.Week1, templates.Week2}
	for weekIndex, weekTemplates := range weeks {
		weekStart := model.Day(today).AddDate(0, 0, 7*weekIndex)
		placed, droppedWeek := packWeek(weekIndex+1, weekStart, weekTemplates, profile, busy)
		tasks = append(tasks, placed...)
		dropped += droppedWeek
	}
	return tasks, dropped
}

func packWeek(weekNumber int, weekStart time.Time, templates []TaskTemplate, profile model.Profile, busy *busyCalendar) (tasks []model.ScheduledTask, dropped int) {
	budget := profile.WeeklyMinuteBudget()
	dayCap := dailyCap(profile, templates)
	days := weekDays(weekStart, profile.PreferredDays)

	usedPerDay := make(map[string]int, len(days))
	usedWeek := 0

	for _, tpl := range templates {
		if usedWeek+tpl.DurationMinutes > budget {
			dropped++
			continue
		}
		placed := false
		for _, day := range days {
			key := day.Format("2006-01-02")
			if usedPerDay[key]+tpl.DurationMinutes > dayCap {
				continue
			}
			slot, ok := busy.place(day, tpl.DurationMinutes)
			if !ok {
				continue
			}
			tasks = append(tasks, model.ScheduledTask{
				ID:          fmt.Sprintf("prep-w%d-%s", weekNumber, tpl.Key),
				Title:       tpl.Title,
				Description: tpl.Description,
				Kind:        model.KindPrep,
				Date:        day,
				StartMinute: slot.StartMinute,
				EndMinute:   slot.EndMinute,
			})
			usedPerDay[key] += tpl.DurationMinutes
			usedWeek += tpl.DurationMinutes
			placed = true
			break
		}
		if !placed {
			dropped++
		}
	}
	return tasks, dropped
}

// dailyCap spreads the weekly budget across the days the artist actually
// schedules on, floored at the longest template so an oversized step is not
// unschedulable by construction.
func dailyCap(profile model.Profile, templates []TaskTemplate) int {
	days := len(profile.PreferredDays)
	if days == 0 {
		days = 7
	}
	limit := profile.WeeklyMinuteBudget() / days
	for _, tpl := range templates {
		if tpl.DurationMinutes > limit {
			limit = tpl.DurationMinutes
		}
	}
	return limit
}

// weekDays orders the seven days of a week preferred-days-first, each group
// in chronological order.
func weekDays(weekStart time.Time, preferred []time.Weekday) []time.Time {
	isPreferred := make(map[time.Weekday]bool, len(preferred))
	for _, day := range preferred {
		isPreferred[day] = true
	}
	front := make([]time.Time, 0, 7)
	back := make([]time.Time, 0, 7)
	for offset := 0; offset < 7; offset++ {
		day := weekStart.AddDate(0, 0, offset)
		if isPreferred[day.Weekday()] {
			front = append(front, day)
		} else {
			back = append(back, day)
		}
	}
	return append(front, back...)
}
