package planner

import (
	"fmt"
	"time"

	"rollout/internal/campaign"
	"rollout/internal/model"
)

const (
	// PostDurationMinutes is the fixed slot every recurring post consumes.
	PostDurationMinutes = 30
	// FillerFloorMinutes is the smallest filler task worth scheduling.
	FillerFloorMinutes = 30
	// DefaultPostsPerWeek applies when the profile carries no cadence.
	DefaultPostsPerWeek = 3
	// DefaultHorizonWeeks is the planning horizon; the posting phase covers
	// weeks 3 through the horizon.
	DefaultHorizonWeeks = 8

	postingFirstWeek = 3
)

// schedulePosting produces the classified recurring posts and filler prep
// tasks for weeks 3 through horizonWeeks. droppedPosts counts posts the
// weekly target asked for that no day could hold.
func schedulePosting(today time.Time, profile model.Profile, signals model.ContentSignals, releases []model.Release, horizonWeeks int, busy *busyCalendar) (tasks []model.ScheduledTask, droppedPosts int) {
	if horizonWeeks <= 0 {
		horizonWeeks = DefaultHorizonWeeks
	}
	target := profile.PostsPerWeek
	if target <= 0 {
		target = DefaultPostsPerWeek
	}
	filler := FillerTemplates(TierFor(profile, signals))
	start := model.Day(today)

	postedDays := make(map[string]bool)
	for week := postingFirstWeek; week <= horizonWeeks; week++ {
		weekStart := start.AddDate(0, 0, 7*(week-1))
		days := weekDays(weekStart, profile.PreferredDays)
		budget := profile.WeeklyMinuteBudget()
		used := 0

		placedPosts := 0
		for _, day := range days {
			if placedPosts >= target {
				break
			}
			if used+PostDurationMinutes > budget {
				break
			}
			if postedDays[dayKey(day)] || postedDays[dayKey(day.AddDate(0, 0, -1))] {
				continue
			}
			slot, ok := busy.place(day, PostDurationMinutes)
			if !ok {
				continue
			}
			kind := campaign.Classify(day, releases, campaign.Hint{
				Override:    signals.Override,
				PostOrdinal: placedPosts,
			})
			anchor, hasAnchor := campaign.AnchorRelease(day, releases)
			title, description := campaign.PostCopy(kind, anchor, hasAnchor)
			tasks = append(tasks, model.ScheduledTask{
				ID:          fmt.Sprintf("post-w%d-%d", week, placedPosts+1),
				Title:       title,
				Description: description,
				Kind:        kind,
				Date:        day,
				StartMinute: slot.StartMinute,
				EndMinute:   slot.EndMinute,
				Shared:      true,
			})
			postedDays[dayKey(day)] = true
			placedPosts++
			used += PostDurationMinutes
		}
		droppedPosts += target - placedPosts

		tasks = append(tasks, fillWeek(week, days, filler, budget, &used, busy)...)
	}
	return tasks, droppedPosts
}

// fillWeek spends the remaining weekly budget on filler prep tasks, at most
// one per day per week, each sized down to fit the remainder but never below
// the floor.
func fillWeek(week int, days []time.Time, filler []TaskTemplate, budget int, used *int, busy *busyCalendar) []model.ScheduledTask {
	if len(filler) == 0 {
		return nil
	}
	out := make([]model.ScheduledTask, 0)
	for i, day := range days {
		remaining := budget - *used
		if remaining < FillerFloorMinutes {
			break
		}
		tpl := filler[i%len(filler)]
		duration := tpl.DurationMinutes
		if duration > remaining {
			duration = remaining
		}
		if duration < FillerFloorMinutes {
			break
		}
		slot, ok := busy.place(day, duration)
		if !ok {
			continue
		}
		out = append(out, model.ScheduledTask{
			ID:          fmt.Sprintf("filler-w%d-%d-%s", week, i+1, tpl.Key),
			Title:       tpl.Title,
			Description: tpl.Description,
			Kind:        model.KindPrep,
			Date:        day,
			StartMinute: slot.StartMinute,
			EndMinute:   slot.EndMinute,
		})
		*used += duration
	}
	return out
}

// releaseEvents inserts every dated release inside the horizon as an all-day
// shared event, independent of the budget.
func releaseEvents(today time.Time, releases []model.Release, horizonWeeks int) []model.ScheduledTask {
	if horizonWeeks <= 0 {
		horizonWeeks = DefaultHorizonWeeks
	}
	start := model.Day(today)
	out := make([]model.ScheduledTask, 0)
	for _, release := range releases {
		if !release.Dated() {
			continue
		}
		offset := model.DaysBetween(start, *release.Date)
		if offset < 0 || offset > horizonWeeks*7 {
			continue
		}
		out = append(out, model.ScheduledTask{
			ID:          "release-" + slugify(release.Name),
			Title:       release.Name + " release day",
			Description: fmt.Sprintf("%s drops today.", release.Name),
			Kind:        model.KindRelease,
			Date:        model.Day(*release.Date),
			AllDay:      true,
			Shared:      true,
		})
	}
	return out
}

func dayKey(date time.Time) string {
	return model.Day(date).Format("2006-01-02")
}

func slugify(s string) string {
	out := make([]rune, 0, len(s))
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
			lastDash = false
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			lastDash = false
		default:
			if !lastDash {
				out = append(out, '-')
				lastDash = true
			}
		}
	}
	if len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
