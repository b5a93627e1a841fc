// Package planner is the content scheduling engine: a pure, synchronous
// computation from one snapshot of inputs to one deterministic plan. Hosts
// re-run Recompute whenever any input changes; persisted events are the only
// durable state and are treated as ground truth to reconcile against.
package planner

import (
	"sort"
	"time"

	"rollout/internal/model"
	"rollout/internal/reconcile"
)

// Inputs is the read-only snapshot a recomputation works from.
type Inputs struct {
	Today        time.Time
	Profile      model.Profile
	Releases     []model.Release
	Brainstorm   *model.BrainstormResult
	Busy         []model.BusyInterval
	Persisted    []model.ScheduledTask
	Viewer       string
	HorizonWeeks int
}

// DayBucket is one calendar day of the projected plan, all-day events first.
type DayBucket struct {
	Date  time.Time
	Tasks []model.ScheduledTask
}

// Plan is the engine output: the merged task list, its day-indexed
// projection, the shared events that should be pushed to persistence, and a
// count of generated tasks dropped for lack of free time, covering prep
// templates, recurring posts and shoot/edit days alike.
type Plan struct {
	Tasks        []model.ScheduledTask
	Days         []DayBucket
	PushList     []model.ScheduledTask
	DroppedTasks int
}

// Recompute derives a full plan from scratch. It never mutates its inputs
// and has no side effects; persistence of the PushList is the host's job.
func Recompute(in Inputs) Plan {
	today := model.Day(in.Today)
	horizon := in.HorizonWeeks
	if horizon <= 0 {
		horizon = DefaultHorizonWeeks
	}
	signals := model.DeriveSignals(in.Profile)
	busy := newBusyCalendar(in.Busy, in.Persisted)

	templates := SelectPrepTemplates(in.Profile, signals)
	prepTasks, droppedPrep := schedulePrep(today, templates, in.Profile, busy)
	postTasks, droppedPosts := schedulePosting(today, in.Profile, signals, in.Releases, horizon, busy)
	local := append(prepTasks, postTasks...)
	local = append(local, releaseEvents(today, in.Releases, horizon)...)

	droppedBrainstorm := 0
	if in.Brainstorm != nil {
		postDates := sharedPostDates(postTasks)
		shootDays, editDays := PlaceBrainstormDays(
			in.Brainstorm.Assignments, postDates, signals.HasFootage, in.Profile.PreferredDays, today)
		tasks, dropped := brainstormTasks(shootDays, editDays, busy)
		local = append(local, tasks...)
		droppedBrainstorm = dropped
	}

	merged := reconcile.Merge(local, in.Persisted, in.Viewer)
	return Plan{
		Tasks:        merged,
		Days:         Project(merged),
		PushList:     pushList(local, in.Persisted),
		DroppedTasks: droppedPrep + droppedPosts + droppedBrainstorm,
	}
}

// MemberPlan is the teammate view: persisted events only, projected the same
// way as the owner's plan. The generator never runs here.
func MemberPlan(persisted []model.ScheduledTask, viewer string) Plan {
	tasks := reconcile.MemberView(persisted, viewer)
	return Plan{Tasks: tasks, Days: Project(tasks)}
}

// Project folds tasks into sorted per-day buckets for presentation.
func Project(tasks []model.ScheduledTask) []DayBucket {
	byDay := make(map[string][]model.ScheduledTask)
	keys := make([]string, 0)
	for _, task := range tasks {
		key := task.DayKey()
		if _, seen := byDay[key]; !seen {
			keys = append(keys, key)
		}
		byDay[key] = append(byDay[key], task)
	}
	sort.Strings(keys)

	out := make([]DayBucket, 0, len(keys))
	for _, key := range keys {
		bucket := byDay[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			if bucket[i].AllDay != bucket[j].AllDay {
				return bucket[i].AllDay
			}
			return bucket[i].StartMinute < bucket[j].StartMinute
		})
		date, _ := time.Parse("2006-01-02", key)
		out = append(out, DayBucket{Date: date.UTC(), Tasks: bucket})
	}
	return out
}

// pushList is the persistence delta: the freshly generated shared events,
// emitted only while the store holds no shared events yet (push-once).
func pushList(local, persisted []model.ScheduledTask) []model.ScheduledTask {
	for _, task := range persisted {
		if task.Shared || task.Kind.IsShared() {
			return nil
		}
	}
	out := make([]model.ScheduledTask, 0)
	for _, task := range local {
		if task.Shared || task.Kind.IsShared() {
			out = append(out, task)
		}
	}
	return out
}

// sharedPostDates lists the generated recurring post dates in date order, the
// index space format assignments refer to.
func sharedPostDates(postTasks []model.ScheduledTask) []time.Time {
	dates := make([]time.Time, 0, len(postTasks))
	for _, task := range postTasks {
		if task.Shared && task.Kind != model.KindRelease {
			dates = append(dates, task.Date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
