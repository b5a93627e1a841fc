// Package reconcile merges a freshly recomputed local plan with the
// authoritative persisted event list. Persisted shared events always win;
// local generation only ever decides what should be persisted the first
// time around.
package reconcile

import (
	"sort"

	"rollout/internal/model"
)

// Merge combines locally generated tasks with persisted ones for the owning
// artist's view. When any persisted shared events exist, every locally
// generated shared event is discarded in their favor. Persisted non-shared
// tasks are merged when their id is new and they are unassigned or assigned
// to the viewer. The result is deterministic and idempotent.
func Merge(local, persisted []model.ScheduledTask, viewer string) []model.ScheduledTask {
	sharedPersisted := dedupeShared(sharedOf(persisted))

	out := make([]model.ScheduledTask, 0, len(local)+len(persisted))
	keepLocalShared := len(sharedPersisted) == 0
	seen := make(map[string]bool)
	for _, task := range local {
		if isShared(task) && !keepLocalShared {
			continue
		}
		out = append(out, task)
		seen[task.ID] = true
	}
	for _, event := range sharedPersisted {
		if seen[event.ID] {
			continue
		}
		out = append(out, event)
		seen[event.ID] = true
	}
	for _, task := range persisted {
		if isShared(task) || seen[task.ID] {
			continue
		}
		if task.AssignedTo != "" && task.AssignedTo != viewer {
			continue
		}
		out = append(out, task)
		seen[task.ID] = true
	}
	sortTasks(out)
	return out
}

// MemberView is the teammate projection: persisted data only, never the
// local generation path, so a member cannot drift from the store.
func MemberView(persisted []model.ScheduledTask, viewer string) []model.ScheduledTask {
	out := dedupeShared(sharedOf(persisted))
	seen := make(map[string]bool, len(out))
	for _, event := range out {
		seen[event.ID] = true
	}
	for _, task := range persisted {
		if isShared(task) || seen[task.ID] {
			continue
		}
		if task.AssignedTo != "" && task.AssignedTo != viewer {
			continue
		}
		out = append(out, task)
		seen[task.ID] = true
	}
	sortTasks(out)
	return out
}

func isShared(task model.ScheduledTask) bool {
	return task.Shared || task.Kind.IsShared()
}

func sharedOf(tasks []model.ScheduledTask) []model.ScheduledTask {
	out := make([]model.ScheduledTask, 0, len(tasks))
	for _, task := range tasks {
		if isShared(task) {
			out = append(out, task)
		}
	}
	return out
}

// dedupeShared drops duplicate persisted shared events: first by identifier,
// then by date keeping the most recently created. The date pass protects
// against a known upstream double-write.
func dedupeShared(events []model.ScheduledTask) []model.ScheduledTask {
	byID := make([]model.ScheduledTask, 0, len(events))
	seenID := make(map[string]bool, len(events))
	for _, event := range events {
		if seenID[event.ID] {
			continue
		}
		seenID[event.ID] = true
		byID = append(byID, event)
	}

	newestPerDay := make(map[string]model.ScheduledTask, len(byID))
	order := make([]string, 0, len(byID))
	for _, event := range byID {
		key := event.DayKey()
		current, exists := newestPerDay[key]
		if !exists {
			order = append(order, key)
			newestPerDay[key] = event
			continue
		}
		if event.CreatedAt.After(current.CreatedAt) {
			newestPerDay[key] = event
		}
	}

	out := make([]model.ScheduledTask, 0, len(order))
	for _, key := range order {
		out = append(out, newestPerDay[key])
	}
	return out
}

func sortTasks(tasks []model.ScheduledTask) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].Date.Equal(tasks[j].Date) {
			return tasks[i].Date.Before(tasks[j].Date)
		}
		if tasks[i].AllDay != tasks[j].AllDay {
			return tasks[i].AllDay
		}
		if tasks[i].StartMinute != tasks[j].StartMinute {
			return tasks[i].StartMinute < tasks[j].StartMinute
		}
		return tasks[i].ID < tasks[j].ID
	})
}
