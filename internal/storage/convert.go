package storage

import (
	"time"

	"rollout/internal/model"
)

const dateLayout = "2006-01-02"

// EventFromTask maps a plan task onto the persisted row shape. The id is the
// caller's responsibility: pushed events get a fresh UUID exactly once.
func EventFromTask(task model.ScheduledTask, id string, createdAt time.Time) Event {
	category := CategoryTask
	if task.Shared || task.Kind.IsShared() {
		category = CategoryEvent
	}
	status := StatusPending
	if task.Completed {
		status = StatusCompleted
	}
	return Event{
		ID:            id,
		Title:         task.Title,
		Description:   task.Description,
		Category:      category,
		Kind:          string(task.Kind),
		Date:          task.Date.Format(dateLayout),
		StartMinute:   task.StartMinute,
		EndMinute:     task.EndMinute,
		AllDay:        task.AllDay,
		Status:        status,
		AssignedTo:    task.AssignedTo,
		ContentFormat: task.ContentFormat,
		CreatedAt:     createdAt.UTC(),
	}
}

// TaskFromEvent maps a persisted row back into the engine's task shape.
// Rows with an unparseable date or kind are reported so callers can skip
// them instead of feeding garbage into reconciliation.
func TaskFromEvent(event Event) (model.ScheduledTask, error) {
	date, err := time.Parse(dateLayout, event.Date)
	if err != nil {
		return model.ScheduledTask{}, err
	}
	kind := model.TaskKind(event.Kind)
	if !kind.IsValid() {
		kind = model.KindPrep
	}
	return model.ScheduledTask{
		ID:            event.ID,
		Title:         event.Title,
		Description:   event.Description,
		Kind:          kind,
		Date:          date.UTC(),
		StartMinute:   event.StartMinute,
		EndMinute:     event.EndMinute,
		AllDay:        event.AllDay,
		Completed:     event.Status == StatusCompleted,
		Shared:        event.Category == CategoryEvent,
		AssignedTo:    event.AssignedTo,
		ContentFormat: event.ContentFormat,
		CreatedAt:     event.CreatedAt,
	}, nil
}

// TasksFromEvents converts a listing, silently skipping malformed rows.
func TasksFromEvents(events []Event) []model.ScheduledTask {
	out := make([]model.ScheduledTask, 0, len(events))
	for _, event := range events {
		task, err := TaskFromEvent(event)
		if err != nil {
			continue
		}
		out = append(out, task)
	}
	return out
}
