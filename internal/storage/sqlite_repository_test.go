package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "rollout-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func sampleEvent(id, date string) Event {
	return Event{
		ID:          id,
		Title:       "Teaser post",
		Description: "Short preview clip",
		Category:    CategoryEvent,
		Kind:        "teaser",
		Date:        date,
		StartMinute: 600,
		EndMinute:   630,
		Status:      StatusPending,
		CreatedAt:   time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestEventCRUDAndList(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	event := sampleEvent("evt-1", "2026-03-16")
	if err := repo.CreateEvent(ctx, event); err != nil {
		t.Fatalf("create event: %v", err)
	}

	got, err := repo.GetEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got.Title != event.Title || got.Category != CategoryEvent || got.StartMinute != 600 {
		t.Fatalf("unexpected event get result: %#v", got)
	}
	if !got.CreatedAt.Equal(event.CreatedAt) {
		t.Fatalf("created_at roundtrip mismatch: %s", got.CreatedAt)
	}

	event.Title = "Teaser post v2"
	event.Status = StatusCompleted
	if err := repo.UpdateEvent(ctx, event); err != nil {
		t.Fatalf("update event: %v", err)
	}

	listed, err := repo.ListEvents(ctx, EventListFilter{Category: CategoryEvent})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(listed) != 1 || listed[0].Title != "Teaser post v2" || listed[0].Status != StatusCompleted {
		t.Fatalf("unexpected listing: %#v", listed)
	}

	if err := repo.DeleteEvent(ctx, event.ID); err != nil {
		t.Fatalf("delete event: %v", err)
	}
	if _, err := repo.GetEvent(ctx, event.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestUpdateMissingEventReturnsNotFound(t *testing.T) {
	repo := setupRepo(t)
	err := repo.UpdateEvent(context.Background(), sampleEvent("ghost", "2026-03-16"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListEventsFilters(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	shared := sampleEvent("evt-1", "2026-03-16")
	mine := Event{
		ID: "task-1", Title: "Edit batch", Category: CategoryTask, Kind: "prep",
		Date: "2026-03-10", StartMinute: 660, EndMinute: 750,
		Status: StatusPending, AssignedTo: "artist",
		CreatedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	theirs := mine
	theirs.ID = "task-2"
	theirs.AssignedTo = "manager"
	theirs.StartMinute = 800
	theirs.EndMinute = 860

	for _, event := range []Event{shared, mine, theirs} {
		if err := repo.CreateEvent(ctx, event); err != nil {
			t.Fatalf("create %s: %v", event.ID, err)
		}
	}

	tasks, err := repo.ListEvents(ctx, EventListFilter{Category: CategoryTask, AssignedTo: "artist"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "task-1" {
		t.Fatalf("assignment filter failed: %#v", tasks)
	}

	ranged, err := repo.ListEvents(ctx, EventListFilter{FromDate: "2026-03-15", ToDate: "2026-03-20"})
	if err != nil {
		t.Fatalf("list ranged: %v", err)
	}
	if len(ranged) != 1 || ranged[0].ID != "evt-1" {
		t.Fatalf("date range filter failed: %#v", ranged)
	}
}

func TestListEventsOrderAndPagination(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	for i, date := range []string{"2026-03-20", "2026-03-10", "2026-03-15"} {
		event := sampleEvent("evt-"+string(rune('a'+i)), date)
		if err := repo.CreateEvent(ctx, event); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := repo.ListEvents(ctx, EventListFilter{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 2 || page[0].Date != "2026-03-15" || page[1].Date != "2026-03-20" {
		t.Fatalf("unexpected page order: %#v", page)
	}
}
