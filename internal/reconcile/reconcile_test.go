package reconcile

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"rollout/internal/model"
)

func day(offset int) time.Time {
	return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func localPlan() []model.ScheduledTask {
	return []model.ScheduledTask{
		{
			ID: "prep-w1-shoot-content", Title: "Shoot content", Kind: model.KindPrep,
			Date: day(2), StartMinute: 600, EndMinute: 750,
		},
		{
			ID: "post-w3-1", Title: "Teaser post", Kind: model.KindTeaser, Shared: true,
			Date: day(15), StartMinute: 600, EndMinute: 630,
		},
		{
			ID: "release-night-drive", Title: "Night Drive release day", Kind: model.KindRelease,
			Shared: true, Date: day(20), AllDay: true,
		},
	}
}

func TestMergeKeepsLocalSharedWhenStoreIsEmpty(t *testing.T) {
	merged := Merge(localPlan(), nil, "artist")
	if len(merged) != 3 {
		t.Fatalf("expected the full local plan, got %d tasks", len(merged))
	}
}

func TestMergePersistedSharedEventsReplaceLocal(t *testing.T) {
	persisted := []model.ScheduledTask{{
		ID: "evt-1", Title: "Teaser post", Kind: model.KindTeaser, Shared: true,
		Date: day(16), StartMinute: 660, EndMinute: 690, CreatedAt: day(0),
	}}

	merged := Merge(localPlan(), persisted, "artist")
	for _, task := range merged {
		if task.Shared && task.ID != "evt-1" {
			t.Fatalf("local shared event %s must be discarded", task.ID)
		}
	}
	// The private prep task survives.
	found := false
	for _, task := range merged {
		found = found || task.ID == "prep-w1-shoot-content"
	}
	if !found {
		t.Fatalf("private local task lost in merge")
	}
}

func TestMergeDeduplicatesPersistedById(t *testing.T) {
	event := model.ScheduledTask{
		ID: "evt-1", Title: "Promo post", Kind: model.KindPromo, Shared: true,
		Date: day(16), StartMinute: 600, EndMinute: 630, CreatedAt: day(0),
	}
	merged := Merge(nil, []model.ScheduledTask{event, event}, "artist")
	if len(merged) != 1 {
		t.Fatalf("expected one event after id dedup, got %d", len(merged))
	}
}

func TestMergeSameDateKeepsNewest(t *testing.T) {
	older := model.ScheduledTask{
		ID: "evt-1", Title: "Promo post", Kind: model.KindPromo, Shared: true,
		Date: day(16), StartMinute: 600, EndMinute: 630,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	newer := older
	newer.ID = "evt-2"
	newer.CreatedAt = time.Date(2026, 3, 1, 9, 0, 5, 0, time.UTC)

	merged := Merge(nil, []model.ScheduledTask{older, newer}, "artist")
	if len(merged) != 1 || merged[0].ID != "evt-2" {
		t.Fatalf("expected the newest same-date event to win, got %+v", merged)
	}
}

func TestMergeFiltersAssignedTasks(t *testing.T) {
	persisted := []model.ScheduledTask{
		{
			ID: "task-mine", Title: "Edit batch", Kind: model.KindPrep,
			Date: day(3), StartMinute: 600, EndMinute: 660, AssignedTo: "artist",
		},
		{
			ID: "task-unassigned", Title: "Captions", Kind: model.KindPrep,
			Date: day(3), StartMinute: 700, EndMinute: 730,
		},
		{
			ID: "task-theirs", Title: "Someone else's", Kind: model.KindPrep,
			Date: day(3), StartMinute: 800, EndMinute: 830, AssignedTo: "manager",
		},
	}

	merged := Merge(nil, persisted, "artist")
	if len(merged) != 2 {
		t.Fatalf("expected my task and the unassigned one, got %d", len(merged))
	}
	for _, task := range merged {
		if task.ID == "task-theirs" {
			t.Fatalf("another member's task leaked into the view")
		}
	}
}

func TestMergeIdempotent(t *testing.T) {
	persisted := []model.ScheduledTask{
		{
			ID: "evt-1", Title: "Teaser post", Kind: model.KindTeaser, Shared: true,
			Date: day(16), StartMinute: 600, EndMinute: 630, CreatedAt: day(0),
		},
		{
			ID: "task-unassigned", Title: "Captions", Kind: model.KindPrep,
			Date: day(3), StartMinute: 700, EndMinute: 730,
		},
	}

	first := Merge(localPlan(), persisted, "artist")
	second := Merge(first, persisted, "artist")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("merge is not idempotent (-first +second):\n%s", diff)
	}
}

func TestMemberViewIsolation(t *testing.T) {
	persisted := []model.ScheduledTask{{
		ID: "evt-1", Title: "Promo post", Kind: model.KindPromo, Shared: true,
		Date: day(10), StartMinute: 600, EndMinute: 630, CreatedAt: day(0),
	}}

	view := MemberView(persisted, "member")
	if len(view) != 1 || view[0].ID != "evt-1" {
		t.Fatalf("unexpected member view: %+v", view)
	}
	for _, task := range view {
		if task.ID != "evt-1" {
			t.Fatalf("member view contains a locally synthesized task: %s", task.ID)
		}
	}
}
