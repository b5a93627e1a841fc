package campaign

import (
	"testing"
	"time"

	"rollout/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datedRelease(name string, y int, m time.Month, d int) model.Release {
	when := date(y, m, d)
	return model.Release{Name: name, Date: &when, Type: "single"}
}

func TestClassifyWindows(t *testing.T) {
	releases := []model.Release{datedRelease("Night Drive", 2025, 3, 15)}

	if got := Classify(date(2025, 3, 10), releases, Hint{}); got != model.KindTeaser {
		t.Fatalf("five days before release: expected teaser, got %s", got)
	}
	if got := Classify(date(2025, 4, 1), releases, Hint{}); got != model.KindPromo {
		t.Fatalf("17 days after release: expected promo, got %s", got)
	}
	if got := Classify(date(2025, 6, 1), releases, Hint{}); got != model.KindAudienceBuilder {
		t.Fatalf("far from release: expected audience-builder, got %s", got)
	}
}

func TestClassifyWindowEdges(t *testing.T) {
	releases := []model.Release{datedRelease("Night Drive", 2025, 3, 15)}

	if got := Classify(date(2025, 3, 1), releases, Hint{}); got != model.KindTeaser {
		t.Fatalf("exactly 14 days out: expected teaser, got %s", got)
	}
	if got := Classify(date(2025, 2, 28), releases, Hint{}); got != model.KindAudienceBuilder {
		t.Fatalf("15 days out: expected audience-builder, got %s", got)
	}
	if got := Classify(date(2025, 3, 15), releases, Hint{}); got != model.KindAudienceBuilder {
		t.Fatalf("release day itself is outside both windows, got %s", got)
	}
	if got := Classify(date(2025, 4, 14), releases, Hint{}); got != model.KindPromo {
		t.Fatalf("exactly 30 days after: expected promo, got %s", got)
	}
	if got := Classify(date(2025, 4, 15), releases, Hint{}); got != model.KindAudienceBuilder {
		t.Fatalf("31 days after: expected audience-builder, got %s", got)
	}
}

func TestClassifyTeaserBeatsPromo(t *testing.T) {
	releases := []model.Release{
		datedRelease("Old Single", 2025, 3, 1),
		datedRelease("New Single", 2025, 3, 20),
	}
	// 2025-03-10 is 9 days after Old Single and 10 days before New Single.
	if got := Classify(date(2025, 3, 10), releases, Hint{}); got != model.KindTeaser {
		t.Fatalf("teaser must win over promo, got %s", got)
	}
}

func TestClassifyClosestUpcomingWins(t *testing.T) {
	releases := []model.Release{
		datedRelease("Later EP", 2025, 3, 22),
		datedRelease("Sooner Single", 2025, 3, 12),
	}
	anchor, ok := AnchorRelease(date(2025, 3, 10), releases)
	if !ok || anchor.Name != "Sooner Single" {
		t.Fatalf("expected closest upcoming release to anchor, got %+v %v", anchor, ok)
	}
}

func TestClassifySkipsUndatedReleases(t *testing.T) {
	releases := []model.Release{
		{Name: "Mystery Album", Date: nil, Type: "album"},
	}
	if got := Classify(date(2025, 3, 10), releases, Hint{}); got != model.KindAudienceBuilder {
		t.Fatalf("undated release must not classify, got %s", got)
	}
}

func TestClassifyStrategyOverride(t *testing.T) {
	hint := Hint{Override: model.OverridePromoBits}
	none := []model.Release{}

	got := make([]model.TaskKind, 0, 4)
	for ordinal := 0; ordinal < 4; ordinal++ {
		hint.PostOrdinal = ordinal
		got = append(got, Classify(date(2025, 6, 2+ordinal), none, hint))
	}
	if got[0] != model.KindPromo {
		t.Fatalf("first post of the week should be forced promo, got %s", got[0])
	}
	for i := 1; i < 4; i++ {
		if got[i] != model.KindAudienceBuilder {
			t.Fatalf("post %d should default to audience-builder, got %s", i, got[i])
		}
	}
}

func TestPostCopyNamesAnchor(t *testing.T) {
	title, desc := PostCopy(model.KindTeaser, model.Release{Name: "Night Drive"}, true)
	if title != "Teaser post for Night Drive" || desc == "" {
		t.Fatalf("unexpected teaser copy: %q %q", title, desc)
	}
	title, _ = PostCopy(model.KindAudienceBuilder, model.Release{}, false)
	if title != "Audience-building post" {
		t.Fatalf("unexpected audience copy: %q", title)
	}
}
