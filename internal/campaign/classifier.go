package campaign

import (
	"time"

	"rollout/internal/model"
)

// Campaign windows in days around a release date. A post inside the window
// before a drop teases it; a post inside the window after promotes it.
const (
	TeaserWindowDays = 14
	PromoWindowDays  = 30
)

// Hint carries the non-date classification inputs: the artist's strategy
// override and the ordinal of the post within its week, used to spread
// forced promo posts when the override is active.
type Hint struct {
	Override    model.StrategyOverride
	PostOrdinal int
}

// Classify assigns a campaign phase to a candidate post date. Priority
// order: teaser window, promo window, strategy override, audience-builder.
// Undated releases never anchor a window.
func Classify(candidate time.Time, releases []model.Release, hint Hint) model.TaskKind {
	day := model.Day(candidate)

	if _, ok := closestUpcoming(day, releases); ok {
		return model.KindTeaser
	}
	if _, ok := mostRecentPast(day, releases); ok {
		return model.KindPromo
	}
	if hint.Override == model.OverridePromoBits && hint.PostOrdinal%4 == 0 {
		return model.KindPromo
	}
	return model.KindAudienceBuilder
}

// closestUpcoming returns the nearest dated release strictly after day and
// within the teaser window.
func closestUpcoming(day time.Time, releases []model.Release) (model.Release, bool) {
	best := model.Release{}
	bestDelta := TeaserWindowDays + 1
	for _, release := range releases {
		if !release.Dated() {
			continue
		}
		delta := model.DaysBetween(day, *release.Date)
		if delta <= 0 || delta > TeaserWindowDays {
			continue
		}
		if delta < bestDelta {
			best = release
			bestDelta = delta
		}
	}
	return best, bestDelta <= TeaserWindowDays
}

// mostRecentPast returns the nearest dated release strictly before day and
// within the promo window.
func mostRecentPast(day time.Time, releases []model.Release) (model.Release, bool) {
	best := model.Release{}
	bestDelta := PromoWindowDays + 1
	for _, release := range releases {
		if !release.Dated() {
			continue
		}
		delta := model.DaysBetween(*release.Date, day)
		if delta <= 0 || delta > PromoWindowDays {
			continue
		}
		if delta < bestDelta {
			best = release
			bestDelta = delta
		}
	}
	return best, bestDelta <= PromoWindowDays
}

// AnchorRelease reports the release that decided the classification for a
// date, when one exists. Used to name posts after the drop they support.
func AnchorRelease(candidate time.Time, releases []model.Release) (model.Release, bool) {
	day := model.Day(candidate)
	if release, ok := closestUpcoming(day, releases); ok {
		return release, true
	}
	if release, ok := mostRecentPast(day, releases); ok {
		return release, true
	}
	return model.Release{}, false
}
