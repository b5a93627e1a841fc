package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidKind     = errors.New("model: invalid task kind")
	ErrInvalidInterval = errors.New("model: invalid task interval")
)

const MinutesPerDay = 24 * 60

type TaskKind string

const (
	KindPrep            TaskKind = "prep"
	KindAudienceBuilder TaskKind = "audience-builder"
	KindTeaser          TaskKind = "teaser"
	KindPromo           TaskKind = "promo"
	KindRelease         TaskKind = "release"
	KindEdit            TaskKind = "edit"
	KindShoot           TaskKind = "shoot"
)

func (k TaskKind) IsValid() bool {
	switch k {
	case KindPrep, KindAudienceBuilder, KindTeaser, KindPromo, KindRelease, KindEdit, KindShoot:
		return true
	default:
		return false
	}
}

// IsShared reports whether tasks of this kind are campaign events that every
// team member sees identically, as opposed to privately assigned work.
func (k TaskKind) IsShared() bool {
	switch k {
	case KindAudienceBuilder, KindTeaser, KindPromo, KindRelease:
		return true
	default:
		return false
	}
}

// ScheduledTask is one unit of planned work or one shared campaign event.
// Date is a wall-clock calendar day (midnight UTC); StartMinute and EndMinute
// bound the task inside that day as minutes since midnight.
type ScheduledTask struct {
	ID            string
	Title         string
	Description   string
	Kind          TaskKind
	Date          time.Time
	StartMinute   int
	EndMinute     int
	AllDay        bool
	Completed     bool
	Shared        bool
	ContentFormat string
	AssignedTo    string
	CreatedAt     time.Time
}

func (t ScheduledTask) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, t.Kind)
	}
	if t.Date.IsZero() {
		return errors.New("model: task date is required")
	}
	if t.AllDay {
		return nil
	}
	if t.StartMinute < 0 || t.EndMinute > MinutesPerDay || t.StartMinute >= t.EndMinute {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidInterval, t.StartMinute, t.EndMinute)
	}
	return nil
}

// Overlaps reports whether two timed tasks on the same day intersect.
// All-day events never overlap anything.
func (t ScheduledTask) Overlaps(other ScheduledTask) bool {
	if t.AllDay || other.AllDay {
		return false
	}
	if !SameDay(t.Date, other.Date) {
		return false
	}
	return t.StartMinute < other.EndMinute && other.StartMinute < t.EndMinute
}

func (t ScheduledTask) DurationMinutes() int {
	if t.AllDay {
		return 0
	}
	return t.EndMinute - t.StartMinute
}

func (t ScheduledTask) DayKey() string {
	return t.Date.Format("2006-01-02")
}

func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
