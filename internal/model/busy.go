package model

import "time"

// BusyInterval is an externally synced calendar block. Intervals are treated
// as read-only input; only the portion falling inside a single day matters
// to the slot finder.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// MinutesOn clips the interval to the given calendar day and returns it as
// minutes since midnight. ok is false when the interval misses the day.
func (b BusyInterval) MinutesOn(date time.Time) (startMinute, endMinute int, ok bool) {
	day := Day(date)
	next := day.AddDate(0, 0, 1)
	start := b.Start.UTC()
	end := b.End.UTC()
	if !end.After(day) || !start.Before(next) {
		return 0, 0, false
	}
	startMinute = 0
	if start.After(day) {
		startMinute = start.Hour()*60 + start.Minute()
	}
	endMinute = MinutesPerDay
	if end.Before(next) {
		endMinute = end.Hour()*60 + end.Minute()
	}
	if startMinute >= endMinute {
		return 0, 0, false
	}
	return startMinute, endMinute, true
}
