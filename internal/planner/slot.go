package planner

import (
	"sort"
	"time"

	"rollout/internal/model"
)

// Canonical working window. The original planner carried both an 08:00 and
// a 10:00 start across variants; 10:00 is the one the product documents.
const (
	DayStartMinute = 10 * 60
	DayEndMinute   = 22 * 60
)

// Interval is a half-open [StartMinute, EndMinute) block within one day.
type Interval struct {
	StartMinute int
	EndMinute   int
}

func (iv Interval) DurationMinutes() int {
	return iv.EndMinute - iv.StartMinute
}

// FindSlot returns the first gap of at least durationMinutes inside the
// working window, walking busy intervals in start order. It has no side
// effects; the caller commits a slot by adding it to the busy set before
// the next call.
func FindSlot(durationMinutes int, busy []Interval) (Interval, bool) {
	if durationMinutes <= 0 || durationMinutes > DayEndMinute-DayStartMinute {
		return Interval{}, false
	}

	sorted := make([]Interval, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartMinute < sorted[j].StartMinute
	})

	cursor := DayStartMinute
	for _, block := range sorted {
		if block.EndMinute <= cursor {
			continue
		}
		if block.StartMinute-cursor >= durationMinutes {
			return Interval{StartMinute: cursor, EndMinute: cursor + durationMinutes}, true
		}
		cursor = block.EndMinute
	}
	if DayEndMinute-cursor >= durationMinutes {
		return Interval{StartMinute: cursor, EndMinute: cursor + durationMinutes}, true
	}
	return Interval{}, false
}

// busyCalendar tracks occupied intervals per calendar day: externally synced
// events plus every task the running allocation has already placed.
type busyCalendar struct {
	days map[string][]Interval
}

func newBusyCalendar(external []model.BusyInterval, persisted []model.ScheduledTask) *busyCalendar {
	cal := &busyCalendar{days: make(map[string][]Interval)}
	for _, block := range external {
		// External blocks may span days; clip them day by day.
		cursor := model.Day(block.Start)
		last := model.Day(block.End)
		for !cursor.After(last) {
			if start, end, ok := block.MinutesOn(cursor); ok {
				cal.add(cursor, Interval{StartMinute: start, EndMinute: end})
			}
			cursor = cursor.AddDate(0, 0, 1)
		}
	}
	for _, task := range persisted {
		if task.AllDay {
			continue
		}
		cal.add(task.Date, Interval{StartMinute: task.StartMinute, EndMinute: task.EndMinute})
	}
	return cal
}

func (c *busyCalendar) add(date time.Time, iv Interval) {
	key := model.Day(date).Format("2006-01-02")
	c.days[key] = append(c.days[key], iv)
}

func (c *busyCalendar) on(date time.Time) []Interval {
	return c.days[model.Day(date).Format("2006-01-02")]
}

// place finds a slot on date and commits it, returning the slot.
func (c *busyCalendar) place(date time.Time, durationMinutes int) (Interval, bool) {
	slot, ok := FindSlot(durationMinutes, c.on(date))
	if !ok {
		return Interval{}, false
	}
	c.add(date, slot)
	return slot, true
}
