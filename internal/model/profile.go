package model

import (
	"strings"
	"time"
)

type TeamMember struct {
	Name string
	Role string
}

// Profile is the normalized read-only view of artist configuration the
// engine plans against. It carries no behavior beyond derived lookups.
type Profile struct {
	WeeklyHourBudget      int
	PreferredDays         []time.Weekday
	EditedClipCount       int
	RawFootageDescription string
	PostsPerWeek          int
	StrategyNote          string
	Team                  []TeamMember
}

// Editor returns the first teammate whose role mentions editing.
func (p Profile) Editor() (TeamMember, bool) {
	for _, member := range p.Team {
		if strings.Contains(strings.ToLower(member.Role), "editor") {
			return member, true
		}
	}
	return TeamMember{}, false
}

func (p Profile) WeeklyMinuteBudget() int {
	return p.WeeklyHourBudget * 60
}

func (p Profile) PrefersDay(day time.Weekday) bool {
	for _, preferred := range p.PreferredDays {
		if preferred == day {
			return true
		}
	}
	return false
}

// ParseWeekday maps input-file day names ("monday", "Mon") to a weekday.
func ParseWeekday(raw string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sunday", "sun":
		return time.Sunday, true
	case "monday", "mon":
		return time.Monday, true
	case "tuesday", "tue", "tues":
		return time.Tuesday, true
	case "wednesday", "wed":
		return time.Wednesday, true
	case "thursday", "thu", "thurs":
		return time.Thursday, true
	case "friday", "fri":
		return time.Friday, true
	case "saturday", "sat":
		return time.Saturday, true
	default:
		return time.Sunday, false
	}
}
