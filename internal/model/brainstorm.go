package model

import "time"

// FormatAssignment links one recurring post (by its index in the generated
// post list, ordered by date) to a chosen content format.
type FormatAssignment struct {
	PostIndex  int
	Format     string
	CustomName string
}

// Label returns the human label for the format, preferring a custom name.
func (a FormatAssignment) Label() string {
	if a.CustomName != "" {
		return a.CustomName
	}
	return a.Format
}

// ShootDay is a planned filming day feeding one content format.
type ShootDay struct {
	Format          string
	Reason          string
	DurationMinutes int
	Date            time.Time
}

// EditDay covers a bounded batch of assigned posts for one format.
type EditDay struct {
	Format      string
	PostIndices []int
	Date        time.Time
}

// BrainstormResult is the outcome of a content-brainstorm session: which
// formats the upcoming posts use, plus the derived shoot and edit days once
// the placer has dated them.
type BrainstormResult struct {
	Assignments []FormatAssignment
	ShootDays   []ShootDay
	EditDays    []EditDay
}
