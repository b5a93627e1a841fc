package model

import (
	"fmt"
	"strings"
	"time"
)

const releaseDateLayout = "2006-01-02"

// Release is an upcoming or past drop. A nil Date means the release is
// undated ("TBD") and must never anchor date-distance classification.
type Release struct {
	Name string
	Date *time.Time
	Type string
}

func (r Release) Dated() bool {
	return r.Date != nil && !r.Date.IsZero()
}

// ParseReleaseDate turns an input-file date into a release date. Empty,
// "null" and "TBD" values map to nil rather than an error.
func ParseReleaseDate(raw string) (*time.Time, error) {
	cleaned := strings.TrimSpace(raw)
	switch strings.ToLower(cleaned) {
	case "", "tbd", "null":
		return nil, nil
	}
	parsed, err := time.Parse(releaseDateLayout, cleaned)
	if err != nil {
		return nil, fmt.Errorf("model: parse release date %q: %w", raw, err)
	}
	day := Day(parsed)
	return &day, nil
}
