package storage

import "time"

const (
	CategoryEvent = "event"
	CategoryTask  = "task"

	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Event is the persisted row shape: shared campaign events carry category
// "event", privately assigned work carries "task".
type Event struct {
	ID            string
	Title         string
	Description   string
	Category      string
	Kind          string
	Date          string
	StartMinute   int
	EndMinute     int
	AllDay        bool
	Status        string
	AssignedTo    string
	ContentFormat string
	CreatedAt     time.Time
}

type EventListFilter struct {
	Category   string
	AssignedTo string
	FromDate   string
	ToDate     string
	Limit      int
	Offset     int
}
