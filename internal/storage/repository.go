package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is the collaborator store owning long-lived events and tasks.
// The planning engine never talks to it directly; hosts fetch snapshots and
// push the plan's persistence delta through it.
type Repository interface {
	CreateEvent(ctx context.Context, in Event) error
	GetEvent(ctx context.Context, id string) (Event, error)
	UpdateEvent(ctx context.Context, in Event) error
	DeleteEvent(ctx context.Context, id string) error
	ListEvents(ctx context.Context, filter EventListFilter) ([]Event, error)
}
