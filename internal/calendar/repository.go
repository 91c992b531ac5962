package calendar

import (
	"context"
	"time"
)

// Repository defines the storage interface for booked events.
type Repository interface {
	// CreateEvent stores e and sets its ID.
	CreateEvent(ctx context.Context, e *Event) error

	// GetEvent returns ErrEventNotFound when no event has the id.
	GetEvent(ctx context.Context, id int64) (*Event, error)

	// ListEventsByDateRange returns events sharing at least one day with
	// start..end, ordered by start date.
	ListEventsByDateRange(ctx context.Context, start, end time.Time) ([]*Event, error)

	// DeleteEvent returns ErrEventNotFound when no event has the id.
	DeleteEvent(ctx context.Context, id int64) error

	// Close releases any resources held by the repository.
	Close() error
}
