package ports

import (
	"context"
	"errors"
	"time"

	"event-scheduling-service/internal/events/core/domain"
)

var (
	ErrEventNotFound = errors.New("event not found")
	// ErrScheduleConflict is returned when the store itself refuses a write
	// because the event would overlap a persisted one.
	ErrScheduleConflict = errors.New("event overlaps an existing event")
	ErrCorruptRecord    = errors.New("corrupt event record")
)

type EventListerPort interface {
	// ListEvents returns the full event collection. A row that cannot be
	// decoded fails the whole call with ErrCorruptRecord.
	ListEvents(ctx context.Context) ([]domain.Event, error)
}

type EventRepositoryPort interface {
	EventListerPort

	GetEvent(ctx context.Context, id int64) (domain.Event, error)
	// CreateEvent ignores e.ID and returns the event with its assigned id.
	CreateEvent(ctx context.Context, e domain.Event) (domain.Event, error)
	UpdateEvent(ctx context.Context, e domain.Event) (domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type Clock interface {
	Now() time.Time
}
