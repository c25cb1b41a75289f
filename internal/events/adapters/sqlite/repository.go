package sqlite

import (
	"context"
	"fmt"
	"strings"

	"event-scheduling-service/internal/events/core/domain"
	"event-scheduling-service/internal/events/core/ports"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

const listEventsSQL = `
SELECT id, title, event_date, start_time, end_time
FROM events
ORDER BY event_date, start_time, id`

const getEventSQL = `
SELECT id, title, event_date, start_time, end_time
FROM events
WHERE id = ?`

const insertEventSQL = `
INSERT INTO events (title, event_date, start_time, end_time)
VALUES (?, ?, ?, ?)`

const updateEventSQL = `
UPDATE events
SET title = ?, event_date = ?, start_time = ?, end_time = ?
WHERE id = ?`

const deleteEventSQL = `DELETE FROM events WHERE id = ?`

func (r *EventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listEventsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (r *EventRepository) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, getEventSQL, id)
	if err != nil {
		return domain.Event{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Event{}, err
		}
		return domain.Event{}, fmt.Errorf("%w: id %d", ports.ErrEventNotFound, id)
	}

	return scanEvent(rows)
}

func (r *EventRepository) CreateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	res, err := r.db.ExecContext(ctx, insertEventSQL,
		e.Title, e.Date.String(), e.Start.StorageString(), e.End.StorageString(),
	)
	if err != nil {
		return domain.Event{}, translateError(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Event{}, err
	}
	e.ID = id

	return e, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	res, err := r.db.ExecContext(ctx, updateEventSQL,
		e.Title, e.Date.String(), e.Start.StorageString(), e.End.StorageString(), e.ID,
	)
	if err != nil {
		return domain.Event{}, translateError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return domain.Event{}, err
	}
	if n == 0 {
		return domain.Event{}, fmt.Errorf("%w: id %d", ports.ErrEventNotFound, e.ID)
	}

	return e, nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteEventSQL, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", ports.ErrEventNotFound, id)
	}

	return nil
}

func scanEvent(rows RowScanner) (domain.Event, error) {
	var (
		e                     domain.Event
		date, startAt, endsAt string
	)
	if err := rows.Scan(&e.ID, &e.Title, &date, &startAt, &endsAt); err != nil {
		return domain.Event{}, err
	}

	var err error
	if e.Date, err = domain.ParseDate(date); err != nil {
		return domain.Event{}, fmt.Errorf("%w: id %d: %v", ports.ErrCorruptRecord, e.ID, err)
	}
	if e.Start, err = domain.ParseStorageClock(startAt); err != nil {
		return domain.Event{}, fmt.Errorf("%w: id %d: %v", ports.ErrCorruptRecord, e.ID, err)
	}
	if e.End, err = domain.ParseStorageClock(endsAt); err != nil {
		return domain.Event{}, fmt.Errorf("%w: id %d: %v", ports.ErrCorruptRecord, e.ID, err)
	}

	return e, nil
}

// modernc surfaces RAISE(ABORT, ...) as a plain error carrying the message.
func translateError(err error) error {
	if strings.Contains(err.Error(), overlapAbort) {
		return fmt.Errorf("%w: %v", ports.ErrScheduleConflict, err)
	}
	return err
}
