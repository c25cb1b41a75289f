package postgres

import (
	"context"
	"errors"
	"fmt"

	"event-scheduling-service/internal/events/core/domain"
	"event-scheduling-service/internal/events/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

type EventRepository struct {
	db DB
}

func NewEventRepository(db DB) *EventRepository {
	return &EventRepository{db: db}
}

var _ ports.EventRepositoryPort = (*EventRepository)(nil)

// SQLSTATE exclusion_violation
const exclusionViolation = "23P01"

// Dates and times are read back as text so both drivers hand us the same shape.
const selectEventColumns = `
SELECT
    id,
    title,
    to_char(event_date, 'YYYY-MM-DD'),
    to_char(start_time, 'HH24:MI'),
    to_char(end_time, 'HH24:MI')
FROM events`

const listEventsSQL = selectEventColumns + `
ORDER BY event_date, start_time, id`

const getEventSQL = selectEventColumns + `
WHERE id = $1`

const insertEventSQL = `
INSERT INTO events (
    title,
    event_date,
    start_time,
    end_time
) VALUES (
    $1, $2::date, $3::time, $4::time
)
RETURNING id`

const updateEventSQL = `
UPDATE events
SET title = $1,
    event_date = $2::date,
    start_time = $3::time,
    end_time = $4::time
WHERE id = $5`

const deleteEventSQL = `DELETE FROM events WHERE id = $1`

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

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
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
	rows, err := r.db.QueryContext(ctx, insertEventSQL,
		e.Title,
		e.Date.String(),
		e.Start.StorageString(),
		e.End.StorageString(),
	)
	if err != nil {
		return domain.Event{}, translateError(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Event{}, translateError(err)
		}
		return domain.Event{}, errors.New("insert returned no id")
	}

	if err := rows.Scan(&e.ID); err != nil {
		return domain.Event{}, err
	}

	return e, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	res, err := r.db.ExecContext(ctx, updateEventSQL,
		e.Title,
		e.Date.String(),
		e.Start.StorageString(),
		e.End.StorageString(),
		e.ID,
	)
	if err != nil {
		return domain.Event{}, translateError(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.Event{}, err
	}
	if rows == 0 {
		return domain.Event{}, fmt.Errorf("%w: id %d", ports.ErrEventNotFound, e.ID)
	}

	return e, nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteEventSQL, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
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

// translateError maps an exclusion violation from either driver to
// ports.ErrScheduleConflict.
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == exclusionViolation {
		return fmt.Errorf("%w: %s", ports.ErrScheduleConflict, pqErr.Constraint)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == exclusionViolation {
		return fmt.Errorf("%w: %s", ports.ErrScheduleConflict, pgErr.ConstraintName)
	}

	return err
}
