package usecase

import (
	"context"
	"errors"

	"event-scheduling-service/internal/events/core/domain"
	"event-scheduling-service/internal/events/core/ports"

	"github.com/rs/zerolog"
)

type ScheduleChecker interface {
	Validate(ctx context.Context, in ScheduleInput) error
}

type EventUseCase struct {
	repo     ports.EventRepositoryPort
	schedule ScheduleChecker
	logger   zerolog.Logger
}

func NewEventUseCase(repo ports.EventRepositoryPort, schedule ScheduleChecker, logger zerolog.Logger) *EventUseCase {
	return &EventUseCase{
		repo:     repo,
		schedule: schedule,
		logger:   logger.With().Str("component", "event_usecase").Logger(),
	}
}

func (uc *EventUseCase) List(ctx context.Context) ([]domain.Event, error) {
	events, err := uc.repo.ListEvents(ctx)
	if err != nil {
		return nil, storeFailure("list", err)
	}
	return events, nil
}

func (uc *EventUseCase) Get(ctx context.Context, id int64) (domain.Event, error) {
	e, err := uc.repo.GetEvent(ctx, id)
	if err != nil {
		return domain.Event{}, storeFailure("get", err)
	}
	return e, nil
}

// Create validates the payload shape, then the schedule, then persists.
func (uc *EventUseCase) Create(ctx context.Context, in EventInput) (domain.Event, error) {
	shape, err := ValidateShape(in)
	if err != nil {
		return domain.Event{}, err
	}

	err = uc.schedule.Validate(ctx, ScheduleInput{
		Date:  shape.Date,
		Start: shape.Start,
		End:   shape.End,
	})
	if err != nil {
		return domain.Event{}, err
	}

	created, err := uc.repo.CreateEvent(ctx, domain.Event{
		Title: shape.Title,
		Date:  shape.Date,
		Start: shape.Start,
		End:   shape.End,
	})
	if err != nil {
		return domain.Event{}, storeFailure("create", err)
	}

	uc.logger.Info().
		Int64("event_id", created.ID).
		Str("event_date", created.Date.String()).
		Msg("event created")

	return created, nil
}

// Update replaces all four fields of an existing event. The event's own stored
// interval is excluded from the overlap check.
func (uc *EventUseCase) Update(ctx context.Context, in UpdateEventInput) (domain.Event, error) {
	if in.ID == nil {
		return domain.Event{}, &ValidationError{
			Kind:    KindMissingField,
			Message: ErrMissingField.Message + ": id",
		}
	}
	id := *in.ID

	shape, err := ValidateShape(in.EventInput)
	if err != nil {
		return domain.Event{}, err
	}

	if _, err := uc.repo.GetEvent(ctx, id); err != nil {
		return domain.Event{}, storeFailure("get", err)
	}

	err = uc.schedule.Validate(ctx, ScheduleInput{
		Date:      shape.Date,
		Start:     shape.Start,
		End:       shape.End,
		ExcludeID: &id,
	})
	if err != nil {
		return domain.Event{}, err
	}

	updated, err := uc.repo.UpdateEvent(ctx, domain.Event{
		ID:    id,
		Title: shape.Title,
		Date:  shape.Date,
		Start: shape.Start,
		End:   shape.End,
	})
	if err != nil {
		return domain.Event{}, storeFailure("update", err)
	}

	uc.logger.Info().Int64("event_id", id).Msg("event updated")

	return updated, nil
}

func (uc *EventUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.DeleteEvent(ctx, id); err != nil {
		return storeFailure("delete", err)
	}
	uc.logger.Info().Int64("event_id", id).Msg("event deleted")
	return nil
}

// storeFailure keeps not-found as is, reports a store-side overlap as a
// validation error and wraps everything else in a StoreError.
func storeFailure(op string, err error) error {
	switch {
	case errors.Is(err, ports.ErrEventNotFound):
		return err
	case errors.Is(err, ports.ErrScheduleConflict):
		return ErrOverlappingTime
	default:
		return &StoreError{Op: op, Err: err}
	}
}
