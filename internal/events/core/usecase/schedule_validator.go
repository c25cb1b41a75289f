package usecase

import (
	"context"
	"time"

	"event-scheduling-service/internal/events/core/domain"
	"event-scheduling-service/internal/events/core/ports"

	"github.com/rs/zerolog"
)

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type ScheduleConfig struct {
	Hours    domain.AllowedHours
	Location *time.Location
	// FailOpen treats an unreadable event store as an empty calendar during
	// overlap detection instead of failing the request.
	FailOpen bool
}

type ScheduleInput struct {
	Date  domain.Date
	Start domain.Clock
	End   domain.Clock
	// ExcludeID skips the stored copy of the event being updated.
	ExcludeID *int64
}

type ScheduleValidator struct {
	events   ports.EventListerPort
	clock    ports.Clock
	hours    domain.AllowedHours
	loc      *time.Location
	failOpen bool
	logger   zerolog.Logger
}

func NewScheduleValidator(events ports.EventListerPort, clock ports.Clock, cfg ScheduleConfig, logger zerolog.Logger) *ScheduleValidator {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &ScheduleValidator{
		events:   events,
		clock:    clock,
		hours:    cfg.Hours,
		loc:      cfg.Location,
		failOpen: cfg.FailOpen,
		logger:   logger.With().Str("component", "schedule_validator").Logger(),
	}
}

// Validate runs the overlap, allowed-hours and past checks in that order and
// returns the first violation, or nil when the slot can be booked.
func (v *ScheduleValidator) Validate(ctx context.Context, in ScheduleInput) error {
	slot := domain.NewSlot(in.Date, in.Start, in.End, v.loc)

	overlap, err := v.HasOverlap(ctx, slot, in.ExcludeID)
	if err != nil {
		return err
	}
	if overlap {
		return ErrOverlappingTime
	}

	if v.IsOutsideAllowedHours(in.Start, in.End) {
		return &ValidationError{
			Kind:    KindOutsideAllowedHours,
			Message: "Is outside " + v.hours.String(),
		}
	}

	if v.IsInThePast(slot) {
		return ErrIsInThePast
	}

	return nil
}

// HasOverlap compares slot against every stored event except excludeID.
func (v *ScheduleValidator) HasOverlap(ctx context.Context, slot domain.Slot, excludeID *int64) (bool, error) {
	events, err := v.events.ListEvents(ctx)
	if err != nil {
		if !v.failOpen {
			return false, &StoreError{Op: "list", Err: err}
		}
		v.logger.Warn().Err(err).Msg("event store unavailable, skipping overlap check")
		events = nil
	}

	for _, e := range events {
		if excludeID != nil && e.ID == *excludeID {
			continue
		}
		if slot.Overlaps(e.Slot(v.loc)) {
			v.logger.Debug().
				Int64("conflicting_event_id", e.ID).
				Time("start", slot.Start).
				Time("end", slot.End).
				Msg("overlap detected")
			return true, nil
		}
	}

	return false, nil
}

func (v *ScheduleValidator) IsOutsideAllowedHours(start, end domain.Clock) bool {
	return v.hours.Excludes(start, end)
}

// IsInThePast reads the clock on every call; the same slot can pass now and
// fail later.
func (v *ScheduleValidator) IsInThePast(slot domain.Slot) bool {
	return slot.IsInThePast(v.clock.Now())
}
