package usecase

import (
	"context"
	"errors"
	"fmt"

	eventsdomain "event-scheduling-service/internal/events/core/domain"
	"event-scheduling-service/internal/occupancy/core/domain"
	"event-scheduling-service/internal/occupancy/core/ports"
)

var ErrInvalidDateRange = errors.New("invalid date range")

// MaxRangeDays bounds a single report, both ends included.
const MaxRangeDays = 366

type GetOccupancyInput struct {
	From string // YYYY-MM-DD
	To   string // YYYY-MM-DD, inclusive
}

type GetOccupancyUseCase struct {
	reader ports.OccupancyReaderPort
	hours  eventsdomain.AllowedHours
}

func NewGetOccupancyUseCase(reader ports.OccupancyReaderPort, hours eventsdomain.AllowedHours) *GetOccupancyUseCase {
	return &GetOccupancyUseCase{reader: reader, hours: hours}
}

func (uc *GetOccupancyUseCase) Execute(ctx context.Context, in GetOccupancyInput) (*domain.Report, error) {
	from, err := eventsdomain.ParseDate(in.From)
	if err != nil {
		return nil, fmt.Errorf("%w: from must be YYYY-MM-DD", ErrInvalidDateRange)
	}
	to, err := eventsdomain.ParseDate(in.To)
	if err != nil {
		return nil, fmt.Errorf("%w: to must be YYYY-MM-DD", ErrInvalidDateRange)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidDateRange)
	}
	if from.DaysUntil(to) >= MaxRangeDays {
		return nil, fmt.Errorf("%w: at most %d days", ErrInvalidDateRange, MaxRangeDays)
	}

	rows, err := uc.reader.QueryOccupancy(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]domain.DayOccupancy, len(rows))
	for _, r := range rows {
		byDate[r.Date] = r
	}

	window := int64(uc.hours.Minutes())
	report := &domain.Report{
		From:          from.String(),
		To:            to.String(),
		WindowMinutes: window,
		Days:          make([]domain.DayOccupancy, 0, from.DaysUntil(to)+1),
	}

	for d := from; !to.Before(d); d = d.AddDays(1) {
		day := byDate[d.String()]
		day.Date = d.String()
		day.FreeMinutes = max(window-day.BookedMinutes, 0)

		report.TotalEvents += day.EventCount
		report.BookedMinutes += day.BookedMinutes
		report.Days = append(report.Days, day)
	}

	return report, nil
}
