package usecase_test

import (
	"context"
	"errors"
	"testing"

	eventsdomain "event-scheduling-service/internal/events/core/domain"
	"event-scheduling-service/internal/occupancy/core/domain"
	"event-scheduling-service/internal/occupancy/core/usecase"
)

// fakeOccupancyReader fakes OccupancyReaderPort for tests.
type fakeOccupancyReader struct {
	QueryFn  func(ctx context.Context, from, to eventsdomain.Date) ([]domain.DayOccupancy, error)
	lastFrom eventsdomain.Date
	lastTo   eventsdomain.Date
	called   bool
}

func (f *fakeOccupancyReader) QueryOccupancy(ctx context.Context, from, to eventsdomain.Date) ([]domain.DayOccupancy, error) {
	f.called = true
	f.lastFrom = from
	f.lastTo = to
	if f.QueryFn != nil {
		return f.QueryFn(ctx, from, to)
	}
	return nil, nil
}

func TestGetOccupancy_FillsEveryDay(t *testing.T) {
	reader := &fakeOccupancyReader{
		QueryFn: func(ctx context.Context, from, to eventsdomain.Date) ([]domain.DayOccupancy, error) {
			return []domain.DayOccupancy{
				{Date: "2030-01-02", EventCount: 2, BookedMinutes: 90},
			}, nil
		},
	}

	uc := usecase.NewGetOccupancyUseCase(reader, eventsdomain.DefaultAllowedHours)

	out, err := uc.Execute(context.Background(), usecase.GetOccupancyInput{From: "2030-01-01", To: "2030-01-03"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reader.called || reader.lastFrom.String() != "2030-01-01" || reader.lastTo.String() != "2030-01-03" {
		t.Fatalf("reader called with wrong range: %v %v", reader.lastFrom, reader.lastTo)
	}

	if out.WindowMinutes != 720 {
		t.Fatalf("expected 720 window minutes, got %d", out.WindowMinutes)
	}
	if len(out.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(out.Days))
	}

	want := []domain.DayOccupancy{
		{Date: "2030-01-01", EventCount: 0, BookedMinutes: 0, FreeMinutes: 720},
		{Date: "2030-01-02", EventCount: 2, BookedMinutes: 90, FreeMinutes: 630},
		{Date: "2030-01-03", EventCount: 0, BookedMinutes: 0, FreeMinutes: 720},
	}
	for i, w := range want {
		if out.Days[i] != w {
			t.Errorf("day %d: expected %+v, got %+v", i, w, out.Days[i])
		}
	}
	if out.TotalEvents != 2 || out.BookedMinutes != 90 {
		t.Errorf("unexpected totals: events=%d booked=%d", out.TotalEvents, out.BookedMinutes)
	}
}

func TestGetOccupancy_SingleDayAndCustomWindow(t *testing.T) {
	reader := &fakeOccupancyReader{
		QueryFn: func(ctx context.Context, from, to eventsdomain.Date) ([]domain.DayOccupancy, error) {
			return []domain.DayOccupancy{
				{Date: "2030-05-05", EventCount: 3, BookedMinutes: 200},
			}, nil
		},
	}
	hours := eventsdomain.AllowedHours{Start: eventsdomain.NewClock(9, 0), End: eventsdomain.NewClock(12, 0)}

	uc := usecase.NewGetOccupancyUseCase(reader, hours)

	out, err := uc.Execute(context.Background(), usecase.GetOccupancyInput{From: "2030-05-05", To: "2030-05-05"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(out.Days))
	}
	if out.Days[0].FreeMinutes != 0 {
		t.Errorf("free minutes must floor at 0, got %d", out.Days[0].FreeMinutes)
	}
}

func TestGetOccupancy_InvalidRange(t *testing.T) {
	tests := []struct {
		name string
		in   usecase.GetOccupancyInput
	}{
		{"bad from", usecase.GetOccupancyInput{From: "01/01/2030", To: "2030-01-02"}},
		{"bad to", usecase.GetOccupancyInput{From: "2030-01-01", To: ""}},
		{"reversed", usecase.GetOccupancyInput{From: "2030-01-02", To: "2030-01-01"}},
		{"too long", usecase.GetOccupancyInput{From: "2030-01-01", To: "2031-01-02"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reader := &fakeOccupancyReader{}
			uc := usecase.NewGetOccupancyUseCase(reader, eventsdomain.DefaultAllowedHours)

			_, err := uc.Execute(context.Background(), tc.in)
			if !errors.Is(err, usecase.ErrInvalidDateRange) {
				t.Fatalf("expected ErrInvalidDateRange, got %v", err)
			}
			if reader.called {
				t.Fatalf("reader should not be called on invalid input")
			}
		})
	}
}

func TestGetOccupancy_MaxRangeAccepted(t *testing.T) {
	reader := &fakeOccupancyReader{}
	uc := usecase.NewGetOccupancyUseCase(reader, eventsdomain.DefaultAllowedHours)

	// 2030 is not a leap year, so this is exactly 366 days inclusive
	out, err := uc.Execute(context.Background(), usecase.GetOccupancyInput{From: "2030-01-01", To: "2031-01-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Days) != usecase.MaxRangeDays {
		t.Fatalf("expected %d days, got %d", usecase.MaxRangeDays, len(out.Days))
	}
}

func TestGetOccupancy_ReaderError(t *testing.T) {
	dbErr := errors.New("db down")
	reader := &fakeOccupancyReader{
		QueryFn: func(ctx context.Context, from, to eventsdomain.Date) ([]domain.DayOccupancy, error) {
			return nil, dbErr
		},
	}
	uc := usecase.NewGetOccupancyUseCase(reader, eventsdomain.DefaultAllowedHours)

	_, err := uc.Execute(context.Background(), usecase.GetOccupancyInput{From: "2030-01-01", To: "2030-01-01"})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected reader error, got %v", err)
	}
}
