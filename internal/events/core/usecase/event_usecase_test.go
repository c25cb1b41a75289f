package usecase_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"event-scheduling-service/internal/events/core/domain"
	"event-scheduling-service/internal/events/core/ports"
	"event-scheduling-service/internal/events/core/usecase"

	"github.com/rs/zerolog"
)

// Fake repository implementing EventRepositoryPort, backed by a map.
// Any *Fn field overrides the in-memory behaviour for that method.
type fakeEventRepo struct {
	events map[int64]domain.Event
	nextID int64

	ListFn   func(ctx context.Context) ([]domain.Event, error)
	CreateFn func(ctx context.Context, e domain.Event) (domain.Event, error)
	UpdateFn func(ctx context.Context, e domain.Event) (domain.Event, error)
	DeleteFn func(ctx context.Context, id int64) error

	createCalls int
	updateCalls int
}

func newFakeEventRepo(seed ...domain.Event) *fakeEventRepo {
	r := &fakeEventRepo{events: map[int64]domain.Event{}}
	for _, e := range seed {
		r.events[e.ID] = e
		if e.ID > r.nextID {
			r.nextID = e.ID
		}
	}
	return r
}

func (f *fakeEventRepo) ListEvents(ctx context.Context) ([]domain.Event, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	out := make([]domain.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEventRepo) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return domain.Event{}, ports.ErrEventNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	f.createCalls++
	if f.CreateFn != nil {
		return f.CreateFn(ctx, e)
	}
	f.nextID++
	e.ID = f.nextID
	f.events[e.ID] = e
	return e, nil
}

func (f *fakeEventRepo) UpdateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	f.updateCalls++
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, e)
	}
	if _, ok := f.events[e.ID]; !ok {
		return domain.Event{}, ports.ErrEventNotFound
	}
	f.events[e.ID] = e
	return e, nil
}

func (f *fakeEventRepo) DeleteEvent(ctx context.Context, id int64) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	if _, ok := f.events[id]; !ok {
		return ports.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

// fakeClock is a settable ports.Clock.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeEventRepo) *usecase.EventUseCase {
	validator := usecase.NewScheduleValidator(repo, &fakeClock{now: testNow}, usecase.ScheduleConfig{
		Hours:    domain.DefaultAllowedHours,
		Location: time.UTC,
	}, zerolog.Nop())
	return usecase.NewEventUseCase(repo, validator, zerolog.Nop())
}

func event(id int64, title, date, start, end string) domain.Event {
	d, err := domain.ParseDate(date)
	if err != nil {
		panic(err)
	}
	s, err := domain.ParseClock(start)
	if err != nil {
		panic(err)
	}
	e, err := domain.ParseClock(end)
	if err != nil {
		panic(err)
	}
	return domain.Event{ID: id, Title: title, Date: d, Start: s, End: e}
}

func int64Ptr(v int64) *int64 { return &v }

// ------------------------------------------------------------
// CREATE
// ------------------------------------------------------------

func TestCreateEvent_Success(t *testing.T) {
	repo := newFakeEventRepo()
	uc := newTestUseCase(repo)

	created, err := uc.Create(context.Background(), usecase.EventInput{
		Title:     "  Planning  ",
		EventDate: "2030-01-01",
		StartTime: "09:00 AM",
		EndTime:   "10:00 AM",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected id 1, got %d", created.ID)
	}
	if created.Title != "Planning" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.Start.String() != "09:00 AM" || created.End.String() != "10:00 AM" {
		t.Fatalf("unexpected times: %s - %s", created.Start, created.End)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected CreateEvent to be called once, got %d", repo.createCalls)
	}
}

func TestCreateEvent_ShapeErrorsSkipStore(t *testing.T) {
	tests := []struct {
		name string
		in   usecase.EventInput
		want error
	}{
		{"missing title", usecase.EventInput{EventDate: "2030-01-01", StartTime: "09:00 AM", EndTime: "10:00 AM"}, usecase.ErrMissingField},
		{"bad date", usecase.EventInput{Title: "x", EventDate: "01/01/2030", StartTime: "09:00 AM", EndTime: "10:00 AM"}, usecase.ErrInvalidDateFormat},
		{"bad time", usecase.EventInput{Title: "x", EventDate: "2030-01-01", StartTime: "09:00", EndTime: "10:00 AM"}, usecase.ErrInvalidTimeFormat},
		{"end before start", usecase.EventInput{Title: "x", EventDate: "2030-01-01", StartTime: "10:00 AM", EndTime: "09:00 AM"}, usecase.ErrInvalidTimeRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeEventRepo()
			listed := false
			repo.ListFn = func(ctx context.Context) ([]domain.Event, error) {
				listed = true
				return nil, nil
			}
			uc := newTestUseCase(repo)

			_, err := uc.Create(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if listed {
				t.Fatalf("schedule validation must not run on a malformed payload")
			}
			if repo.createCalls != 0 {
				t.Fatalf("expected no CreateEvent call")
			}
		})
	}
}

func TestCreateEvent_OverlapRejected(t *testing.T) {
	repo := newFakeEventRepo(event(1, "A", "2030-01-01", "09:00 AM", "10:00 AM"))
	uc := newTestUseCase(repo)

	_, err := uc.Create(context.Background(), usecase.EventInput{
		Title:     "B",
		EventDate: "2030-01-01",
		StartTime: "09:30 AM",
		EndTime:   "10:30 AM",
	})
	if !errors.Is(err, usecase.ErrOverlappingTime) {
		t.Fatalf("expected ErrOverlappingTime, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no CreateEvent call")
	}
}

func TestCreateEvent_StoreConflictReportedAsOverlap(t *testing.T) {
	repo := newFakeEventRepo()
	repo.CreateFn = func(ctx context.Context, e domain.Event) (domain.Event, error) {
		// a concurrent writer got there first
		return domain.Event{}, ports.ErrScheduleConflict
	}
	uc := newTestUseCase(repo)

	_, err := uc.Create(context.Background(), usecase.EventInput{
		Title:     "A",
		EventDate: "2030-01-01",
		StartTime: "09:00 AM",
		EndTime:   "10:00 AM",
	})
	if !errors.Is(err, usecase.ErrOverlappingTime) {
		t.Fatalf("expected ErrOverlappingTime, got %v", err)
	}
}

func TestCreateEvent_StoreFailure(t *testing.T) {
	repo := newFakeEventRepo()
	repo.CreateFn = func(ctx context.Context, e domain.Event) (domain.Event, error) {
		return domain.Event{}, errors.New("db error")
	}
	uc := newTestUseCase(repo)

	_, err := uc.Create(context.Background(), usecase.EventInput{
		Title:     "A",
		EventDate: "2030-01-01",
		StartTime: "09:00 AM",
		EndTime:   "10:00 AM",
	})

	var storeErr *usecase.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if storeErr.Op != "create" {
		t.Fatalf("expected op=create, got %s", storeErr.Op)
	}
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		t.Fatalf("store failure must not look like a validation error")
	}
}

// ------------------------------------------------------------
// UPDATE
// ------------------------------------------------------------

func TestUpdateEvent_MissingID(t *testing.T) {
	uc := newTestUseCase(newFakeEventRepo())

	_, err := uc.Update(context.Background(), usecase.UpdateEventInput{
		EventInput: usecase.EventInput{Title: "A", EventDate: "2030-01-01", StartTime: "09:00 AM", EndTime: "10:00 AM"},
	})
	if !errors.Is(err, usecase.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestUpdateEvent_NotFound(t *testing.T) {
	repo := newFakeEventRepo()
	uc := newTestUseCase(repo)

	_, err := uc.Update(context.Background(), usecase.UpdateEventInput{
		ID:         int64Ptr(42),
		EventInput: usecase.EventInput{Title: "A", EventDate: "2030-01-01", StartTime: "09:00 AM", EndTime: "10:00 AM"},
	})
	if !errors.Is(err, ports.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("expected no UpdateEvent call")
	}
}

func TestUpdateEvent_MovesIntoAnotherEvent(t *testing.T) {
	repo := newFakeEventRepo(
		event(1, "A", "2030-01-01", "09:00 AM", "10:00 AM"),
		event(2, "B", "2030-01-01", "11:00 AM", "12:00 PM"),
	)
	uc := newTestUseCase(repo)

	_, err := uc.Update(context.Background(), usecase.UpdateEventInput{
		ID:         int64Ptr(2),
		EventInput: usecase.EventInput{Title: "B", EventDate: "2030-01-01", StartTime: "09:45 AM", EndTime: "10:45 AM"},
	})
	if !errors.Is(err, usecase.ErrOverlappingTime) {
		t.Fatalf("expected ErrOverlappingTime, got %v", err)
	}
}

func TestUpdateEvent_ReplacesAllFields(t *testing.T) {
	repo := newFakeEventRepo(event(1, "A", "2030-01-01", "09:00 AM", "10:00 AM"))
	uc := newTestUseCase(repo)

	updated, err := uc.Update(context.Background(), usecase.UpdateEventInput{
		ID:         int64Ptr(1),
		EventInput: usecase.EventInput{Title: "A2", EventDate: "2030-01-02", StartTime: "01:00 PM", EndTime: "03:00 PM"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != 1 || updated.Title != "A2" || updated.Date.String() != "2030-01-02" {
		t.Fatalf("unexpected event: %+v", updated)
	}
	if repo.events[1].Start.String() != "01:00 PM" {
		t.Fatalf("store not updated: %+v", repo.events[1])
	}
}

// ------------------------------------------------------------
// GET / LIST / DELETE
// ------------------------------------------------------------

func TestGetEvent_NotFoundPassesThrough(t *testing.T) {
	uc := newTestUseCase(newFakeEventRepo())

	_, err := uc.Get(context.Background(), 7)
	if !errors.Is(err, ports.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestListEvents_StoreFailure(t *testing.T) {
	repo := newFakeEventRepo()
	repo.ListFn = func(ctx context.Context) ([]domain.Event, error) {
		return nil, errors.New("connection refused")
	}
	uc := newTestUseCase(repo)

	_, err := uc.List(context.Background())
	var storeErr *usecase.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %v", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	repo := newFakeEventRepo(event(1, "A", "2030-01-01", "09:00 AM", "10:00 AM"))
	uc := newTestUseCase(repo)

	if err := uc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.events[1]; ok {
		t.Fatalf("expected event to be removed")
	}
	if err := uc.Delete(context.Background(), 1); !errors.Is(err, ports.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound on second delete, got %v", err)
	}
}

// ------------------------------------------------------------
// END TO END
// ------------------------------------------------------------

func TestEventLifecycle_Scenario(t *testing.T) {
	repo := newFakeEventRepo()
	uc := newTestUseCase(repo)
	ctx := context.Background()

	a, err := uc.Create(ctx, usecase.EventInput{Title: "A", EventDate: "2030-01-01", StartTime: "09:00 AM", EndTime: "10:00 AM"})
	if err != nil {
		t.Fatalf("create A: unexpected error: %v", err)
	}

	_, err = uc.Create(ctx, usecase.EventInput{Title: "B", EventDate: "2030-01-01", StartTime: "09:30 AM", EndTime: "10:30 AM"})
	if !errors.Is(err, usecase.ErrOverlappingTime) {
		t.Fatalf("create B: expected ErrOverlappingTime, got %v", err)
	}

	_, err = uc.Create(ctx, usecase.EventInput{Title: "C", EventDate: "2030-01-01", StartTime: "06:00 AM", EndTime: "07:00 AM"})
	if !errors.Is(err, usecase.ErrOutsideAllowedHours) {
		t.Fatalf("create C: expected ErrOutsideAllowedHours, got %v", err)
	}

	_, err = uc.Update(ctx, usecase.UpdateEventInput{
		ID:         int64Ptr(a.ID),
		EventInput: usecase.EventInput{Title: "A", EventDate: "2030-01-01", StartTime: "09:00 AM", EndTime: "10:00 AM"},
	})
	if err != nil {
		t.Fatalf("update A unchanged: unexpected error: %v", err)
	}

	events, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected exactly one stored event, got %d", len(events))
	}
}
