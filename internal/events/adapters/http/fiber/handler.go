package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"event-scheduling-service/internal/events/core/domain"
	"event-scheduling-service/internal/events/core/ports"
	"event-scheduling-service/internal/events/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type EventUseCase interface {
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, id int64) (domain.Event, error)
	Create(ctx context.Context, in usecase.EventInput) (domain.Event, error)
	Update(ctx context.Context, in usecase.UpdateEventInput) (domain.Event, error)
	Delete(ctx context.Context, id int64) error
}

type CalendarEncoder interface {
	Encode(events []domain.Event) string
}

type EventHandler struct {
	uc  EventUseCase
	cal CalendarEncoder
}

func NewEventHandler(uc EventUseCase, cal CalendarEncoder) *EventHandler {
	return &EventHandler{uc: uc, cal: cal}
}

// ListEvents godoc
// @Summary List events
// @Tags Events
// @Produce json
// @Success 200 {array} EventResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/api/events/ [get]
func (h *EventHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, toEventResponse(e))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// ExportCalendar godoc
// @Summary Export events as iCalendar
// @Tags Events
// @Produce plain
// @Success 200 {string} string "text/calendar feed"
// @Failure 500 {object} ErrorResponse
// @Router /v1/api/events/calendar.ics [get]
func (h *EventHandler) ExportCalendar(c *fiber.Ctx) error {
	events, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	return c.Status(http.StatusOK).SendString(h.cal.Encode(events))
}

// GetEvent godoc
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/api/events/{id}/ [get]
func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	id, ok := eventID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_id",
		})
	}

	e, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toEventResponse(e))
}

// CreateEvent godoc
// @Summary Create an event
// @Description Validates the payload, rejects overlapping, out-of-hours and past events, then stores it
// @Tags Events
// @Accept json
// @Produce json
// @Param request body EventRequest true "Event payload"
// @Success 201 {object} EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/api/events/create/ [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	created, err := h.uc.Create(c.UserContext(), usecase.EventInput{
		Title:     req.Title,
		EventDate: req.EventDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(toEventResponse(created))
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces title, date and times of the event identified by the id in the body
// @Tags Events
// @Accept json
// @Produce json
// @Param request body EventRequest true "Event payload with id"
// @Success 200 {object} EventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/api/events/update/ [put]
func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	var req EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	updated, err := h.uc.Update(c.UserContext(), usecase.UpdateEventInput{
		ID: req.ID,
		EventInput: usecase.EventInput{
			Title:     req.Title,
			EventDate: req.EventDate,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		},
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(toEventResponse(updated))
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} DeleteEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/api/events/{id}/delete/ [delete]
func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	id, ok := eventID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_id",
		})
	}

	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(DeleteEventResponse{
		Status: "Event deleted successfully",
	})
}

func eventID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeError(c *fiber.Ctx, err error) error {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: verr.Message,
			Kind:  string(verr.Kind),
		})
	case errors.Is(err, ports.ErrEventNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error: "Event not found",
			Kind:  "not_found",
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
