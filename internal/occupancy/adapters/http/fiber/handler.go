package fiber

import (
	"context"
	"errors"
	"net/http"

	"event-scheduling-service/internal/occupancy/core/domain"
	"event-scheduling-service/internal/occupancy/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetOccupancyUseCase interface {
	Execute(ctx context.Context, in usecase.GetOccupancyInput) (*domain.Report, error)
}

type OccupancyHandler struct {
	uc GetOccupancyUseCase
}

func NewOccupancyHandler(uc GetOccupancyUseCase) *OccupancyHandler {
	return &OccupancyHandler{uc: uc}
}

// GetOccupancy godoc
// @Summary Daily occupancy
// @Description Returns event count, booked and free minutes for every day in the range
// @Tags Occupancy
// @Produce json
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day, inclusive (YYYY-MM-DD)"
// @Success 200 {object} OccupancyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/api/occupancy/ [get]
func (h *OccupancyHandler) GetOccupancy(c *fiber.Ctx) error {
	from := c.Query("from", "")
	to := c.Query("to", "")
	if from == "" || to == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_date_range",
			Message: "from and to are required",
		})
	}

	res, err := h.uc.Execute(c.UserContext(), usecase.GetOccupancyInput{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDateRange):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_date_range",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := OccupancyResponse{
		From:          res.From,
		To:            res.To,
		WindowMinutes: res.WindowMinutes,
		TotalEvents:   res.TotalEvents,
		BookedMinutes: res.BookedMinutes,
		Days:          make([]DayOccupancyResponse, 0, len(res.Days)),
	}

	for _, d := range res.Days {
		resp.Days = append(resp.Days, DayOccupancyResponse{
			Date:          d.Date,
			EventCount:    d.EventCount,
			BookedMinutes: d.BookedMinutes,
			FreeMinutes:   d.FreeMinutes,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}
