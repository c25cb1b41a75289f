package fiber

import "event-scheduling-service/internal/events/core/domain"

// EventRequest represents the create/update payload
// @Description Event payload. id is required on update and ignored on create.
type EventRequest struct {
	ID        *int64 `json:"id,omitempty" example:"1"`
	Title     string `json:"title" example:"Sprint planning"`
	EventDate string `json:"event_date" example:"2030-01-01"`
	StartTime string `json:"start_time" example:"09:00 AM"`
	EndTime   string `json:"end_time" example:"10:00 AM"`
}

type EventResponse struct {
	ID        int64  `json:"id" example:"1"`
	Title     string `json:"title" example:"Sprint planning"`
	EventDate string `json:"event_date" example:"2030-01-01"`
	StartTime string `json:"start_time" example:"09:00 AM"`
	EndTime   string `json:"end_time" example:"10:00 AM"`
}

type DeleteEventResponse struct {
	Status string `json:"status" example:"Event deleted successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Overlapping time"`
	Kind  string `json:"kind,omitempty" example:"overlapping_time"`
}

func toEventResponse(e domain.Event) EventResponse {
	return EventResponse{
		ID:        e.ID,
		Title:     e.Title,
		EventDate: e.Date.String(),
		StartTime: e.Start.String(),
		EndTime:   e.End.String(),
	}
}
