package fiber

type DayOccupancyResponse struct {
	Date          string `json:"date" example:"2030-01-01"`
	EventCount    int64  `json:"event_count" example:"3"`
	BookedMinutes int64  `json:"booked_minutes" example:"150"`
	FreeMinutes   int64  `json:"free_minutes" example:"570"`
}

type OccupancyResponse struct {
	From          string                 `json:"from" example:"2030-01-01"`
	To            string                 `json:"to" example:"2030-01-07"`
	WindowMinutes int64                  `json:"window_minutes" example:"720"`
	TotalEvents   int64                  `json:"total_events" example:"12"`
	BookedMinutes int64                  `json:"booked_minutes" example:"600"`
	Days          []DayOccupancyResponse `json:"days"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_date_range"`
	Message string `json:"message,omitempty" example:"invalid date range: from is after to"`
}
