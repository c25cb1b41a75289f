package ports

import (
	"context"

	eventsdomain "event-scheduling-service/internal/events/core/domain"
	"event-scheduling-service/internal/occupancy/core/domain"
)

// OccupancyReaderPort aggregates stored events per date. Days without events
// are omitted; FreeMinutes is left for the caller.
type OccupancyReaderPort interface {
	QueryOccupancy(ctx context.Context, from, to eventsdomain.Date) ([]domain.DayOccupancy, error)
}
