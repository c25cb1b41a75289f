package postgres

import (
	"context"
	"fmt"

	eventsdomain "event-scheduling-service/internal/events/core/domain"
	"event-scheduling-service/internal/occupancy/core/domain"
	"event-scheduling-service/internal/occupancy/core/ports"
)

type OccupancyRepository struct {
	db DB
}

func NewOccupancyRepository(db DB) *OccupancyRepository {
	return &OccupancyRepository{db: db}
}

var _ ports.OccupancyReaderPort = (*OccupancyRepository)(nil)

const occupancySQL = `
SELECT
    to_char(event_date, 'YYYY-MM-DD') AS day,
    COUNT(*) AS event_count,
    COALESCE(SUM(EXTRACT(EPOCH FROM (end_time - start_time)) / 60), 0)::bigint AS booked_minutes
FROM events
WHERE event_date BETWEEN $1::date AND $2::date
GROUP BY event_date
ORDER BY event_date`

func (r *OccupancyRepository) QueryOccupancy(ctx context.Context, from, to eventsdomain.Date) ([]domain.DayOccupancy, error) {
	rows, err := r.db.QueryContext(ctx, occupancySQL, from.String(), to.String())
	if err != nil {
		return nil, fmt.Errorf("query occupancy: %w", err)
	}
	defer rows.Close()

	var days []domain.DayOccupancy
	for rows.Next() {
		var d domain.DayOccupancy
		if err := rows.Scan(&d.Date, &d.EventCount, &d.BookedMinutes); err != nil {
			return nil, fmt.Errorf("scan occupancy: %w", err)
		}
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query occupancy: %w", err)
	}

	return days, nil
}
