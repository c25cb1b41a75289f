package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	eventsdomain "event-scheduling-service/internal/events/core/domain"
	"event-scheduling-service/internal/occupancy/core/domain"
	"event-scheduling-service/internal/occupancy/core/ports"
)

// DB is satisfied by *sql.DB opened with the modernc "sqlite" driver.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type OccupancyRepository struct {
	db DB
}

func NewOccupancyRepository(db DB) *OccupancyRepository {
	return &OccupancyRepository{db: db}
}

var _ ports.OccupancyReaderPort = (*OccupancyRepository)(nil)

// Times are stored as HH:MM text, so minutes are rebuilt from the two fields.
const occupancySQL = `
SELECT
    event_date,
    COUNT(*) AS event_count,
    COALESCE(SUM(
        (CAST(substr(end_time, 1, 2) AS INTEGER) * 60 + CAST(substr(end_time, 4, 2) AS INTEGER))
      - (CAST(substr(start_time, 1, 2) AS INTEGER) * 60 + CAST(substr(start_time, 4, 2) AS INTEGER))
    ), 0) AS booked_minutes
FROM events
WHERE event_date BETWEEN ? AND ?
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
