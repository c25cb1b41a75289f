package postgres

import (
	"context"
	"fmt"
)

// The exclusion constraint rejects a second event whose [start, end) range
// intersects an existing one on the same date. tsrange is half-open by
// default, so back-to-back events are accepted.
var schemaStatements = []string{
	`
CREATE TABLE IF NOT EXISTS events (
    id         BIGSERIAL PRIMARY KEY,
    title      TEXT NOT NULL CHECK (title <> ''),
    event_date DATE NOT NULL,
    start_time TIME NOT NULL,
    end_time   TIME NOT NULL,
    CONSTRAINT events_time_order CHECK (start_time < end_time),
    CONSTRAINT events_no_overlap EXCLUDE USING gist (
        tsrange(event_date + start_time, event_date + end_time) WITH &&
    )
)`,
	`CREATE INDEX IF NOT EXISTS events_event_date_idx ON events (event_date)`,
}

// Migrate creates the events table when it does not exist yet.
func Migrate(ctx context.Context, db DB) error {
	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
