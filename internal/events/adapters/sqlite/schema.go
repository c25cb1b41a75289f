package sqlite

import (
	"context"
	"fmt"
)

// overlapAbort is the RAISE message the triggers use; the repository matches on it.
const overlapAbort = "event_overlap"

// Dates are stored as YYYY-MM-DD and times as 24-hour HH:MM, so string
// comparison orders them correctly inside the triggers.
var schemaStatements = []string{
	`
CREATE TABLE IF NOT EXISTS events (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    title      TEXT NOT NULL CHECK (title <> ''),
    event_date TEXT NOT NULL,
    start_time TEXT NOT NULL,
    end_time   TEXT NOT NULL,
    CHECK (start_time < end_time)
)`,
	`CREATE INDEX IF NOT EXISTS events_event_date_idx ON events (event_date)`,
	`
CREATE TRIGGER IF NOT EXISTS events_no_overlap_insert
BEFORE INSERT ON events
WHEN EXISTS (
    SELECT 1 FROM events
    WHERE event_date = NEW.event_date
      AND start_time < NEW.end_time
      AND NEW.start_time < end_time
)
BEGIN
    SELECT RAISE(ABORT, '` + overlapAbort + `');
END`,
	`
CREATE TRIGGER IF NOT EXISTS events_no_overlap_update
BEFORE UPDATE ON events
WHEN EXISTS (
    SELECT 1 FROM events
    WHERE id <> NEW.id
      AND event_date = NEW.event_date
      AND start_time < NEW.end_time
      AND NEW.start_time < end_time
)
BEGIN
    SELECT RAISE(ABORT, '` + overlapAbort + `');
END`,
}

// Migrate creates the events table and its overlap triggers.
func Migrate(ctx context.Context, db DB) error {
	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
