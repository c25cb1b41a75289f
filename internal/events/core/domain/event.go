package domain

import "time"

type Event struct {
	ID    int64
	Title string
	Date  Date
	Start Clock
	End   Clock
}

// Slot places the event's wall-clock interval on the timeline of loc.
func (e Event) Slot(loc *time.Location) Slot {
	return NewSlot(e.Date, e.Start, e.End, loc)
}
