package domain

import (
	"fmt"
	"time"
)

// Slot is a half-open interval [Start, End) of absolute instants.
type Slot struct {
	Start time.Time
	End   time.Time
}

func NewSlot(d Date, start, end Clock, loc *time.Location) Slot {
	return Slot{Start: d.At(start, loc), End: d.At(end, loc)}
}

// Overlaps reports whether the two slots share any instant.
// Slots that only touch at a boundary do not overlap.
func (s Slot) Overlaps(o Slot) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// IsInThePast reports whether either end of the slot is at or before now.
func (s Slot) IsInThePast(now time.Time) bool {
	return !s.Start.After(now) || !s.End.After(now)
}

// AllowedHours is the daily window events must fit in. Both bounds are inclusive.
type AllowedHours struct {
	Start Clock
	End   Clock
}

var DefaultAllowedHours = AllowedHours{
	Start: NewClock(8, 0),
	End:   NewClock(20, 0),
}

// Excludes reports whether [start, end) reaches outside the window.
func (h AllowedHours) Excludes(start, end Clock) bool {
	return start < h.Start || end > h.End
}

func (h AllowedHours) Minutes() int {
	return int(h.End - h.Start)
}

func (h AllowedHours) String() string {
	return fmt.Sprintf("%s - %s", h.Start, h.End)
}
