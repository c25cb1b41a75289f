package ics

import (
	"fmt"
	"time"

	"event-scheduling-service/internal/events/core/domain"
	"event-scheduling-service/internal/events/core/ports"

	ical "github.com/arran4/golang-ical"
)

// Encoder renders stored events as an iCalendar (RFC 5545) feed.
type Encoder struct {
	productID string
	uidDomain string
	loc       *time.Location
	clock     ports.Clock
}

func NewEncoder(productID, uidDomain string, loc *time.Location, clock ports.Clock) *Encoder {
	if loc == nil {
		loc = time.Local
	}
	return &Encoder{productID: productID, uidDomain: uidDomain, loc: loc, clock: clock}
}

// Encode emits one VEVENT per event. UIDs are derived from the event id, so
// subscribers see an updated event as the same entry.
func (e *Encoder) Encode(events []domain.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(e.productID)

	stamp := e.clock.Now()
	for _, ev := range events {
		slot := ev.Slot(e.loc)

		vev := cal.AddEvent(fmt.Sprintf("event-%d@%s", ev.ID, e.uidDomain))
		vev.SetDtStampTime(stamp)
		vev.SetStartAt(slot.Start)
		vev.SetEndAt(slot.End)
		vev.SetSummary(ev.Title)
	}

	return cal.Serialize()
}
