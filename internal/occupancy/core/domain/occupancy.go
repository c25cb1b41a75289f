package domain

// DayOccupancy is the booking load of one calendar day.
type DayOccupancy struct {
	Date          string // YYYY-MM-DD
	EventCount    int64
	BookedMinutes int64
	FreeMinutes   int64 // window minutes left unbooked, never negative
}

type Report struct {
	From          string
	To            string
	WindowMinutes int64
	TotalEvents   int64
	BookedMinutes int64
	Days          []DayOccupancy // one entry per day in [From, To]
}
