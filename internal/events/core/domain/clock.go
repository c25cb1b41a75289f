package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"

	// 12-hour wall clock used on the wire, e.g. "09:00 AM" (leading zero optional on input).
	clockInputLayout = "3:04 PM"
	// 24-hour wall clock used by storage adapters, e.g. "21:00".
	storageClockLayout = "15:04"
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidClock = errors.New("invalid clock time")
)

// Date is a calendar day without a zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// At combines the date with a wall-clock time in loc.
func (d Date) At(c Clock, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, c.Hour(), c.Minute(), 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

func (d Date) Before(o Date) bool {
	return d.At(0, time.UTC).Before(o.At(0, time.UTC))
}

// DaysUntil returns the number of whole days from d to o (negative when o is earlier).
func (d Date) DaysUntil(o Date) int {
	return int(o.At(0, time.UTC).Sub(d.At(0, time.UTC)).Hours() / 24)
}

// Clock is a wall-clock time of day, in minutes since midnight.
type Clock int

func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock parses a 12-hour time with an AM/PM marker ("8:00 AM", "08:00 pm").
func ParseClock(s string) (Clock, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	t, err := time.Parse(clockInputLayout, v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	// time.Parse lets hour 0 through for 12-hour layouts.
	if strings.HasPrefix(v, "0:") || strings.HasPrefix(v, "00:") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return NewClock(t.Hour(), t.Minute()), nil
}

// ParseStorageClock parses the 24-hour "HH:MM" form written by the store adapters.
func ParseStorageClock(s string) (Clock, error) {
	t, err := time.Parse(storageClockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return NewClock(t.Hour(), t.Minute()), nil
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

// String renders the wire form, e.g. "09:00 AM".
func (c Clock) String() string {
	h, suffix := c.Hour(), "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h, c.Minute(), suffix)
}

// StorageString renders the 24-hour form, e.g. "21:00".
func (c Clock) StorageString() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
