package usecase

import "fmt"

type ValidationKind string

const (
	KindMissingField        ValidationKind = "missing_field"
	KindInvalidDateFormat   ValidationKind = "invalid_date_format"
	KindInvalidTimeFormat   ValidationKind = "invalid_time_format"
	KindInvalidTimeRange    ValidationKind = "invalid_time_range"
	KindOverlappingTime     ValidationKind = "overlapping_time"
	KindOutsideAllowedHours ValidationKind = "outside_allowed_hours"
	KindIsInThePast         ValidationKind = "is_in_the_past"
)

// ValidationError is a rejected payload. Two validation errors match under
// errors.Is when their kinds are equal, so the sentinels below can be compared
// against errors carrying a more specific message.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

var (
	ErrMissingField        = &ValidationError{Kind: KindMissingField, Message: "Missing fields in request"}
	ErrInvalidDateFormat   = &ValidationError{Kind: KindInvalidDateFormat, Message: "Invalid date format must be YYYY-MM-DD"}
	ErrInvalidTimeFormat   = &ValidationError{Kind: KindInvalidTimeFormat, Message: "Invalid time format must be 08:00 AM"}
	ErrInvalidTimeRange    = &ValidationError{Kind: KindInvalidTimeRange, Message: "End time must be after start time"}
	ErrOverlappingTime     = &ValidationError{Kind: KindOverlappingTime, Message: "Overlapping time"}
	ErrOutsideAllowedHours = &ValidationError{Kind: KindOutsideAllowedHours, Message: "Is outside allowed hours"}
	ErrIsInThePast         = &ValidationError{Kind: KindIsInThePast, Message: "Is in the past"}
)

// StoreError wraps a failure of the event store. It is never a validation error.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("event store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
