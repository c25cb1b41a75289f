package usecase

import (
	"errors"
	"reflect"
	"strings"

	"event-scheduling-service/internal/events/core/domain"

	"github.com/go-playground/validator/v10"
)

// EventInput is the client payload for create and update.
type EventInput struct {
	Title     string `json:"title" validate:"required"`
	EventDate string `json:"event_date" validate:"required,event_date"`
	StartTime string `json:"start_time" validate:"required,clock12"`
	EndTime   string `json:"end_time" validate:"required,clock12"`
}

// UpdateEventInput carries the id of the event being replaced.
type UpdateEventInput struct {
	ID *int64
	EventInput
}

// EventShape is a structurally valid payload, parsed.
type EventShape struct {
	Title string
	Date  domain.Date
	Start domain.Clock
	End   domain.Clock
}

var shapeValidate = newShapeValidator()

func newShapeValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	_ = v.RegisterValidation("event_date", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("clock12", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseClock(fl.Field().String())
		return err == nil
	})
	return v
}

// ValidateShape checks presence first, then the date format, then the time
// formats, then that the end comes after the start. Only the first failing
// check is reported.
func ValidateShape(in EventInput) (EventShape, error) {
	in.Title = strings.TrimSpace(in.Title)

	if err := shapeValidate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return EventShape{}, err
		}
		return EventShape{}, firstShapeViolation(fieldErrs)
	}

	date, _ := domain.ParseDate(in.EventDate)
	start, _ := domain.ParseClock(in.StartTime)
	end, _ := domain.ParseClock(in.EndTime)

	if start >= end {
		return EventShape{}, ErrInvalidTimeRange
	}

	return EventShape{Title: in.Title, Date: date, Start: start, End: end}, nil
}

func firstShapeViolation(fieldErrs validator.ValidationErrors) error {
	var missing []string
	var badDate, badTime bool

	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		case "event_date":
			badDate = true
		case "clock12":
			badTime = true
		}
	}

	switch {
	case len(missing) > 0:
		return &ValidationError{
			Kind:    KindMissingField,
			Message: ErrMissingField.Message + ": " + strings.Join(missing, ", "),
		}
	case badDate:
		return ErrInvalidDateFormat
	case badTime:
		return ErrInvalidTimeFormat
	default:
		return fieldErrs
	}
}
