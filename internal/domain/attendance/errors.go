package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound = errors.New("attendance record not found")

	// ErrDepartureWithoutArrival guards the invariant that a departure
	// can never be written against a row with no arrival.
	ErrDepartureWithoutArrival = errors.New("departure recorded without an arrival")

	// ErrNegativeDuration flags a row whose departure precedes its
	// arrival. Durations never wrap to the next day.
	ErrNegativeDuration = errors.New("departure precedes arrival")

	// ErrInvalidDate / ErrInvalidMonth reject malformed query filters.
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
	ErrInvalidMonth = errors.New("month must be YYYY-MM")
)
