package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// ListByYear returns every holiday range touching the given year.
	ListByYear(ctx context.Context, year int) ([]Holiday, error)

	// FindForDate returns the holiday covering date, or
	// ErrHolidayNotFound when the date is a working day.
	FindForDate(ctx context.Context, date time.Time) (Holiday, error)

	Create(ctx context.Context, newHoliday Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
