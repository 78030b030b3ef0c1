package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// ListByDate returns every record for one calendar date.
	ListByDate(ctx context.Context, date time.Time) ([]AttendanceRecord, error)

	// ListByMonth returns records for one calendar month, optionally
	// narrowed to a matricule and/or department, ordered by date.
	ListByMonth(ctx context.Context, month time.Time, matricule, departement string) ([]AttendanceRecord, error)

	// ListByMatriculeRange returns one employee's records between two
	// dates inclusive, for the stats view.
	ListByMatriculeRange(ctx context.Context, matricule string, from, to time.Time) ([]AttendanceRecord, error)

	// GetForDay returns all of one employee's records for a date.
	GetForDay(ctx context.Context, matricule string, date time.Time) ([]AttendanceRecord, error)

	// Create inserts a new record (arrival plus synthetic departure).
	Create(ctx context.Context, rec AttendanceRecord) (AttendanceRecord, error)

	// SetDeparture overwrites the departure time of an existing record.
	SetDeparture(ctx context.Context, id string, heureDepart string) error
}
