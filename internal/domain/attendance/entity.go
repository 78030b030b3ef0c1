package attendance

import (
	"time"

	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/timeutil"
)

// AttendanceRecord is one person's attendance for one calendar date.
// Clock values are stored as raw "HH:MM:SS" strings exactly as the
// scanner wrote them; classification parses them and rejects malformed
// rows instead of zeroing them. A departure never exists without an
// arrival.
type AttendanceRecord struct {
	ID           string
	Matricule    string
	NomComplet   string
	Departement  string
	Date         time.Time
	HeureArrivee *string
	HeureDepart  *string
	Signature    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Status is the closed set of operational states a record can classify
// into. The renderer matches exhaustively on these; adding a variant
// without handling it everywhere is a bug.
type Status string

const (
	StatusHoliday          Status = "holiday"
	StatusAbsent           Status = "absent"
	StatusMissingDeparture Status = "missing_departure"
	StatusIrregular        Status = "irregular"
	StatusLate             Status = "late"
	StatusEarly            Status = "early_departure"
	StatusOvertime         Status = "overtime"
	StatusNormal           Status = "normal"
)

// CalendarContext carries the per-date classification parameters.
// Built fresh for every query from the holiday calendar plus static
// defaults; never mutated.
type CalendarContext struct {
	IsHoliday          bool
	HolidayDescription string

	ExpectedArrivalBy      timeutil.TimeOfDay
	ExpectedDepartureAfter timeutil.TimeOfDay

	// FullDayMinutes is the overtime threshold: sessions strictly
	// longer than this classify as overtime.
	FullDayMinutes int
}

const (
	DefaultArrivalThreshold   = "08:00:00"
	DefaultDepartureThreshold = "17:00:00"
	DefaultFullDayMinutes     = 9 * 60
)

// DefaultCalendarContext returns the working-day thresholds with no
// holiday in effect.
func DefaultCalendarContext() CalendarContext {
	return CalendarContext{
		ExpectedArrivalBy:      timeutil.MustTimeOfDay(DefaultArrivalThreshold),
		ExpectedDepartureAfter: timeutil.MustTimeOfDay(DefaultDepartureThreshold),
		FullDayMinutes:         DefaultFullDayMinutes,
	}
}

// ClassifiedRecord is an AttendanceRecord with its derived status and
// session duration. DurationMinutes is nil unless both arrival and
// departure were recorded. Immutable once produced.
type ClassifiedRecord struct {
	AttendanceRecord

	DurationMinutes *int
	Status          Status
}
