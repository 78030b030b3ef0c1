package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance tracking
type AttendanceService interface {
	// RecordScan registers a recognition hit: first scan of the day
	// writes an arrival, a later scan past the provisional departure
	// writes the real departure. Refusals (too soon, already complete)
	// come back as informational ScanResults, not errors.
	RecordScan(ctx context.Context, matricule, nomComplet, departement string) (ScanResult, error)

	// GetDailyAttendance returns the raw rows for one date.
	GetDailyAttendance(ctx context.Context, date time.Time) ([]AttendanceRowResponse, error)

	// GetEmployeeTracking returns classified per-day rows for a month.
	GetEmployeeTracking(ctx context.Context, filter TrackingFilter) ([]TrackingRowResponse, error)

	// GetPresentEmployees lists employees on site right now.
	GetPresentEmployees(ctx context.Context) ([]PresentEmployeeResponse, error)

	// GetAbsentEmployees lists the roster members with no record on a
	// date. On holidays it signals the short-circuit instead.
	GetAbsentEmployees(ctx context.Context, date time.Time, departement string) (AbsentListResponse, error)

	// GetEmployeeStats aggregates one employee's sessions over a range.
	GetEmployeeStats(ctx context.Context, matricule string, from, to time.Time) (EmployeeStatsResponse, error)
}

// AbsentListResponse either carries the absent roster for a working
// day, or the holiday sentinel; callers must check Holiday before
// reading Employees.
type AbsentListResponse struct {
	Holiday        bool
	HolidayMessage string
	Employees      []AbsentEmployeeResponse
}

type AbsentEmployeeResponse struct {
	Matricule   string  `json:"matricule"`
	Nom         string  `json:"nom"`
	Prenom      string  `json:"prenom"`
	Telephone   *string `json:"telephone"`
	Departement string  `json:"departement"`
}
