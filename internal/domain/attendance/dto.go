package attendance

import (
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/validator"
)

// Scan actions surfaced to the capture clients. Refusals carry an
// error status but are informational, not failures.
const (
	ActionArrivee        = "arrivee"
	ActionDepart         = "depart"
	ActionDepartAnticipe = "depart_anticipe"
	ActionLimiteAtteinte = "limite_atteinte"
)

// Scan statuses.
const (
	ScanStatusSuccess = "success"
	ScanStatusError   = "error"
)

// ScanResult is what a recognition scan reports back to the kiosk.
type ScanResult struct {
	Status  string `json:"status"`
	Action  string `json:"action"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

// AttendanceRowResponse is a raw daily attendance row as rendered by
// the console's daily log table.
type AttendanceRowResponse struct {
	Matricule    string  `json:"matricule"`
	NomComplet   string  `json:"nom_complet"`
	Departement  string  `json:"departement"`
	Date         string  `json:"date"`
	HeureArrivee *string `json:"heure_arrivee"`
	HeureDepart  *string `json:"heure_depart"`
	Duree        string  `json:"duree"`
	Signature    string  `json:"signature"`
}

// TrackingRowResponse is a per-day tracking row carrying the classified
// status for the monthly employee tracking view.
type TrackingRowResponse struct {
	Matricule    string  `json:"matricule"`
	NomComplet   string  `json:"nom_complet"`
	Departement  string  `json:"departement"`
	Date         string  `json:"date"`
	HeureArrivee *string `json:"heure_arrivee"`
	HeureDepart  *string `json:"heure_depart"`
	Duree        string  `json:"duree"`
	Status       Status  `json:"status"`
}

// PresentEmployeeResponse lists who is currently on site (arrived, not
// yet genuinely departed).
type PresentEmployeeResponse struct {
	Matricule    string `json:"matricule"`
	NomComplet   string `json:"nom_complet"`
	Departement  string `json:"departement"`
	HeureArrivee string `json:"heure_arrivee"`
	Date         string `json:"date"`
}

type TrackingFilter struct {
	Matricule   string
	Departement string
	Month       string // "YYYY-MM"
}

func (f *TrackingFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month is required"})
	} else if _, ok := validator.IsValidMonth(f.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be YYYY-MM"})
	}
	if !validator.IsEmpty(f.Matricule) && !validator.IsValidMatricule(f.Matricule) {
		errs = append(errs, validator.ValidationError{Field: "matricule", Message: "invalid matricule"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeStatsResponse aggregates one employee's attendance over a
// date range.
type EmployeeStatsResponse struct {
	Matricule          string  `json:"matricule"`
	TotalDays          int     `json:"total_days"`
	TotalHours         float64 `json:"total_hours"`
	AverageHoursPerDay float64 `json:"average_hours_per_day"`
}
