package report

// ReportSummary is the per-date, per-department roll-up shown on the
// console dashboard. It is recomputed on every query and never
// persisted. AverageSessionMinutes is nil when no completed real
// session exists; AverageSession then renders "-".
type ReportSummary struct {
	TotalEmployees    int `json:"total_employees"`
	PresentToday      int `json:"present_today"`
	AbsentToday       int `json:"absent_today"`
	LateArrivals      int `json:"late_arrivals"`
	EarlyDepartures   int `json:"early_departures"`
	MissingDepartures int `json:"missing_departures"`

	AverageSessionMinutes *int   `json:"average_session_minutes"`
	AverageSession        string `json:"average_session"`

	Holiday        bool   `json:"-"`
	HolidayMessage string `json:"-"`
}

// HolidaySummary is the sentinel returned instead of numeric absence
// data when the queried date is a holiday.
type HolidaySummary struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
