package report

import (
	"context"
	"time"
)

// ReportService defines business logic for advanced reports
type ReportService interface {
	// GetAdvancedReports builds the summary for one date, optionally
	// narrowed to a department. On holidays the summary carries the
	// holiday flag and description instead of absence counts.
	GetAdvancedReports(ctx context.Context, date time.Time, departement string) (ReportSummary, error)
}
