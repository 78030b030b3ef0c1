package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/attendance"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/employee"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/holiday"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/report"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/timeutil"
	attendanceservice "github.com/liggey-sinaa/attendance-backend-go/internal/service/attendance"
)

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	holiday.HolidayRepository

	logger     *slog.Logger
	thresholds attendance.CalendarContext
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	logger *slog.Logger,
	thresholds attendance.CalendarContext,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		HolidayRepository:    holidayRepo,
		logger:               logger,
		thresholds:           thresholds,
	}
}

// Summarize folds classified records into the dashboard counts. Pure:
// identical inputs always produce the identical summary.
//
// Present counts distinct matricules with an arrival. Late and early
// both count irregular rows, since an irregular day is late and early
// at once. The average session covers completed real sessions only:
// both clock values present and not the provisional one-hour write.
func Summarize(records []attendance.ClassifiedRecord, rosterSize int, cal attendance.CalendarContext) report.ReportSummary {
	summary := report.ReportSummary{
		TotalEmployees: rosterSize,
		Holiday:        cal.IsHoliday,
		HolidayMessage: cal.HolidayDescription,
	}

	// A holiday carries no numeric absence data; every count except the
	// roster size stays zero.
	if cal.IsHoliday {
		summary.AverageSession = "-"
		return summary
	}

	present := make(map[string]struct{})
	var sessionTotal, sessionCount int

	for _, rec := range records {
		if rec.HeureArrivee != nil {
			present[rec.Matricule] = struct{}{}
		}

		switch rec.Status {
		case attendance.StatusLate:
			summary.LateArrivals++
		case attendance.StatusEarly:
			summary.EarlyDepartures++
		case attendance.StatusIrregular:
			summary.LateArrivals++
			summary.EarlyDepartures++
		case attendance.StatusMissingDeparture:
			summary.MissingDepartures++
		}

		if rec.DurationMinutes != nil && rec.Status != attendance.StatusMissingDeparture {
			sessionTotal += *rec.DurationMinutes
			sessionCount++
		}
	}

	summary.PresentToday = len(present)
	if !cal.IsHoliday {
		summary.AbsentToday = summary.TotalEmployees - summary.PresentToday
	}

	summary.AverageSession = "-"
	if sessionCount > 0 {
		avg := sessionTotal / sessionCount
		summary.AverageSessionMinutes = &avg
		summary.AverageSession = timeutil.FormatDuration(avg)
	}
	return summary
}

// GetAdvancedReports implements report.ReportService.
func (s *ReportServiceImpl) GetAdvancedReports(ctx context.Context, date time.Time, departement string) (report.ReportSummary, error) {
	cal := s.thresholds
	h, err := s.HolidayRepository.FindForDate(ctx, date)
	switch {
	case err == nil:
		cal.IsHoliday = true
		cal.HolidayDescription = h.Description
	case !errors.Is(err, holiday.ErrHolidayNotFound):
		return report.ReportSummary{}, fmt.Errorf("failed to check holiday calendar: %w", err)
	}

	rosterSize, err := s.EmployeeRepository.Count(ctx, employee.ListFilter{Departement: departement})
	if err != nil {
		return report.ReportSummary{}, fmt.Errorf("failed to count employees: %w", err)
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return report.ReportSummary{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	classified := make([]attendance.ClassifiedRecord, 0, len(records))
	for _, rec := range records {
		if departement != "" && rec.Departement != departement {
			continue
		}
		c, err := attendanceservice.Classify(rec, cal)
		if err != nil {
			s.logger.Warn("excluding malformed attendance row from report",
				slog.String("matricule", rec.Matricule),
				slog.String("date", rec.Date.Format("2006-01-02")),
				slog.Any("error", err))
			continue
		}
		classified = append(classified, c)
	}

	return Summarize(classified, rosterSize, cal), nil
}
