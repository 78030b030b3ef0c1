package attendance

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/attendance"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/employee"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/holiday"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/database"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/metrics"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/timeutil"
	"github.com/liggey-sinaa/attendance-backend-go/internal/repository/postgresql"
)

// signatureSalt is appended to every record fingerprint. Existing rows
// were signed with this value, so it cannot change without invalidating
// historical signatures.
const signatureSalt = "DB_CARBA"

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	holiday.HolidayRepository

	logger     *slog.Logger
	thresholds attendance.CalendarContext

	// now and inTx are swapped out in tests.
	now  func() time.Time
	inTx func(ctx context.Context, fn func(context.Context) error) error
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	holidayRepo holiday.HolidayRepository,
	logger *slog.Logger,
	thresholds attendance.CalendarContext,
) attendance.AttendanceService {
	svc := &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		HolidayRepository:    holidayRepo,
		logger:               logger,
		thresholds:           thresholds,
		now:                  time.Now,
	}
	svc.inTx = func(ctx context.Context, fn func(context.Context) error) error {
		return postgresql.WithTransaction(ctx, svc.db, fn)
	}
	return svc
}

// GenerateSignature fingerprints one attendance row: the first 8 hex
// digits, uppercased, of the MD5 of "{matricule}_{date}_{time}_{salt}".
func GenerateSignature(matricule, date, clockTime string) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%s_%s_%s", matricule, date, clockTime, signatureSalt)))
	return strings.ToUpper(fmt.Sprintf("%x", sum)[:8])
}

// isProvisionalDeparture reports whether the departure is the synthetic
// arrival+1h value written at scan time, meaning no real departure was
// ever captured.
func isProvisionalDeparture(arrival, departure string) bool {
	arr, err := timeutil.ParseTimeOfDay(arrival)
	if err != nil {
		return false
	}
	dep, err := timeutil.ParseTimeOfDay(departure)
	if err != nil {
		return false
	}
	return timeutil.Minutes(arr, dep) == 60
}

// hasOpenSession reports whether the record still awaits a real
// departure scan.
func hasOpenSession(rec attendance.AttendanceRecord) bool {
	if rec.HeureArrivee == nil {
		return false
	}
	if rec.HeureDepart == nil || *rec.HeureDepart == "" {
		return true
	}
	return isProvisionalDeparture(*rec.HeureArrivee, *rec.HeureDepart)
}

// RecordScan implements attendance.AttendanceService. The read and the
// write run in one transaction so two concurrent scans of the same face
// cannot both open a session.
func (s *AttendanceServiceImpl) RecordScan(ctx context.Context, matricule, nomComplet, departement string) (attendance.ScanResult, error) {
	var result attendance.ScanResult
	err := s.inTx(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.recordScan(ctx, matricule, nomComplet, departement)
		return err
	})
	return result, err
}

func (s *AttendanceServiceImpl) recordScan(ctx context.Context, matricule, nomComplet, departement string) (attendance.ScanResult, error) {
	nowTime := s.now()
	currentDate := nowTime.Format("2006-01-02")
	currentTime := nowTime.Format(timeutil.ClockLayout)
	day := time.Date(nowTime.Year(), nowTime.Month(), nowTime.Day(), 0, 0, 0, 0, nowTime.Location())

	todayRecords, err := s.AttendanceRepository.GetForDay(ctx, matricule, day)
	if err != nil {
		return attendance.ScanResult{}, fmt.Errorf("failed to load today's records: %w", err)
	}

	var openSession *attendance.AttendanceRecord
	for i := range todayRecords {
		rec := todayRecords[i]
		if hasOpenSession(rec) {
			openSession = &todayRecords[i]
			continue
		}
		if rec.HeureArrivee != nil && rec.HeureDepart != nil && *rec.HeureDepart != "" {
			// A real departure already closed the day.
			metrics.ScansRecorded.WithLabelValues(attendance.ActionLimiteAtteinte).Inc()
			return attendance.ScanResult{
				Status:  attendance.ScanStatusError,
				Action:  attendance.ActionLimiteAtteinte,
				Message: fmt.Sprintf("Désolé %s, vous avez déjà enregistré votre présence aujourd'hui.", nomComplet),
				Time:    currentTime,
			}, nil
		}
	}

	if openSession == nil {
		if len(todayRecords) > 0 {
			metrics.ScansRecorded.WithLabelValues(attendance.ActionLimiteAtteinte).Inc()
			return attendance.ScanResult{
				Status:  attendance.ScanStatusError,
				Action:  attendance.ActionLimiteAtteinte,
				Message: fmt.Sprintf("Désolé %s, vous avez déjà enregistré votre présence aujourd'hui.", nomComplet),
				Time:    currentTime,
			}, nil
		}
		return s.recordArrival(ctx, matricule, nomComplet, departement, day, currentDate, currentTime)
	}

	return s.recordDeparture(ctx, *openSession, nomComplet, nowTime, currentTime)
}

func (s *AttendanceServiceImpl) recordArrival(ctx context.Context, matricule, nomComplet, departement string, day time.Time, currentDate, currentTime string) (attendance.ScanResult, error) {
	arrival, err := timeutil.ParseTimeOfDay(currentTime)
	if err != nil {
		return attendance.ScanResult{}, fmt.Errorf("failed to parse scan time: %w", err)
	}

	// The departure column is pre-filled with a provisional arrival+1h
	// value; a later scan past that time overwrites it with the real
	// departure.
	provisionalDeparture := arrival.Add(time.Hour).String()

	rec := attendance.AttendanceRecord{
		Matricule:    matricule,
		NomComplet:   nomComplet,
		Departement:  departement,
		Date:         day,
		HeureArrivee: &currentTime,
		HeureDepart:  &provisionalDeparture,
		Signature:    GenerateSignature(matricule, currentDate, currentTime),
	}

	if _, err := s.AttendanceRepository.Create(ctx, rec); err != nil {
		return attendance.ScanResult{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	metrics.ScansRecorded.WithLabelValues(attendance.ActionArrivee).Inc()
	return attendance.ScanResult{
		Status:  attendance.ScanStatusSuccess,
		Action:  attendance.ActionArrivee,
		Message: fmt.Sprintf("Bonjour %s, vous venez d'arriver à %s. Heure de sortie prévue: %s", nomComplet, currentTime, provisionalDeparture),
		Time:    currentTime,
	}, nil
}

func (s *AttendanceServiceImpl) recordDeparture(ctx context.Context, session attendance.AttendanceRecord, nomComplet string, nowTime time.Time, currentTime string) (attendance.ScanResult, error) {
	arrival, err := timeutil.ParseTimeOfDay(*session.HeureArrivee)
	if err != nil {
		return attendance.ScanResult{}, fmt.Errorf("stored arrival time is malformed: %w", err)
	}
	scanTime, err := timeutil.ParseTimeOfDay(currentTime)
	if err != nil {
		return attendance.ScanResult{}, fmt.Errorf("failed to parse scan time: %w", err)
	}

	provisionalDeparture := arrival.Add(time.Hour)
	if !scanTime.After(provisionalDeparture) {
		metrics.ScansRecorded.WithLabelValues(attendance.ActionDepartAnticipe).Inc()
		return attendance.ScanResult{
			Status:  attendance.ScanStatusError,
			Action:  attendance.ActionDepartAnticipe,
			Message: fmt.Sprintf("Votre heure de sortie prévue est à %s. Veuillez scanner après cette heure.", provisionalDeparture.String()),
			Time:    currentTime,
		}, nil
	}

	if err := s.AttendanceRepository.SetDeparture(ctx, session.ID, currentTime); err != nil {
		return attendance.ScanResult{}, fmt.Errorf("failed to record departure: %w", err)
	}

	workedMinutes := timeutil.Minutes(arrival, scanTime)
	metrics.ScansRecorded.WithLabelValues(attendance.ActionDepart).Inc()
	return attendance.ScanResult{
		Status:  attendance.ScanStatusSuccess,
		Action:  attendance.ActionDepart,
		Message: fmt.Sprintf("Au revoir %s, vous partez à %s. Temps de travail: %dh%02dmin.", nomComplet, currentTime, workedMinutes/60, workedMinutes%60),
		Time:    currentTime,
	}, nil
}

// GetDailyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetDailyAttendance(ctx context.Context, date time.Time) ([]attendance.AttendanceRowResponse, error) {
	records, err := s.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily attendance: %w", err)
	}

	rows := make([]attendance.AttendanceRowResponse, 0, len(records))
	for _, rec := range records {
		rows = append(rows, attendance.AttendanceRowResponse{
			Matricule:    rec.Matricule,
			NomComplet:   rec.NomComplet,
			Departement:  rec.Departement,
			Date:         rec.Date.Format("2006-01-02"),
			HeureArrivee: rec.HeureArrivee,
			HeureDepart:  rec.HeureDepart,
			Duree:        s.durationString(rec),
			Signature:    rec.Signature,
		})
	}
	return rows, nil
}

// GetEmployeeTracking implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeTracking(ctx context.Context, filter attendance.TrackingFilter) ([]attendance.TrackingRowResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	month, err := time.Parse("2006-01", filter.Month)
	if err != nil {
		return nil, attendance.ErrInvalidMonth
	}

	records, err := s.AttendanceRepository.ListByMonth(ctx, month, filter.Matricule, filter.Departement)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly attendance: %w", err)
	}

	holidays, err := s.HolidayRepository.ListByYear(ctx, month.Year())
	if err != nil {
		return nil, fmt.Errorf("failed to load holiday calendar: %w", err)
	}

	rows := make([]attendance.TrackingRowResponse, 0, len(records))
	for _, rec := range records {
		cal := s.thresholds
		for _, h := range holidays {
			if h.Covers(rec.Date) {
				cal.IsHoliday = true
				cal.HolidayDescription = h.Description
				break
			}
		}

		classified, err := Classify(rec, cal)
		if err != nil {
			// Malformed rows degrade individually, never the whole pass.
			s.logger.Warn("excluding malformed attendance row",
				slog.String("matricule", rec.Matricule),
				slog.String("date", rec.Date.Format("2006-01-02")),
				slog.Any("error", err))
			continue
		}

		rows = append(rows, attendance.TrackingRowResponse{
			Matricule:    rec.Matricule,
			NomComplet:   rec.NomComplet,
			Departement:  rec.Departement,
			Date:         rec.Date.Format("2006-01-02"),
			HeureArrivee: rec.HeureArrivee,
			HeureDepart:  rec.HeureDepart,
			Duree:        formatClassifiedDuration(classified),
			Status:       classified.Status,
		})
	}
	return rows, nil
}

// GetPresentEmployees implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetPresentEmployees(ctx context.Context) ([]attendance.PresentEmployeeResponse, error) {
	nowTime := s.now()
	day := time.Date(nowTime.Year(), nowTime.Month(), nowTime.Day(), 0, 0, 0, 0, nowTime.Location())

	records, err := s.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	present := make([]attendance.PresentEmployeeResponse, 0, len(records))
	for _, rec := range records {
		if !hasOpenSession(rec) {
			continue
		}
		present = append(present, attendance.PresentEmployeeResponse{
			Matricule:    rec.Matricule,
			NomComplet:   rec.NomComplet,
			Departement:  rec.Departement,
			HeureArrivee: *rec.HeureArrivee,
			Date:         rec.Date.Format("2006-01-02"),
		})
	}
	return present, nil
}

// GetAbsentEmployees implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAbsentEmployees(ctx context.Context, date time.Time, departement string) (attendance.AbsentListResponse, error) {
	h, err := s.HolidayRepository.FindForDate(ctx, date)
	if err == nil {
		return attendance.AbsentListResponse{
			Holiday:        true,
			HolidayMessage: h.Description,
		}, nil
	}
	if !errors.Is(err, holiday.ErrHolidayNotFound) {
		return attendance.AbsentListResponse{}, fmt.Errorf("failed to check holiday calendar: %w", err)
	}

	roster, err := s.EmployeeRepository.List(ctx, employee.ListFilter{Departement: departement})
	if err != nil {
		return attendance.AbsentListResponse{}, fmt.Errorf("failed to load employee roster: %w", err)
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, date)
	if err != nil {
		return attendance.AbsentListResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		seen[rec.Matricule] = struct{}{}
	}

	absent := make([]attendance.AbsentEmployeeResponse, 0)
	for _, emp := range roster {
		if _, ok := seen[emp.Matricule]; ok {
			continue
		}
		absent = append(absent, attendance.AbsentEmployeeResponse{
			Matricule:   emp.Matricule,
			Nom:         emp.Nom,
			Prenom:      emp.Prenom,
			Telephone:   emp.Telephone,
			Departement: emp.Departement,
		})
	}
	return attendance.AbsentListResponse{Employees: absent}, nil
}

// GetEmployeeStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeStats(ctx context.Context, matricule string, from, to time.Time) (attendance.EmployeeStatsResponse, error) {
	records, err := s.AttendanceRepository.ListByMatriculeRange(ctx, matricule, from, to)
	if err != nil {
		return attendance.EmployeeStatsResponse{}, fmt.Errorf("failed to list attendance range: %w", err)
	}

	days := make(map[string]struct{})
	var totalHours float64
	for _, rec := range records {
		days[rec.Date.Format("2006-01-02")] = struct{}{}

		if rec.HeureArrivee == nil || rec.HeureDepart == nil || *rec.HeureDepart == "" {
			continue
		}
		arr, err := timeutil.ParseTimeOfDay(*rec.HeureArrivee)
		if err != nil {
			continue
		}
		dep, err := timeutil.ParseTimeOfDay(*rec.HeureDepart)
		if err != nil {
			continue
		}
		totalHours += float64(timeutil.Minutes(arr, dep)) / 60
	}

	stats := attendance.EmployeeStatsResponse{
		Matricule:  matricule,
		TotalDays:  len(days),
		TotalHours: math.Round(totalHours*100) / 100,
	}
	if stats.TotalDays > 0 {
		stats.AverageHoursPerDay = math.Round(totalHours/float64(stats.TotalDays)*100) / 100
	}
	return stats, nil
}

func (s *AttendanceServiceImpl) durationString(rec attendance.AttendanceRecord) string {
	if rec.HeureArrivee == nil || rec.HeureDepart == nil || *rec.HeureDepart == "" {
		return "-"
	}
	arr, err := timeutil.ParseTimeOfDay(*rec.HeureArrivee)
	if err != nil {
		return "-"
	}
	dep, err := timeutil.ParseTimeOfDay(*rec.HeureDepart)
	if err != nil {
		return "-"
	}
	return timeutil.FormatDuration(timeutil.Minutes(arr, dep))
}

func formatClassifiedDuration(rec attendance.ClassifiedRecord) string {
	if rec.DurationMinutes == nil {
		return "-"
	}
	return timeutil.FormatDuration(*rec.DurationMinutes)
}
