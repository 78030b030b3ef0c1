package attendance

import (
	"context"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/attendance"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/employee"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.AttendanceRecord
	nextID  int
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if rec.Date.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByMonth(_ context.Context, month time.Time, matricule, departement string) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if rec.Date.Year() != month.Year() || rec.Date.Month() != month.Month() {
			continue
		}
		if matricule != "" && rec.Matricule != matricule {
			continue
		}
		if departement != "" && rec.Departement != departement {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByMatriculeRange(_ context.Context, matricule string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if rec.Matricule == matricule && !rec.Date.Before(from) && !rec.Date.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) GetForDay(_ context.Context, matricule string, date time.Time) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if rec.Matricule == matricule && rec.Date.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Create(_ context.Context, rec attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	f.nextID++
	rec.ID = string(rune('a' + f.nextID))
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) SetDeparture(_ context.Context, id string, heureDepart string) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records[i].HeureDepart = &heureDepart
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByMatricule(_ context.Context, matricule string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Matricule == matricule {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if filter.Departement != "" && emp.Departement != filter.Departement {
			continue
		}
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Count(ctx context.Context, filter employee.ListFilter) (int, error) {
	list, _ := f.List(ctx, filter)
	return len(list), nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, matricule string) error { return nil }

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) ListByYear(_ context.Context, year int) ([]holiday.Holiday, error) {
	return f.holidays, nil
}

func (f *fakeHolidayRepo) FindForDate(_ context.Context, date time.Time) (holiday.Holiday, error) {
	for _, h := range f.holidays {
		if h.Covers(date) {
			return h, nil
		}
	}
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) Delete(_ context.Context, id string) error { return nil }

func newTestService(attRepo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo, holRepo *fakeHolidayRepo, now time.Time) *AttendanceServiceImpl {
	svc := NewAttendanceService(nil, attRepo, empRepo, holRepo, slog.Default(), attendance.DefaultCalendarContext()).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	svc.inTx = func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }
	return svc
}

func TestRecordScanFirstScanWritesArrival(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, &fakeEmployeeRepo{}, &fakeHolidayRepo{}, time.Date(2024, 3, 11, 8, 15, 30, 0, time.UTC))

	result, err := svc.RecordScan(context.Background(), "EMP001", "Awa Diop", "IT")
	require.NoError(t, err)

	assert.Equal(t, attendance.ScanStatusSuccess, result.Status)
	assert.Equal(t, attendance.ActionArrivee, result.Action)
	assert.Equal(t, "08:15:30", result.Time)

	require.Len(t, repo.records, 1)
	rec := repo.records[0]
	require.NotNil(t, rec.HeureArrivee)
	require.NotNil(t, rec.HeureDepart)
	assert.Equal(t, "08:15:30", *rec.HeureArrivee)
	assert.Equal(t, "09:15:30", *rec.HeureDepart)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), rec.Signature)
}

func TestRecordScanBeforeProvisionalDepartureIsRefused(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	arrival := "08:00:00"
	provisional := "09:00:00"
	repo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{{
		ID: "r1", Matricule: "EMP001", Date: day,
		HeureArrivee: &arrival, HeureDepart: &provisional,
	}}}
	svc := newTestService(repo, &fakeEmployeeRepo{}, &fakeHolidayRepo{}, time.Date(2024, 3, 11, 8, 30, 0, 0, time.UTC))

	result, err := svc.RecordScan(context.Background(), "EMP001", "Awa Diop", "IT")
	require.NoError(t, err)

	assert.Equal(t, attendance.ScanStatusError, result.Status)
	assert.Equal(t, attendance.ActionDepartAnticipe, result.Action)
	// The stored row is untouched.
	assert.Equal(t, provisional, *repo.records[0].HeureDepart)
}

func TestRecordScanAfterProvisionalDepartureRecordsDeparture(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	arrival := "08:00:00"
	provisional := "09:00:00"
	repo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{{
		ID: "r1", Matricule: "EMP001", Date: day,
		HeureArrivee: &arrival, HeureDepart: &provisional,
	}}}
	svc := newTestService(repo, &fakeEmployeeRepo{}, &fakeHolidayRepo{}, time.Date(2024, 3, 11, 17, 30, 0, 0, time.UTC))

	result, err := svc.RecordScan(context.Background(), "EMP001", "Awa Diop", "IT")
	require.NoError(t, err)

	assert.Equal(t, attendance.ScanStatusSuccess, result.Status)
	assert.Equal(t, attendance.ActionDepart, result.Action)
	assert.Equal(t, "17:30:00", *repo.records[0].HeureDepart)
	assert.Contains(t, result.Message, "9h30min")
}

func TestRecordScanAfterCompletedDayIsRefused(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	arrival := "08:00:00"
	departure := "17:30:00"
	repo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{{
		ID: "r1", Matricule: "EMP001", Date: day,
		HeureArrivee: &arrival, HeureDepart: &departure,
	}}}
	svc := newTestService(repo, &fakeEmployeeRepo{}, &fakeHolidayRepo{}, time.Date(2024, 3, 11, 18, 0, 0, 0, time.UTC))

	result, err := svc.RecordScan(context.Background(), "EMP001", "Awa Diop", "IT")
	require.NoError(t, err)

	assert.Equal(t, attendance.ScanStatusError, result.Status)
	assert.Equal(t, attendance.ActionLimiteAtteinte, result.Action)
}

func TestGetAbsentEmployees(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	arrival := "08:00:00"

	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{Matricule: "EMP001", Nom: "Diop", Prenom: "Awa", Departement: "IT"},
		{Matricule: "EMP002", Nom: "Ndiaye", Prenom: "Moussa", Departement: "IT"},
		{Matricule: "EMP003", Nom: "Fall", Prenom: "Fatou", Departement: "RH"},
	}}
	attRepo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{{
		ID: "r1", Matricule: "EMP001", Date: day, HeureArrivee: &arrival,
	}}}
	svc := newTestService(attRepo, empRepo, &fakeHolidayRepo{}, day)

	t.Run("working day", func(t *testing.T) {
		result, err := svc.GetAbsentEmployees(context.Background(), day, "")
		require.NoError(t, err)
		assert.False(t, result.Holiday)
		require.Len(t, result.Employees, 2)
		assert.Equal(t, "EMP002", result.Employees[0].Matricule)
		assert.Equal(t, "EMP003", result.Employees[1].Matricule)
	})

	t.Run("department filter", func(t *testing.T) {
		result, err := svc.GetAbsentEmployees(context.Background(), day, "RH")
		require.NoError(t, err)
		require.Len(t, result.Employees, 1)
		assert.Equal(t, "EMP003", result.Employees[0].Matricule)
	})

	t.Run("holiday short-circuits", func(t *testing.T) {
		holRepo := &fakeHolidayRepo{holidays: []holiday.Holiday{{
			ID: "h1", Description: "Korite", DateDebut: day, DateFin: day,
		}}}
		svcHoliday := newTestService(attRepo, empRepo, holRepo, day)

		result, err := svcHoliday.GetAbsentEmployees(context.Background(), day, "")
		require.NoError(t, err)
		assert.True(t, result.Holiday)
		assert.Equal(t, "Korite", result.HolidayMessage)
		assert.Empty(t, result.Employees)
	})
}

func TestGetEmployeeTrackingClassifiesRows(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	arrival := "09:00:00"
	departure := "16:00:00"
	bad := "not-a-time"

	repo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{
		{ID: "r1", Matricule: "EMP001", Date: day, HeureArrivee: &arrival, HeureDepart: &departure},
		{ID: "r2", Matricule: "EMP001", Date: day.AddDate(0, 0, 1), HeureArrivee: &bad},
	}}
	svc := newTestService(repo, &fakeEmployeeRepo{}, &fakeHolidayRepo{}, day)

	rows, err := svc.GetEmployeeTracking(context.Background(), attendance.TrackingFilter{
		Matricule: "EMP001",
		Month:     "2024-03",
	})
	require.NoError(t, err)

	// The malformed row is excluded, not zeroed.
	require.Len(t, rows, 1)
	assert.Equal(t, attendance.StatusIrregular, rows[0].Status)
	assert.Equal(t, "7h00", rows[0].Duree)
}

func TestGetEmployeeStats(t *testing.T) {
	arrival := "08:00:00"
	dep1 := "17:00:00"
	dep2 := "16:30:00"
	repo := &fakeAttendanceRepo{records: []attendance.AttendanceRecord{
		{ID: "r1", Matricule: "EMP001", Date: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), HeureArrivee: &arrival, HeureDepart: &dep1},
		{ID: "r2", Matricule: "EMP001", Date: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), HeureArrivee: &arrival, HeureDepart: &dep2},
	}}
	svc := newTestService(repo, &fakeEmployeeRepo{}, &fakeHolidayRepo{}, time.Now())

	stats, err := svc.GetEmployeeStats(context.Background(),
		"EMP001",
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalDays)
	assert.InDelta(t, 17.5, stats.TotalHours, 0.001)
	assert.InDelta(t, 8.75, stats.AverageHoursPerDay, 0.001)
}

func TestGenerateSignature(t *testing.T) {
	sig := GenerateSignature("EMP001", "2024-03-11", "08:15:30")
	assert.Len(t, sig, 8)
	assert.Regexp(t, regexp.MustCompile(`^[0-9A-F]{8}$`), sig)

	// Deterministic for identical input, distinct across inputs.
	assert.Equal(t, sig, GenerateSignature("EMP001", "2024-03-11", "08:15:30"))
	assert.NotEqual(t, sig, GenerateSignature("EMP002", "2024-03-11", "08:15:30"))
}
