package report

import (
	"testing"
	"time"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/attendance"
	attendanceservice "github.com/liggey-sinaa/attendance-backend-go/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func classified(t *testing.T, matricule, arrival, departure string, cal attendance.CalendarContext) attendance.ClassifiedRecord {
	t.Helper()

	rec := attendance.AttendanceRecord{
		Matricule: matricule,
		Date:      time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	}
	if arrival != "" {
		rec.HeureArrivee = strPtr(arrival)
	}
	if departure != "" {
		rec.HeureDepart = strPtr(departure)
	}

	out, err := attendanceservice.Classify(rec, cal)
	require.NoError(t, err)
	return out
}

func TestSummarizeCounts(t *testing.T) {
	cal := attendance.DefaultCalendarContext()

	records := []attendance.ClassifiedRecord{
		classified(t, "EMP001", "07:50:00", "17:10:00", cal), // normal
		classified(t, "EMP002", "08:30:00", "17:05:00", cal), // late
		classified(t, "EMP003", "07:45:00", "16:00:00", cal), // early
		classified(t, "EMP004", "09:00:00", "16:30:00", cal), // irregular
		classified(t, "EMP005", "08:10:00", "09:10:00", cal), // missing departure
		classified(t, "EMP006", "07:40:00", "", cal),         // open session
	}

	summary := Summarize(records, 10, cal)

	assert.Equal(t, 10, summary.TotalEmployees)
	assert.Equal(t, 6, summary.PresentToday)
	assert.Equal(t, 4, summary.AbsentToday)
	assert.Equal(t, 2, summary.LateArrivals)
	assert.Equal(t, 2, summary.EarlyDepartures)
	assert.Equal(t, 1, summary.MissingDepartures)

	// Average covers the four completed real sessions only; the
	// provisional one-hour row and the open session are excluded.
	require.NotNil(t, summary.AverageSessionMinutes)
	assert.Equal(t, (560+515+495+450)/4, *summary.AverageSessionMinutes)
	assert.Equal(t, "8h25", summary.AverageSession)
	assert.False(t, summary.Holiday)
}

func TestSummarizeNoCompletedSessions(t *testing.T) {
	cal := attendance.DefaultCalendarContext()

	records := []attendance.ClassifiedRecord{
		classified(t, "EMP001", "07:40:00", "", cal),
		classified(t, "EMP002", "08:00:00", "09:00:00", cal),
	}

	summary := Summarize(records, 5, cal)

	assert.Nil(t, summary.AverageSessionMinutes)
	assert.Equal(t, "-", summary.AverageSession)
	assert.Equal(t, 2, summary.PresentToday)
	assert.Equal(t, 3, summary.AbsentToday)
}

func TestSummarizeEmpty(t *testing.T) {
	cal := attendance.DefaultCalendarContext()

	summary := Summarize(nil, 7, cal)

	assert.Equal(t, 7, summary.TotalEmployees)
	assert.Equal(t, 0, summary.PresentToday)
	assert.Equal(t, 7, summary.AbsentToday)
	assert.Nil(t, summary.AverageSessionMinutes)
	assert.Equal(t, "-", summary.AverageSession)
}

func TestSummarizeHoliday(t *testing.T) {
	cal := attendance.DefaultCalendarContext()
	cal.IsHoliday = true
	cal.HolidayDescription = "Tabaski"

	records := []attendance.ClassifiedRecord{
		classified(t, "EMP001", "09:00:00", "16:00:00", cal),
	}

	summary := Summarize(records, 10, cal)

	assert.True(t, summary.Holiday)
	assert.Equal(t, "Tabaski", summary.HolidayMessage)
	assert.Equal(t, 10, summary.TotalEmployees)
	// Every count except the roster size stays zero on a holiday.
	assert.Equal(t, 0, summary.PresentToday)
	assert.Equal(t, 0, summary.AbsentToday)
	assert.Equal(t, 0, summary.LateArrivals)
	assert.Equal(t, 0, summary.EarlyDepartures)
	assert.Equal(t, "-", summary.AverageSession)
}
