package attendance

import (
	"errors"
	"testing"
	"time"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func record(arrival, departure *string) attendance.AttendanceRecord {
	return attendance.AttendanceRecord{
		Matricule:    "EMP001",
		NomComplet:   "Awa Diop",
		Departement:  "IT",
		Date:         time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		HeureArrivee: arrival,
		HeureDepart:  departure,
	}
}

func TestClassify(t *testing.T) {
	cal := attendance.DefaultCalendarContext()

	tests := []struct {
		name         string
		arrival      *string
		departure    *string
		wantStatus   attendance.Status
		wantDuration *int
	}{
		{
			name:       "absent when no times recorded",
			wantStatus: attendance.StatusAbsent,
		},
		{
			name:         "normal full day",
			arrival:      strPtr("07:55:00"),
			departure:    strPtr("17:05:00"),
			wantStatus:   attendance.StatusNormal,
			wantDuration: intPtr(550),
		},
		{
			name:       "open session on time",
			arrival:    strPtr("07:30:00"),
			wantStatus: attendance.StatusNormal,
		},
		{
			name:       "open session late",
			arrival:    strPtr("08:00:01"),
			wantStatus: attendance.StatusLate,
		},
		{
			name:         "exact one hour session is missing departure",
			arrival:      strPtr("08:00:00"),
			departure:    strPtr("09:00:00"),
			wantStatus:   attendance.StatusMissingDeparture,
			wantDuration: intPtr(60),
		},
		{
			name:         "missing departure beats lateness",
			arrival:      strPtr("10:00:00"),
			departure:    strPtr("11:00:00"),
			wantStatus:   attendance.StatusMissingDeparture,
			wantDuration: intPtr(60),
		},
		{
			name:         "late and early is irregular",
			arrival:      strPtr("09:00:00"),
			departure:    strPtr("16:00:00"),
			wantStatus:   attendance.StatusIrregular,
			wantDuration: intPtr(420),
		},
		{
			name:         "late arrival only",
			arrival:      strPtr("08:30:00"),
			departure:    strPtr("17:10:00"),
			wantStatus:   attendance.StatusLate,
			wantDuration: intPtr(520),
		},
		{
			name:         "early departure only",
			arrival:      strPtr("07:45:00"),
			departure:    strPtr("16:30:00"),
			wantStatus:   attendance.StatusEarly,
			wantDuration: intPtr(525),
		},
		{
			name:         "overtime above nine hours",
			arrival:      strPtr("08:00:00"),
			departure:    strPtr("18:30:00"),
			wantStatus:   attendance.StatusOvertime,
			wantDuration: intPtr(630),
		},
		{
			name:         "exactly nine hours is normal",
			arrival:      strPtr("08:00:00"),
			departure:    strPtr("17:00:00"),
			wantStatus:   attendance.StatusNormal,
			wantDuration: intPtr(540),
		},
		{
			name:         "arrival exactly at threshold is not late",
			arrival:      strPtr("08:00:00"),
			departure:    strPtr("17:30:00"),
			wantStatus:   attendance.StatusNormal,
			wantDuration: intPtr(570),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(record(tt.arrival, tt.departure), cal)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
			if tt.wantDuration == nil {
				assert.Nil(t, got.DurationMinutes)
			} else {
				require.NotNil(t, got.DurationMinutes)
				assert.Equal(t, *tt.wantDuration, *got.DurationMinutes)
			}
		})
	}
}

func TestClassifyHolidayOverridesEverything(t *testing.T) {
	cal := attendance.DefaultCalendarContext()
	cal.IsHoliday = true
	cal.HolidayDescription = "Korite"

	for _, rec := range []attendance.AttendanceRecord{
		record(nil, nil),
		record(strPtr("10:00:00"), nil),
		record(strPtr("09:00:00"), strPtr("16:00:00")),
		record(strPtr("08:00:00"), strPtr("09:00:00")),
	} {
		got, err := Classify(rec, cal)
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusHoliday, got.Status)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	cal := attendance.DefaultCalendarContext()
	rec := record(strPtr("08:12:00"), strPtr("16:45:00"))

	first, err := Classify(rec, cal)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Classify(rec, cal)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestClassifyMalformedRows(t *testing.T) {
	cal := attendance.DefaultCalendarContext()

	t.Run("unparseable arrival", func(t *testing.T) {
		_, err := Classify(record(strPtr("8h00"), nil), cal)
		assert.Error(t, err)
	})

	t.Run("departure without arrival", func(t *testing.T) {
		_, err := Classify(record(nil, strPtr("17:00:00")), cal)
		assert.ErrorIs(t, err, attendance.ErrDepartureWithoutArrival)
	})

	t.Run("departure before arrival", func(t *testing.T) {
		_, err := Classify(record(strPtr("17:00:00"), strPtr("08:00:00")), cal)
		assert.True(t, errors.Is(err, attendance.ErrNegativeDuration))
	})
}

func intPtr(n int) *int { return &n }
