package attendance

import (
	"fmt"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/attendance"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/timeutil"
)

// Classify derives the status and session duration of a single record.
// It is pure and total over well-formed input: identical (record,
// context) pairs always produce the identical result. It returns an
// error only for malformed rows (unparseable clock string, departure
// without arrival, departure before arrival); callers exclude such
// rows from aggregation and log a warning rather than zeroing them.
//
// The rules fire in strict precedence order, first match wins:
//
//  1. Holiday    - the calendar suppresses every other state.
//  2. Absent     - neither arrival nor departure recorded.
//  3. MissingDeparture - duration is exactly 60 minutes. The scanner
//     writes a provisional departure of arrival+1h when no real
//     departure was captured, so an exact one-hour session is read as
//     "departure never recorded". A genuine one-hour attendance is
//     misclassified by this check; that false positive is accepted for
//     compatibility with historical data.
//  4. Irregular  - late arrival and early departure simultaneously.
//  5. Late       - arrival after the expected-arrival threshold.
//  6. Early      - departure before the expected-departure threshold.
//  7. Overtime   - duration strictly above the full-day threshold.
//  8. Normal     - everything else, including an open session whose
//     arrival is on time.
//
// Duration-dependent rules (3 and 7) are skipped when either clock
// value is missing.
func Classify(rec attendance.AttendanceRecord, cal attendance.CalendarContext) (attendance.ClassifiedRecord, error) {
	out := attendance.ClassifiedRecord{AttendanceRecord: rec}

	var arrival, departure *timeutil.TimeOfDay

	if rec.HeureArrivee != nil {
		t, err := timeutil.ParseTimeOfDay(*rec.HeureArrivee)
		if err != nil {
			return out, fmt.Errorf("arrival time for %s on %s: %w", rec.Matricule, rec.Date.Format("2006-01-02"), err)
		}
		arrival = &t
	}
	if rec.HeureDepart != nil {
		if arrival == nil {
			return out, attendance.ErrDepartureWithoutArrival
		}
		t, err := timeutil.ParseTimeOfDay(*rec.HeureDepart)
		if err != nil {
			return out, fmt.Errorf("departure time for %s on %s: %w", rec.Matricule, rec.Date.Format("2006-01-02"), err)
		}
		departure = &t
	}

	if arrival != nil && departure != nil {
		minutes := timeutil.Minutes(*arrival, *departure)
		if minutes < 0 {
			return out, fmt.Errorf("record for %s on %s: %w", rec.Matricule, rec.Date.Format("2006-01-02"), attendance.ErrNegativeDuration)
		}
		out.DurationMinutes = &minutes
	}

	out.Status = classify(arrival, departure, out.DurationMinutes, cal)
	return out, nil
}

// provisionalSessionMinutes is the length of the synthetic session the
// scanner writes when only an arrival was captured.
const provisionalSessionMinutes = 60

func classify(arrival, departure *timeutil.TimeOfDay, duration *int, cal attendance.CalendarContext) attendance.Status {
	if cal.IsHoliday {
		return attendance.StatusHoliday
	}
	if arrival == nil && departure == nil {
		return attendance.StatusAbsent
	}
	if duration != nil && *duration == provisionalSessionMinutes {
		return attendance.StatusMissingDeparture
	}

	late := arrival != nil && arrival.After(cal.ExpectedArrivalBy)
	early := departure != nil && departure.Before(cal.ExpectedDepartureAfter)

	switch {
	case late && early:
		return attendance.StatusIrregular
	case late:
		return attendance.StatusLate
	case early:
		return attendance.StatusEarly
	case duration != nil && *duration > cal.FullDayMinutes:
		return attendance.StatusOvertime
	default:
		return attendance.StatusNormal
	}
}
