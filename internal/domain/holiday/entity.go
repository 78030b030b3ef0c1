package holiday

import "time"

// Holiday is an inclusive date range on which attendance rules are
// suppressed entirely.
type Holiday struct {
	ID          string
	Description string
	DateDebut   time.Time
	DateFin     time.Time
	CreatedAt   time.Time
}

// Covers reports whether date falls inside the holiday range.
func (h Holiday) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(h.DateDebut.Truncate(24*time.Hour)) && !d.After(h.DateFin.Truncate(24*time.Hour))
}
