package leave

import "time"

// Kind separates ordinary leave from assignment missions; both share
// the same date-range shape and are rendered side by side in the
// console.
type Kind string

const (
	KindLeave   Kind = "conge"
	KindMission Kind = "mission"
)

type Record struct {
	ID          string
	Matricule   string
	NomComplet  string
	Departement string
	Kind        Kind
	Motif       string
	DateDebut   time.Time
	DateFin     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Covers reports whether date falls inside the leave range.
func (r Record) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(r.DateDebut.Truncate(24*time.Hour)) && !d.After(r.DateFin.Truncate(24*time.Hour))
}
