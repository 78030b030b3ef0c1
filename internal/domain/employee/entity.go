package employee

import (
	"time"
)

type Employee struct {
	Matricule      string
	Nom            string
	Prenom         string
	Telephone      *string
	LieuHabitation *string
	Departement    string
	ImagePath      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName is the display name used on attendance rows.
func (e Employee) FullName() string {
	return e.Prenom + " " + e.Nom
}
