package leave

import (
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/validator"
)

type CreateRecordRequest struct {
	Matricule string `json:"matricule"`
	Kind      Kind   `json:"type"`
	Motif     string `json:"motif"`
	DateDebut string `json:"date_debut"`
	DateFin   string `json:"date_fin"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Matricule) {
		errs = append(errs, validator.ValidationError{Field: "matricule", Message: "matricule is required"})
	} else if !validator.IsValidMatricule(r.Matricule) {
		errs = append(errs, validator.ValidationError{Field: "matricule", Message: "invalid matricule"})
	}
	if r.Kind != KindLeave && r.Kind != KindMission {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be conge or mission"})
	}
	debut, okDebut := validator.IsValidDate(r.DateDebut)
	if !okDebut {
		errs = append(errs, validator.ValidationError{Field: "date_debut", Message: "date_debut must be YYYY-MM-DD"})
	}
	fin, okFin := validator.IsValidDate(r.DateFin)
	if !okFin {
		errs = append(errs, validator.ValidationError{Field: "date_fin", Message: "date_fin must be YYYY-MM-DD"})
	}
	if okDebut && okFin && fin.Before(debut) {
		errs = append(errs, validator.ValidationError{Field: "date_fin", Message: "date_fin must not precede date_debut"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID          string `json:"id"`
	Matricule   string `json:"matricule"`
	NomComplet  string `json:"nom_complet"`
	Departement string `json:"departement"`
	Kind        Kind   `json:"type"`
	Motif       string `json:"motif"`
	DateDebut   string `json:"date_debut"`
	DateFin     string `json:"date_fin"`
}

type ListFilter struct {
	Matricule   string
	Departement string
	Kind        Kind
}
