package holiday

import (
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/validator"
)

type AddHolidayRequest struct {
	Description string `json:"description"`
	DateDebut   string `json:"date_debut"`
	DateFin     string `json:"date_fin"`
}

func (r *AddHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
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

type HolidayResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	DateDebut   string `json:"date_debut"`
	DateFin     string `json:"date_fin"`
}
