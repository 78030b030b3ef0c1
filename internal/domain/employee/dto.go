package employee

import (
	"mime/multipart"

	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/validator"
)

type AddEmployeeRequest struct {
	Matricule      string `json:"matricule"`
	Nom            string `json:"nom"`
	Prenom         string `json:"prenom"`
	Telephone      string `json:"telephone"`
	LieuHabitation string `json:"lieu_habitation"`
	Departement    string `json:"departement"`

	Photo       multipart.File        `json:"-"`
	PhotoHeader *multipart.FileHeader `json:"-"`
}

func (r *AddEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Matricule) {
		errs = append(errs, validator.ValidationError{Field: "matricule", Message: "matricule is required"})
	} else if !validator.IsValidMatricule(r.Matricule) {
		errs = append(errs, validator.ValidationError{Field: "matricule", Message: "matricule must be uppercase letters, digits and dashes"})
	}
	if validator.IsEmpty(r.Nom) {
		errs = append(errs, validator.ValidationError{Field: "nom", Message: "nom is required"})
	}
	if validator.IsEmpty(r.Prenom) {
		errs = append(errs, validator.ValidationError{Field: "prenom", Message: "prenom is required"})
	}
	if validator.IsEmpty(r.Departement) {
		errs = append(errs, validator.ValidationError{Field: "departement", Message: "departement is required"})
	}
	if !validator.IsEmpty(r.Telephone) && !validator.IsValidPhoneNumber(r.Telephone) {
		errs = append(errs, validator.ValidationError{Field: "telephone", Message: "invalid phone number"})
	}
	if r.Photo == nil {
		errs = append(errs, validator.ValidationError{Field: "photo", Message: "reference photo is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	Matricule      string  `json:"matricule"`
	Nom            string  `json:"nom"`
	Prenom         string  `json:"prenom"`
	Telephone      *string `json:"telephone,omitempty"`
	LieuHabitation *string `json:"lieu_habitation,omitempty"`
	Departement    string  `json:"departement"`
	ImagePath      *string `json:"image_path,omitempty"`
}

type ListFilter struct {
	Departement string
}
