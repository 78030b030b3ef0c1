package recognition

import (
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/validator"
)

// DetectRequest carries one captured frame from a kiosk client.
type DetectRequest struct {
	// Image is a base64-encoded JPEG, optionally with a data-URL prefix.
	Image    string `json:"image"`
	Platform string `json:"platform"`
}

func (r *DetectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Image) {
		errs = append(errs, validator.ValidationError{Field: "image", Message: "image is required"})
	}
	if !validator.IsValidPlatform(r.Platform) {
		errs = append(errs, validator.ValidationError{Field: "platform", Message: "platform must be ios, android or desktop"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DetectResponse mirrors the scan result contract: status is "success"
// or "error", and action "limite_atteinte" marks the informational
// already-recorded branch.
type DetectResponse struct {
	Status  string      `json:"status"`
	Action  string      `json:"action,omitempty"`
	Message string      `json:"message"`
	Data    *DetectData `json:"data,omitempty"`
}

type DetectData struct {
	Matricule   string `json:"matricule"`
	NomComplet  string `json:"nom_complet"`
	Departement string `json:"departement"`
	IsAdmin     bool   `json:"is_admin,omitempty"`
}
