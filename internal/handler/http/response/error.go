package response

import (
	"errors"
	"net/http"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/attendance"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/auth"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/employee"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/holiday"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/leave"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/recognition"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/report"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrMatriculeExists):
		Conflict(w, "Matricule already registered")
	case errors.Is(err, employee.ErrInvalidPhotoType):
		BadRequest(w, "Reference photo must be a JPEG or PNG image", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidDate), errors.Is(err, report.ErrInvalidDate):
		BadRequest(w, "Date must be YYYY-MM-DD", nil)
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, "Month must be YYYY-MM", nil)

	// Holiday and leave domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, leave.ErrRecordNotFound):
		NotFound(w, "Leave record not found")

	// Recognition domain errors
	case errors.Is(err, recognition.ErrNoFaceMatch):
		BadRequest(w, "Aucun visage reconnu", nil)
	case errors.Is(err, recognition.ErrInvalidImage):
		BadRequest(w, "Image invalide", nil)
	case errors.Is(err, recognition.ErrFaceServiceUnavailable):
		ServiceUnavailable(w, "Service de reconnaissance indisponible")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
