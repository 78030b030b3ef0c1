package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/employee"
	"github.com/liggey-sinaa/attendance-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	Add(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// Add implements EmployeeHandler. The form carries the roster fields
// plus the reference photo used for face enrollment.
func (h *employeeHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := employee.AddEmployeeRequest{
		Matricule:      r.FormValue("matricule"),
		Nom:            r.FormValue("nom"),
		Prenom:         r.FormValue("prenom"),
		Telephone:      r.FormValue("telephone"),
		LieuHabitation: r.FormValue("lieu_habitation"),
		Departement:    r.FormValue("departement"),
	}

	photo, header, err := r.FormFile("photo")
	if err == nil {
		defer photo.Close()
		req.Photo = photo
		req.PhotoHeader = header
	}

	resp, err := h.employeeService.AddEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee registered", resp)
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.ListFilter{
		Departement: r.URL.Query().Get("departement"),
	}

	employees, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	matricule := chi.URLParam(r, "matricule")

	if err := h.employeeService.DeleteEmployee(r.Context(), matricule); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}
