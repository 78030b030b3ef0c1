package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/attendance"
	"github.com/liggey-sinaa/attendance-backend-go/internal/handler/http/response"
	"github.com/liggey-sinaa/attendance-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ListDaily(w http.ResponseWriter, r *http.Request)
	Tracking(w http.ResponseWriter, r *http.Request)
	Present(w http.ResponseWriter, r *http.Request)
	Absent(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// queryDate reads a "date" query parameter, defaulting to today.
func queryDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, ok := validator.IsValidDate(raw)
	if !ok {
		return time.Time{}, attendance.ErrInvalidDate
	}
	return date, nil
}

// ListDaily implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListDaily(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.attendanceService.GetDailyAttendance(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Tracking implements AttendanceHandler.
func (h *attendanceHandlerImpl) Tracking(w http.ResponseWriter, r *http.Request) {
	filter := attendance.TrackingFilter{
		Matricule:   r.URL.Query().Get("matricule"),
		Departement: r.URL.Query().Get("departement"),
		Month:       r.URL.Query().Get("month"),
	}
	if filter.Month == "" {
		filter.Month = time.Now().Format("2006-01")
	}

	rows, err := h.attendanceService.GetEmployeeTracking(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Present implements AttendanceHandler.
func (h *attendanceHandlerImpl) Present(w http.ResponseWriter, r *http.Request) {
	present, err := h.attendanceService.GetPresentEmployees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, present)
}

// Absent implements AttendanceHandler.
func (h *attendanceHandlerImpl) Absent(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetAbsentEmployees(r.Context(), date, r.URL.Query().Get("departement"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Holiday {
		response.SuccessWithMessage(w, "Jour férié: "+result.HolidayMessage, []any{})
		return
	}
	response.Success(w, result.Employees)
}

// Stats implements AttendanceHandler.
func (h *attendanceHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	matricule := chi.URLParam(r, "matricule")

	from := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		date, ok := validator.IsValidDate(raw)
		if !ok {
			response.HandleError(w, attendance.ErrInvalidDate)
			return
		}
		from = date
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		date, ok := validator.IsValidDate(raw)
		if !ok {
			response.HandleError(w, attendance.ErrInvalidDate)
			return
		}
		to = date
	}

	stats, err := h.attendanceService.GetEmployeeStats(r.Context(), matricule, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
