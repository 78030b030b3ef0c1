package http

import (
	"net/http"

	"github.com/liggey-sinaa/attendance-backend-go/internal/domain/report"
	"github.com/liggey-sinaa/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Advanced(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Advanced implements ReportHandler. On holidays the summary is
// replaced by the holiday sentinel so the dashboard shows the
// description instead of absence counts.
func (h *reportHandlerImpl) Advanced(w http.ResponseWriter, r *http.Request) {
	date, err := queryDate(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.reportService.GetAdvancedReports(r.Context(), date, r.URL.Query().Get("departement"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if summary.Holiday {
		response.Success(w, report.HolidaySummary{
			Status:  "holiday",
			Message: summary.HolidayMessage,
		})
		return
	}
	response.Success(w, summary)
}
