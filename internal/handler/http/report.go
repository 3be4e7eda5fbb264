package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tracklite/attendance-backend-go/internal/domain/report"
	"github.com/tracklite/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetMyReport(w http.ResponseWriter, r *http.Request)
	GetEmployeeReport(w http.ResponseWriter, r *http.Request)
	ListDepartmentReports(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetMyReport implements ReportHandler.
func (h *reportHandlerImpl) GetMyReport(w http.ResponseWriter, r *http.Request) {
	from, to := reportRange(r)

	resp, err := h.reportService.GetMyReport(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetEmployeeReport implements ReportHandler.
func (h *reportHandlerImpl) GetEmployeeReport(w http.ResponseWriter, r *http.Request) {
	from, to := reportRange(r)
	employeeID := chi.URLParam(r, "employeeID")

	resp, err := h.reportService.GetEmployeeReport(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListDepartmentReports implements ReportHandler.
func (h *reportHandlerImpl) ListDepartmentReports(w http.ResponseWriter, r *http.Request) {
	from, to := reportRange(r)
	department := chi.URLParam(r, "department")

	resp, err := h.reportService.ListDepartmentReports(r.Context(), department, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// reportRange reads from/to query params, defaulting to the current
// calendar month.
func reportRange(r *http.Request) (string, string) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from != "" && to != "" {
		return from, to
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	return monthStart.Format("2006-01-02"), monthEnd.Format("2006-01-02")
}
