package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/report"
	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyAttendance(w http.ResponseWriter, r *http.Request)
	ExportMonthlyAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func reportRequestFromQuery(r *http.Request) report.MonthlyAttendanceReportRequest {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	return report.MonthlyAttendanceReportRequest{Month: month, Year: year}
}

// MonthlyAttendance implements ReportHandler.
func (h *reportHandlerImpl) MonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GenerateMonthlyAttendanceReport(r.Context(), reportRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportMonthlyAttendance implements ReportHandler. Streams the report as an
// XLSX download.
func (h *reportHandlerImpl) ExportMonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.reportService.ExportMonthlyAttendanceReport(r.Context(), reportRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
