package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/timesheet"
	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	GetMyDailyStatuses(w http.ResponseWriter, r *http.Request)
	GetMyPeriodSummary(w http.ResponseWriter, r *http.Request)
	GetEmployeePeriodSummary(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// periodFromQuery reads the month and year query parameters. Missing or
// non-numeric values become zero and fail request validation downstream.
func periodFromQuery(r *http.Request) timesheet.PeriodRequest {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	return timesheet.PeriodRequest{Month: month, Year: year}
}

// GetMyDailyStatuses implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetMyDailyStatuses(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.GetMyDailyStatuses(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyPeriodSummary implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetMyPeriodSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.GetMyPeriodSummary(r.Context(), periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployeePeriodSummary implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetEmployeePeriodSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.timesheetService.GetEmployeePeriodSummary(r.Context(), employeeID, periodFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
