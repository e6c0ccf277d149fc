package http

import (
	"encoding/json"
	"net/http"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/calendar"
	"github.com/workpulse-hr/attendance-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	calendarService calendar.Service
}

func NewCalendarHandler(calendarService calendar.Service) CalendarHandler {
	return &calendarHandlerImpl{
		calendarService: calendarService,
	}
}

// CreateHoliday implements CalendarHandler.
func (h *calendarHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req calendar.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.calendarService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", created)
}

// ListHolidays implements CalendarHandler.
func (h *calendarHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	holidays, err := h.calendarService.ListHolidays(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}
