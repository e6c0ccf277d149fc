package response

import (
	"errors"
	"net/http"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/auth"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/calendar"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/report"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/timesheet"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrManagerRoleRequired):
		Forbidden(w, "Manager role required")

	// Timesheet errors
	case errors.Is(err, timesheet.ErrInvalidPeriod):
		BadRequest(w, "Invalid reporting period", nil)

	// Employee errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Shift errors
	case errors.Is(err, shift.ErrRuleNotFound):
		NotFound(w, "Shift rule not found")
	case errors.Is(err, shift.ErrNoDefaultRule):
		NotFound(w, "Company has no default shift rule")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")

	// Attendance errors
	case errors.Is(err, attendance.ErrMalformedDate):
		BadRequest(w, "Malformed attendance date", nil)

	// Calendar errors
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Report errors
	case errors.Is(err, report.ErrNoActiveEmployees):
		NotFound(w, "No active employees found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
