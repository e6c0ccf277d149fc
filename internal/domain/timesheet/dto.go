package timesheet

import (
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

// PeriodRequest selects one reporting month.
type PeriodRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DailyStatusResponse is one resolved day for API consumers.
type DailyStatusResponse struct {
	Date             string  `json:"date"`
	Status           string  `json:"status"`
	HolidayName      *string `json:"holiday_name,omitempty"`
	IsLate           bool    `json:"is_late"`
	LateMinutes      int     `json:"late_minutes"`
	IsEarlyDeparture bool    `json:"is_early_departure"`
	EarlyExitMinutes int     `json:"early_exit_minutes"`
	OvertimeMinutes  int     `json:"overtime_minutes"`
	ClockInTime      *string `json:"clock_in_time,omitempty"`
	ClockOutTime     *string `json:"clock_out_time,omitempty"`
	WorkedMinutes    int     `json:"worked_minutes"`
	WorkMode         *string `json:"work_mode,omitempty"`
}

// DailyStatusesResponse is the per-day listing for one period.
type DailyStatusesResponse struct {
	EmployeeID  string                `json:"employee_id"`
	PeriodStart string                `json:"period_start"`
	PeriodEnd   string                `json:"period_end"`
	Days        []DailyStatusResponse `json:"days"`
}

// PeriodSummaryResponse is the aggregate for API consumers.
type PeriodSummaryResponse struct {
	EmployeeID  string `json:"employee_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	TotalDays   int `json:"total_days"`
	WorkingDays int `json:"working_days"`
	Weekends    int `json:"weekends"`
	Holidays    int `json:"holidays"`
	Leaves      int `json:"leaves"`

	PresentDays    int `json:"present_days"`
	AbsentDays     int `json:"absent_days"`
	LateDays       int `json:"late_days"`
	HalfDays       int `json:"half_days"`
	IncompleteDays int `json:"incomplete_days"`

	TotalWorkedMinutes int     `json:"total_worked_minutes"`
	TotalBreakMinutes  int     `json:"total_break_minutes"`
	OvertimeHours      float64 `json:"overtime_hours"`

	AverageHoursPerDay  float64 `json:"average_hours_per_day"`
	WorkHoursPercentage float64 `json:"work_hours_percentage"`

	DataWarnings []string `json:"data_warnings,omitempty"`
}
