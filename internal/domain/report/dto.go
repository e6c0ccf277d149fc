package report

import (
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/timesheet"
)

// MonthlyAttendanceReportRequest selects the reporting month for a whole
// company.
type MonthlyAttendanceReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyAttendanceReportRequest) Validate() error {
	period := timesheet.PeriodRequest{Month: r.Month, Year: r.Year}
	return period.Validate()
}

// MonthlyAttendanceReport is one company-wide attendance rollup.
type MonthlyAttendanceReport struct {
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`

	TotalEmployees   int     `json:"total_employees"`
	TotalPresentDays int     `json:"total_present_days"`
	TotalAbsentDays  int     `json:"total_absent_days"`
	TotalLateDays    int     `json:"total_late_days"`
	TotalWorkedHours float64 `json:"total_worked_hours"`

	Rows []EmployeeAttendanceRow `json:"rows"`
}

// EmployeeAttendanceRow is one employee's line in the monthly report.
type EmployeeAttendanceRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`

	WorkingDays    int `json:"working_days"`
	PresentDays    int `json:"present_days"`
	AbsentDays     int `json:"absent_days"`
	LateDays       int `json:"late_days"`
	HalfDays       int `json:"half_days"`
	IncompleteDays int `json:"incomplete_days"`
	Leaves         int `json:"leaves"`
	Holidays       int `json:"holidays"`

	TotalWorkedHours    float64 `json:"total_worked_hours"`
	OvertimeHours       float64 `json:"overtime_hours"`
	AverageHoursPerDay  float64 `json:"average_hours_per_day"`
	WorkHoursPercentage float64 `json:"work_hours_percentage"`

	DataWarnings []string `json:"data_warnings,omitempty"`
}
