package report

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/report"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/timesheet"
)

type ReportServiceImpl struct {
	timesheetService timesheet.Service
	employeeRepo     employee.Repository
}

func NewReportService(
	timesheetService timesheet.Service,
	employeeRepo employee.Repository,
) report.Service {
	return &ReportServiceImpl{
		timesheetService: timesheetService,
		employeeRepo:     employeeRepo,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *ReportServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// GenerateMonthlyAttendanceReport aggregates every active employee's period
// summary into one company report.
func (s *ReportServiceImpl) GenerateMonthlyAttendanceReport(ctx context.Context, req report.MonthlyAttendanceReportRequest) (report.MonthlyAttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	return s.buildMonthlyAttendanceReport(ctx, companyID, req)
}

// buildMonthlyAttendanceReport is the claim-free worker shared with the
// scheduled audit job.
func (s *ReportServiceImpl) buildMonthlyAttendanceReport(ctx context.Context, companyID string, req report.MonthlyAttendanceReportRequest) (report.MonthlyAttendanceReport, error) {
	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return report.MonthlyAttendanceReport{}, fmt.Errorf("failed to get active employees: %w", err)
	}
	if len(employees) == 0 {
		return report.MonthlyAttendanceReport{}, report.ErrNoActiveEmployees
	}

	period := timesheet.PeriodRequest{Month: req.Month, Year: req.Year}
	result := report.MonthlyAttendanceReport{
		PeriodMonth:    req.Month,
		PeriodYear:     req.Year,
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		TotalEmployees: len(employees),
		Rows:           make([]report.EmployeeAttendanceRow, 0, len(employees)),
	}

	totalWorked := decimal.Zero
	for _, emp := range employees {
		summary, err := s.timesheetService.BuildEmployeePeriodSummary(ctx, emp.ID, companyID, period)
		if err != nil {
			return report.MonthlyAttendanceReport{}, fmt.Errorf("failed to build summary for employee %s: %w", emp.ID, err)
		}

		if result.PeriodStart == "" {
			result.PeriodStart = summary.PeriodStart.Format("2006-01-02")
			result.PeriodEnd = summary.PeriodEnd.Format("2006-01-02")
		}

		workedHours := minutesToHours(summary.TotalWorkedMinutes)
		totalWorked = totalWorked.Add(decimal.NewFromFloat(workedHours))

		result.TotalPresentDays += summary.PresentDays
		result.TotalAbsentDays += summary.AbsentDays
		result.TotalLateDays += summary.LateDays

		result.Rows = append(result.Rows, report.EmployeeAttendanceRow{
			EmployeeID:          emp.ID,
			EmployeeCode:        emp.EmployeeCode,
			FullName:            emp.FullName,
			WorkingDays:         summary.WorkingDays,
			PresentDays:         summary.PresentDays,
			AbsentDays:          summary.AbsentDays,
			LateDays:            summary.LateDays,
			HalfDays:            summary.HalfDays,
			IncompleteDays:      summary.IncompleteDays,
			Leaves:              summary.Leaves,
			Holidays:            summary.Holidays,
			TotalWorkedHours:    workedHours,
			OvertimeHours:       summary.OvertimeHours,
			AverageHoursPerDay:  summary.AverageHoursPerDay,
			WorkHoursPercentage: summary.WorkHoursPercentage,
			DataWarnings:        summary.DataWarnings,
		})
	}

	result.TotalWorkedHours = totalWorked.Round(2).InexactFloat64()

	return result, nil
}

func minutesToHours(minutes int) float64 {
	if minutes == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(minutes)).
		Div(decimal.NewFromInt(60)).
		Round(2).InexactFloat64()
}
