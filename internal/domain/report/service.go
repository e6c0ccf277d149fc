package report

import "context"

// Service produces company-wide attendance reports from per-employee
// period summaries.
type Service interface {
	// GenerateMonthlyAttendanceReport builds the report for the caller's
	// company.
	GenerateMonthlyAttendanceReport(ctx context.Context, req MonthlyAttendanceReportRequest) (MonthlyAttendanceReport, error)

	// ExportMonthlyAttendanceReport renders the same report as an XLSX
	// workbook.
	ExportMonthlyAttendanceReport(ctx context.Context, req MonthlyAttendanceReportRequest) ([]byte, string, error)
}
