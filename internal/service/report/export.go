package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/report"
)

const attendanceSheetName = "Attendance"

var attendanceHeaders = []string{
	"Employee Code",
	"Full Name",
	"Working Days",
	"Present",
	"Absent",
	"Late",
	"Half Days",
	"Incomplete",
	"Leaves",
	"Holidays",
	"Worked Hours",
	"Overtime Hours",
	"Avg Hours/Day",
	"Work Hours %",
	"Warnings",
}

// ExportMonthlyAttendanceReport renders the monthly report as an XLSX
// workbook and returns the file bytes plus a suggested filename.
func (s *ReportServiceImpl) ExportMonthlyAttendanceReport(ctx context.Context, req report.MonthlyAttendanceReportRequest) ([]byte, string, error) {
	rep, err := s.GenerateMonthlyAttendanceReport(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", attendanceSheetName)

	f.SetCellValue(attendanceSheetName, "A1", "Monthly Attendance Report")
	f.SetCellValue(attendanceSheetName, "A2", fmt.Sprintf("Period: %s to %s", rep.PeriodStart, rep.PeriodEnd))
	f.SetCellValue(attendanceSheetName, "A3", fmt.Sprintf("Generated: %s", rep.GeneratedAt))

	const headerRow = 5
	for i, header := range attendanceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(attendanceSheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
	})
	if err == nil {
		first, _ := excelize.CoordinatesToCellName(1, headerRow)
		last, _ := excelize.CoordinatesToCellName(len(attendanceHeaders), headerRow)
		f.SetCellStyle(attendanceSheetName, first, last, headerStyle)
	}

	for i, row := range rep.Rows {
		values := []any{
			row.EmployeeCode,
			row.FullName,
			row.WorkingDays,
			row.PresentDays,
			row.AbsentDays,
			row.LateDays,
			row.HalfDays,
			row.IncompleteDays,
			row.Leaves,
			row.Holidays,
			row.TotalWorkedHours,
			row.OvertimeHours,
			row.AverageHoursPerDay,
			row.WorkHoursPercentage,
			strings.Join(row.DataWarnings, "; "),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, headerRow+1+i)
			f.SetCellValue(attendanceSheetName, cell, value)
		}
	}

	totalsRow := headerRow + len(rep.Rows) + 2
	f.SetCellValue(attendanceSheetName, fmt.Sprintf("A%d", totalsRow), "Totals")
	f.SetCellValue(attendanceSheetName, fmt.Sprintf("D%d", totalsRow), rep.TotalPresentDays)
	f.SetCellValue(attendanceSheetName, fmt.Sprintf("E%d", totalsRow), rep.TotalAbsentDays)
	f.SetCellValue(attendanceSheetName, fmt.Sprintf("F%d", totalsRow), rep.TotalLateDays)
	f.SetCellValue(attendanceSheetName, fmt.Sprintf("K%d", totalsRow), rep.TotalWorkedHours)

	f.SetColWidth(attendanceSheetName, "A", "B", 24)
	lastCol, _ := excelize.ColumnNumberToName(len(attendanceHeaders))
	f.SetColWidth(attendanceSheetName, "C", lastCol, 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write report workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance-report-%04d-%02d.xlsx", rep.PeriodYear, rep.PeriodMonth)

	return buf.Bytes(), filename, nil
}
