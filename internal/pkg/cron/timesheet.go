package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/timesheet"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

// TimesheetJobs runs the nightly data quality audit: month-to-date summaries
// for every active employee, surfacing the warnings aggregation collected.
type TimesheetJobs struct {
	timesheetService timesheet.Service
	employeeRepo     employee.Repository
	db               *database.DB
}

func NewTimesheetJobs(
	timesheetService timesheet.Service,
	employeeRepo employee.Repository,
	db *database.DB,
) *TimesheetJobs {
	return &TimesheetJobs{
		timesheetService: timesheetService,
		employeeRepo:     employeeRepo,
		db:               db,
	}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("audit_attendance_data", interval, j.AuditAttendanceData)
}

// AuditAttendanceData rebuilds month-to-date summaries for every active
// employee and logs each data warning. Summaries are recomputed from source
// records, so running the audit twice changes nothing.
func (j *TimesheetJobs) AuditAttendanceData(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting attendance data audit")

	companyIDs, err := j.listCompanyIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	now := time.Now().UTC()
	period := timesheet.PeriodRequest{Month: int(now.Month()), Year: now.Year()}

	audited := 0
	flagged := 0
	for _, companyID := range companyIDs {
		employees, err := j.employeeRepo.GetActiveByCompanyID(ctx, companyID)
		if err != nil {
			slog.Error("Cron: Failed to list employees for audit", "company_id", companyID, "error", err)
			continue
		}

		for _, emp := range employees {
			summary, err := j.timesheetService.BuildEmployeePeriodSummary(ctx, emp.ID, companyID, period)
			if err != nil {
				slog.Error("Cron: Failed to build audit summary",
					"company_id", companyID, "employee_id", emp.ID, "error", err)
				continue
			}
			audited++

			if len(summary.DataWarnings) == 0 {
				continue
			}
			flagged++
			for _, warning := range summary.DataWarnings {
				slog.Warn("Cron: Attendance data warning",
					"company_id", companyID,
					"employee_id", emp.ID,
					"employee_code", emp.EmployeeCode,
					"warning", warning)
			}
		}
	}

	slog.Info("Cron: Attendance data audit completed",
		"companies", len(companyIDs), "audited", audited, "flagged", flagged)

	return nil
}

func (j *TimesheetJobs) listCompanyIDs(ctx context.Context) ([]string, error) {
	rows, err := j.db.Query(ctx, `
		SELECT DISTINCT company_id
		FROM employees
		WHERE employment_status = 'active'
		  AND deleted_at IS NULL
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
