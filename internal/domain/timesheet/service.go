package timesheet

import (
	"context"
)

// Service defines the timesheet reconciliation operations exposed to the
// HTTP layer, reporting and background jobs.
type Service interface {
	// GetMyDailyStatuses resolves every day of the period for the
	// authenticated employee.
	GetMyDailyStatuses(ctx context.Context, req PeriodRequest) (DailyStatusesResponse, error)

	// GetMyPeriodSummary aggregates the period for the authenticated employee.
	GetMyPeriodSummary(ctx context.Context, req PeriodRequest) (PeriodSummaryResponse, error)

	// GetEmployeePeriodSummary aggregates the period for any employee
	// (admin/manager).
	GetEmployeePeriodSummary(ctx context.Context, employeeID string, req PeriodRequest) (PeriodSummaryResponse, error)

	// BuildEmployeePeriodSummary is the claim-free entry point used by
	// reporting and scheduled jobs.
	BuildEmployeePeriodSummary(ctx context.Context, employeeID string, companyID string, req PeriodRequest) (PeriodSummary, error)
}
