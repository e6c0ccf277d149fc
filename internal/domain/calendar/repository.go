package calendar

import (
	"context"
	"time"
)

// HolidayRepository defines data access for the organization holiday calendar.
// All methods include companyID to prevent cross-company data access.
type HolidayRepository interface {
	// ListByRange retrieves holidays falling inside [from, to] inclusive.
	ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]Holiday, error)

	// Create inserts a holiday entry
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
}

// LeaveIntervalRepository exposes approved leave as date intervals. The full
// leave request lifecycle (quota, approval) lives in the leave management
// system; this service only needs the approved ranges.
type LeaveIntervalRepository interface {
	// ListApprovedByEmployee retrieves approved leave intervals overlapping
	// [from, to] for one employee.
	ListApprovedByEmployee(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]LeaveInterval, error)
}
