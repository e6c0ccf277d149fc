package shift

import (
	"context"
	"time"
)

// RuleRepository defines data access for shift rules. All methods include
// companyID to prevent cross-company data access.
type RuleRepository interface {
	// GetByID retrieves a rule by ID
	GetByID(ctx context.Context, id string, companyID string) (Rule, error)

	// GetDefault retrieves the company's default rule
	GetDefault(ctx context.Context, companyID string) (Rule, error)

	// Create inserts a rule after Validate has passed
	Create(ctx context.Context, rule Rule) (Rule, error)

	// ClearDefault unsets the company's current default rule, if any
	ClearDefault(ctx context.Context, companyID string) error
}

// AssignmentRepository defines data access for per-employee rule assignments.
type AssignmentRepository interface {
	// ListByEmployee retrieves assignments overlapping [from, to], most
	// recent start date first.
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]Assignment, error)
}
