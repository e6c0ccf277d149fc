package shift

import (
	"context"
	"time"
)

// Resolver returns the shift rule applicable to an employee on a date: the
// employee's explicit assignment when one covers the date, otherwise the
// company default. Pure lookup, no side effects.
type Resolver interface {
	Resolve(ctx context.Context, employeeID string, date time.Time, companyID string) (Rule, error)
}

// RuleService manages shift rule configuration for the caller's company.
type RuleService interface {
	// CreateRule validates and stores a new rule.
	CreateRule(ctx context.Context, req CreateRuleRequest) (RuleResponse, error)

	// GetRule retrieves one rule by ID, or ErrRuleNotFound.
	GetRule(ctx context.Context, id string) (RuleResponse, error)

	// GetDefaultRule retrieves the company default, or ErrNoDefaultRule.
	GetDefaultRule(ctx context.Context) (RuleResponse, error)
}
