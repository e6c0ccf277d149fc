package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
)

type RuleResolverImpl struct {
	ruleRepo       shift.RuleRepository
	assignmentRepo shift.AssignmentRepository
}

// NewRuleResolver creates a shift.Resolver backed by the rule and
// assignment repositories.
func NewRuleResolver(
	ruleRepo shift.RuleRepository,
	assignmentRepo shift.AssignmentRepository,
) shift.Resolver {
	return &RuleResolverImpl{
		ruleRepo:       ruleRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Resolve returns the rule in force for the employee on the given date. An
// explicit assignment covering the date wins; with none, the company default
// applies. Assignments whose rule has been deleted fall through to the
// default rather than failing the lookup.
func (r *RuleResolverImpl) Resolve(ctx context.Context, employeeID string, date time.Time, companyID string) (shift.Rule, error) {
	assignments, err := r.assignmentRepo.ListByEmployee(ctx, employeeID, date, date, companyID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return shift.Rule{}, fmt.Errorf("failed to list shift assignments: %w", err)
	}

	for _, assignment := range assignments {
		if !assignment.Covers(date) {
			continue
		}
		rule, err := r.ruleRepo.GetByID(ctx, assignment.RuleID, companyID)
		if err == nil {
			return rule, nil
		}
		if !errors.Is(err, shift.ErrRuleNotFound) && !errors.Is(err, pgx.ErrNoRows) {
			return shift.Rule{}, fmt.Errorf("failed to get assigned shift rule: %w", err)
		}
	}

	rule, err := r.ruleRepo.GetDefault(ctx, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, shift.ErrRuleNotFound) {
			return shift.Rule{}, shift.ErrNoDefaultRule
		}
		return shift.Rule{}, fmt.Errorf("failed to get default shift rule: %w", err)
	}

	return rule, nil
}
