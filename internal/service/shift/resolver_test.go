package shift

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
)

type fakeRuleRepo struct {
	rules              map[string]shift.Rule
	defaultRule        *shift.Rule
	err                error
	created            []shift.Rule
	clearDefaultCalled bool
}

func (f *fakeRuleRepo) GetByID(_ context.Context, id string, _ string) (shift.Rule, error) {
	if f.err != nil {
		return shift.Rule{}, f.err
	}
	rule, ok := f.rules[id]
	if !ok {
		return shift.Rule{}, shift.ErrRuleNotFound
	}
	return rule, nil
}

func (f *fakeRuleRepo) GetDefault(_ context.Context, _ string) (shift.Rule, error) {
	if f.defaultRule == nil {
		return shift.Rule{}, shift.ErrRuleNotFound
	}
	return *f.defaultRule, nil
}

func (f *fakeRuleRepo) Create(_ context.Context, rule shift.Rule) (shift.Rule, error) {
	if rule.ID == "" {
		rule.ID = "rule-created"
	}
	f.created = append(f.created, rule)
	return rule, nil
}

func (f *fakeRuleRepo) ClearDefault(_ context.Context, _ string) error {
	f.clearDefaultCalled = true
	return nil
}

type fakeAssignmentRepo struct {
	assignments []shift.Assignment
	err         error
}

func (f *fakeAssignmentRepo) ListByEmployee(_ context.Context, _ string, _, _ time.Time, _ string) ([]shift.Assignment, error) {
	return f.assignments, f.err
}

func datePtr(t time.Time) *time.Time { return &t }

func TestRuleResolver_ExplicitAssignmentWins(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	night := shift.Rule{ID: "rule-night", Name: "Night"}
	regular := shift.Rule{ID: "rule-regular", Name: "Regular", IsDefault: true}

	resolver := NewRuleResolver(
		&fakeRuleRepo{rules: map[string]shift.Rule{"rule-night": night}, defaultRule: &regular},
		&fakeAssignmentRepo{assignments: []shift.Assignment{
			{RuleID: "rule-night", StartDate: date.AddDate(0, 0, -5)},
		}},
	)

	rule, err := resolver.Resolve(context.Background(), "emp-1", date, "comp-1")

	require.NoError(t, err)
	assert.Equal(t, "Night", rule.Name)
}

func TestRuleResolver_ExpiredAssignmentFallsBackToDefault(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	regular := shift.Rule{ID: "rule-regular", Name: "Regular", IsDefault: true}

	resolver := NewRuleResolver(
		&fakeRuleRepo{defaultRule: &regular},
		&fakeAssignmentRepo{assignments: []shift.Assignment{
			{
				RuleID:    "rule-night",
				StartDate: date.AddDate(0, -2, 0),
				EndDate:   datePtr(date.AddDate(0, -1, 0)),
			},
		}},
	)

	rule, err := resolver.Resolve(context.Background(), "emp-1", date, "comp-1")

	require.NoError(t, err)
	assert.Equal(t, "Regular", rule.Name)
}

func TestRuleResolver_DeletedAssignedRuleFallsBackToDefault(t *testing.T) {
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	regular := shift.Rule{ID: "rule-regular", Name: "Regular", IsDefault: true}

	resolver := NewRuleResolver(
		&fakeRuleRepo{defaultRule: &regular},
		&fakeAssignmentRepo{assignments: []shift.Assignment{
			{RuleID: "rule-gone", StartDate: date.AddDate(0, 0, -1)},
		}},
	)

	rule, err := resolver.Resolve(context.Background(), "emp-1", date, "comp-1")

	require.NoError(t, err)
	assert.Equal(t, "Regular", rule.Name)
}

func TestRuleResolver_NoDefaultRule(t *testing.T) {
	resolver := NewRuleResolver(&fakeRuleRepo{}, &fakeAssignmentRepo{})

	_, err := resolver.Resolve(context.Background(), "emp-1", time.Now(), "comp-1")

	assert.ErrorIs(t, err, shift.ErrNoDefaultRule)
}

func TestRuleResolver_AssignmentRepoError(t *testing.T) {
	repoErr := errors.New("connection reset")
	resolver := NewRuleResolver(&fakeRuleRepo{}, &fakeAssignmentRepo{err: repoErr})

	_, err := resolver.Resolve(context.Background(), "emp-1", time.Now(), "comp-1")

	assert.ErrorIs(t, err, repoErr)
}
