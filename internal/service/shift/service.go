package shift

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/attendance-backend-go/internal/repository/postgresql"
)

type RuleServiceImpl struct {
	db       *database.DB
	ruleRepo shift.RuleRepository
}

func NewRuleService(db *database.DB, ruleRepo shift.RuleRepository) shift.RuleService {
	return &RuleServiceImpl{
		db:       db,
		ruleRepo: ruleRepo,
	}
}

// getCompanyIDFromContext extracts company_id from JWT claims
func (s *RuleServiceImpl) getCompanyIDFromContext(ctx context.Context) (string, error) {
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

// CreateRule implements shift.RuleService.
func (s *RuleServiceImpl) CreateRule(ctx context.Context, req shift.CreateRuleRequest) (shift.RuleResponse, error) {
	rule, err := req.ToRule()
	if err != nil {
		return shift.RuleResponse{}, err
	}

	if err := rule.Validate(); err != nil {
		return shift.RuleResponse{}, err
	}

	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return shift.RuleResponse{}, err
	}
	rule.CompanyID = companyID

	var created shift.Rule
	if rule.IsDefault {
		// A company has at most one default rule; demoting the old one and
		// inserting the new one must land together.
		err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)
			if err := s.ruleRepo.ClearDefault(txCtx, companyID); err != nil {
				return err
			}
			created, err = s.ruleRepo.Create(txCtx, rule)
			return err
		})
	} else {
		created, err = s.ruleRepo.Create(ctx, rule)
	}
	if err != nil {
		return shift.RuleResponse{}, fmt.Errorf("failed to create shift rule: %w", err)
	}

	return created.ToResponse(), nil
}

// GetRule implements shift.RuleService.
func (s *RuleServiceImpl) GetRule(ctx context.Context, id string) (shift.RuleResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return shift.RuleResponse{}, err
	}

	rule, err := s.ruleRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return shift.RuleResponse{}, err
	}

	return rule.ToResponse(), nil
}

// GetDefaultRule implements shift.RuleService.
func (s *RuleServiceImpl) GetDefaultRule(ctx context.Context) (shift.RuleResponse, error) {
	companyID, err := s.getCompanyIDFromContext(ctx)
	if err != nil {
		return shift.RuleResponse{}, err
	}

	rule, err := s.ruleRepo.GetDefault(ctx, companyID)
	if err != nil {
		return shift.RuleResponse{}, err
	}

	return rule.ToResponse(), nil
}
