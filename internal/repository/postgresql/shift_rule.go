package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

type shiftRuleRepository struct {
	db *database.DB
}

func NewShiftRuleRepository(db *database.DB) shift.RuleRepository {
	return &shiftRuleRepository{db: db}
}

const shiftRuleColumns = `
	id, company_id, name, start_time, end_time,
	full_day_hours, half_day_hours,
	grace_period_minutes, late_threshold_minutes, early_departure_threshold_minutes,
	overtime_enabled, overtime_threshold_minutes,
	default_break_minutes, max_break_minutes,
	weekly_off_days, is_default,
	created_at, updated_at, deleted_at
`

// GetByID implements shift.RuleRepository.
func (s *shiftRuleRepository) GetByID(ctx context.Context, id string, companyID string) (shift.Rule, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + shiftRuleColumns + `
		FROM shift_rules
		WHERE id = $1
		  AND company_id = $2
		  AND deleted_at IS NULL
	`

	rule, err := scanShiftRule(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Rule{}, shift.ErrRuleNotFound
		}
		return shift.Rule{}, fmt.Errorf("failed to get shift rule: %w", err)
	}

	return rule, nil
}

// GetDefault implements shift.RuleRepository.
func (s *shiftRuleRepository) GetDefault(ctx context.Context, companyID string) (shift.Rule, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + shiftRuleColumns + `
		FROM shift_rules
		WHERE company_id = $1
		  AND is_default = true
		  AND deleted_at IS NULL
		ORDER BY created_at ASC
		LIMIT 1
	`

	rule, err := scanShiftRule(q.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Rule{}, shift.ErrNoDefaultRule
		}
		return shift.Rule{}, fmt.Errorf("failed to get default shift rule: %w", err)
	}

	return rule, nil
}

// Create implements shift.RuleRepository.
func (s *shiftRuleRepository) Create(ctx context.Context, rule shift.Rule) (shift.Rule, error) {
	q := GetQuerier(ctx, s.db)

	if err := rule.Validate(); err != nil {
		return shift.Rule{}, err
	}

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}

	offDays := make([]int32, 0, len(rule.WeeklyOffDays))
	for _, day := range rule.WeeklyOffDays {
		offDays = append(offDays, int32(day))
	}

	query := `
		INSERT INTO shift_rules (
			id, company_id, name, start_time, end_time,
			full_day_hours, half_day_hours,
			grace_period_minutes, late_threshold_minutes, early_departure_threshold_minutes,
			overtime_enabled, overtime_threshold_minutes,
			default_break_minutes, max_break_minutes,
			weekly_off_days, is_default
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rule.ID, rule.CompanyID, rule.Name, rule.StartTime, rule.EndTime,
		rule.FullDayHours, rule.HalfDayHours,
		rule.GracePeriodMinutes, rule.LateThresholdMinutes, rule.EarlyDepartureThresholdMinutes,
		rule.OvertimeEnabled, rule.OvertimeThresholdMinutes,
		rule.DefaultBreakMinutes, rule.MaxBreakMinutes,
		offDays, rule.IsDefault,
	).Scan(&rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return shift.Rule{}, fmt.Errorf("failed to create shift rule: %w", err)
	}

	return rule, nil
}

// ClearDefault implements shift.RuleRepository.
func (s *shiftRuleRepository) ClearDefault(ctx context.Context, companyID string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE shift_rules
		SET is_default = false, updated_at = NOW()
		WHERE company_id = $1
		  AND is_default = true
		  AND deleted_at IS NULL
	`

	if _, err := q.Exec(ctx, query, companyID); err != nil {
		return fmt.Errorf("failed to clear default shift rule: %w", err)
	}

	return nil
}

func scanShiftRule(row pgx.Row) (shift.Rule, error) {
	var rule shift.Rule
	var offDays []int32

	err := row.Scan(
		&rule.ID, &rule.CompanyID, &rule.Name, &rule.StartTime, &rule.EndTime,
		&rule.FullDayHours, &rule.HalfDayHours,
		&rule.GracePeriodMinutes, &rule.LateThresholdMinutes, &rule.EarlyDepartureThresholdMinutes,
		&rule.OvertimeEnabled, &rule.OvertimeThresholdMinutes,
		&rule.DefaultBreakMinutes, &rule.MaxBreakMinutes,
		&offDays, &rule.IsDefault,
		&rule.CreatedAt, &rule.UpdatedAt, &rule.DeletedAt,
	)
	if err != nil {
		return shift.Rule{}, err
	}

	rule.WeeklyOffDays = make([]int, 0, len(offDays))
	for _, day := range offDays {
		rule.WeeklyOffDays = append(rule.WeeklyOffDays, int(day))
	}

	return rule, nil
}
