package shift

import (
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

const timeOfDayLayout = "15:04"

// CreateRuleRequest declares a new shift rule. Times are "HH:MM" in the
// company's canonical timezone.
type CreateRuleRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	FullDayHours float64 `json:"full_day_hours"`
	HalfDayHours float64 `json:"half_day_hours"`

	GracePeriodMinutes             int `json:"grace_period_minutes"`
	LateThresholdMinutes           int `json:"late_threshold_minutes"`
	EarlyDepartureThresholdMinutes int `json:"early_departure_threshold_minutes"`

	OvertimeEnabled          bool `json:"overtime_enabled"`
	OvertimeThresholdMinutes int  `json:"overtime_threshold_minutes"`

	DefaultBreakMinutes int `json:"default_break_minutes"`
	MaxBreakMinutes     int `json:"max_break_minutes"`

	WeeklyOffDays []int `json:"weekly_off_days"`
	IsDefault     bool  `json:"is_default"`
}

// ToRule converts the request into a Rule. Rule.Validate covers the numeric
// bounds; only the time strings are checked here.
func (r *CreateRuleRequest) ToRule() (Rule, error) {
	var errs validator.ValidationErrors

	start, err := time.Parse(timeOfDayLayout, r.StartTime)
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	end, err := time.Parse(timeOfDayLayout, r.EndTime)
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return Rule{}, errs
	}

	return Rule{
		Name:                           r.Name,
		StartTime:                      start,
		EndTime:                        end,
		FullDayHours:                   r.FullDayHours,
		HalfDayHours:                   r.HalfDayHours,
		GracePeriodMinutes:             r.GracePeriodMinutes,
		LateThresholdMinutes:           r.LateThresholdMinutes,
		EarlyDepartureThresholdMinutes: r.EarlyDepartureThresholdMinutes,
		OvertimeEnabled:                r.OvertimeEnabled,
		OvertimeThresholdMinutes:       r.OvertimeThresholdMinutes,
		DefaultBreakMinutes:            r.DefaultBreakMinutes,
		MaxBreakMinutes:                r.MaxBreakMinutes,
		WeeklyOffDays:                  r.WeeklyOffDays,
		IsDefault:                      r.IsDefault,
	}, nil
}

// RuleResponse is one shift rule for API consumers.
type RuleResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	FullDayHours float64 `json:"full_day_hours"`
	HalfDayHours float64 `json:"half_day_hours"`

	GracePeriodMinutes             int `json:"grace_period_minutes"`
	LateThresholdMinutes           int `json:"late_threshold_minutes"`
	EarlyDepartureThresholdMinutes int `json:"early_departure_threshold_minutes"`

	OvertimeEnabled          bool `json:"overtime_enabled"`
	OvertimeThresholdMinutes int  `json:"overtime_threshold_minutes"`

	DefaultBreakMinutes int `json:"default_break_minutes"`
	MaxBreakMinutes     int `json:"max_break_minutes"`

	WeeklyOffDays []int `json:"weekly_off_days"`
	IsDefault     bool  `json:"is_default"`
	IsOvernight   bool  `json:"is_overnight"`
}

// ToResponse maps a Rule to its API shape.
func (r Rule) ToResponse() RuleResponse {
	return RuleResponse{
		ID:                             r.ID,
		Name:                           r.Name,
		StartTime:                      r.StartTime.Format(timeOfDayLayout),
		EndTime:                        r.EndTime.Format(timeOfDayLayout),
		FullDayHours:                   r.FullDayHours,
		HalfDayHours:                   r.HalfDayHours,
		GracePeriodMinutes:             r.GracePeriodMinutes,
		LateThresholdMinutes:           r.LateThresholdMinutes,
		EarlyDepartureThresholdMinutes: r.EarlyDepartureThresholdMinutes,
		OvertimeEnabled:                r.OvertimeEnabled,
		OvertimeThresholdMinutes:       r.OvertimeThresholdMinutes,
		DefaultBreakMinutes:            r.DefaultBreakMinutes,
		MaxBreakMinutes:                r.MaxBreakMinutes,
		WeeklyOffDays:                  r.WeeklyOffDays,
		IsDefault:                      r.IsDefault,
		IsOvernight:                    r.IsOvernight(),
	}
}
