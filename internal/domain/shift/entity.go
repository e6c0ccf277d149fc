package shift

import (
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

// Rule is one shift configuration: the daily timing boundaries plus the
// thresholds the status resolver applies to punches on that shift.
type Rule struct {
	ID        string
	CompanyID string
	Name      string

	// StartTime and EndTime carry a time-of-day only; the date part is
	// ignored. A shift whose EndTime is at or before its StartTime ends on
	// the next calendar day.
	StartTime time.Time
	EndTime   time.Time

	FullDayHours float64
	HalfDayHours float64

	GracePeriodMinutes             int
	LateThresholdMinutes           int
	EarlyDepartureThresholdMinutes int

	OvertimeEnabled          bool
	OvertimeThresholdMinutes int

	DefaultBreakMinutes int
	MaxBreakMinutes     int

	// WeeklyOffDays holds weekday indices, 0=Sunday through 6=Saturday.
	WeeklyOffDays []int

	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Assignment binds an employee to a specific rule for a date range. An open
// ended assignment has a nil EndDate.
type Assignment struct {
	ID         string
	EmployeeID string
	RuleID     string
	StartDate  time.Time
	EndDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOvernight reports whether the shift crosses midnight.
func (r Rule) IsOvernight() bool {
	return minuteOfDay(r.EndTime) <= minuteOfDay(r.StartTime)
}

// DurationMinutes is the scheduled shift length, overnight aware.
func (r Rule) DurationMinutes() int {
	d := minuteOfDay(r.EndTime) - minuteOfDay(r.StartTime)
	if d <= 0 {
		d += 24 * 60
	}
	return d
}

// StartOn anchors the shift start on the given calendar date.
func (r Rule) StartOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		r.StartTime.Hour(), r.StartTime.Minute(), 0, 0, date.Location())
}

// EndOn anchors the shift end relative to the given calendar date, rolling to
// the next day for overnight shifts.
func (r Rule) EndOn(date time.Time) time.Time {
	end := time.Date(date.Year(), date.Month(), date.Day(),
		r.EndTime.Hour(), r.EndTime.Minute(), 0, 0, date.Location())
	if r.IsOvernight() {
		end = end.AddDate(0, 0, 1)
	}
	return end
}

// IsWeeklyOff reports whether the weekday belongs to the rule's off-day set.
func (r Rule) IsWeeklyOff(weekday time.Weekday) bool {
	for _, off := range r.WeeklyOffDays {
		if off == int(weekday) {
			return true
		}
	}
	return false
}

// Covers reports whether the assignment is active on the given date.
func (a Assignment) Covers(date time.Time) bool {
	d := dateOnly(date)
	if d.Before(dateOnly(a.StartDate)) {
		return false
	}
	if a.EndDate != nil && d.After(dateOnly(*a.EndDate)) {
		return false
	}
	return true
}

// Validate rejects invalid shift configuration. Runs when rules are loaded or
// saved; the resolver itself never re-checks these bounds.
func (r *Rule) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.FullDayHours <= 0 || r.FullDayHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_day_hours",
			Message: "full_day_hours must be between 0 and 24",
		})
	}

	if r.HalfDayHours <= 0 || r.HalfDayHours > r.FullDayHours {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_hours",
			Message: "half_day_hours must be positive and not exceed full_day_hours",
		})
	}

	if r.GracePeriodMinutes < 0 || r.GracePeriodMinutes > 120 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must be between 0 and 120",
		})
	}

	if r.LateThresholdMinutes <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_threshold_minutes",
			Message: "late_threshold_minutes must be positive",
		})
	}

	if r.EarlyDepartureThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "early_departure_threshold_minutes",
			Message: "early_departure_threshold_minutes must not be negative",
		})
	}

	if r.OvertimeEnabled && r.OvertimeThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_threshold_minutes",
			Message: "overtime_threshold_minutes must not be negative",
		})
	}

	if r.MaxBreakMinutes < r.DefaultBreakMinutes {
		errs = append(errs, validator.ValidationError{
			Field:   "max_break_minutes",
			Message: "max_break_minutes must not be less than default_break_minutes",
		})
	}

	for _, off := range r.WeeklyOffDays {
		if off < 0 || off > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "weekly_off_days",
				Message: "weekly_off_days must contain weekday indices 0-6",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
