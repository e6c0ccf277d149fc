package timesheet

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/calendar"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/timesheet"
)

// Providers supplies the per-date inputs AggregatePeriod needs. Provider
// calls must be pure over the period: the aggregator may invoke them in any
// order and expects identical answers for identical dates.
type Providers struct {
	CalendarDay func(date time.Time) calendar.Day
	Attendance  func(date time.Time) *attendance.Record
	ShiftRule   func(date time.Time) shift.Rule
}

const minutesPerPresentDayCap = 24 * 60

// AggregatePeriod resolves every date in the period and rolls the results
// into a PeriodSummary. Future dates are skipped entirely. Consistency
// violations are recorded as warnings, never returned as errors: the calling
// layer decides whether to alert administrators.
func AggregatePeriod(dates []time.Time, providers Providers, today time.Time) timesheet.PeriodSummary {
	summary := timesheet.PeriodSummary{TotalDays: len(dates)}
	if len(dates) > 0 {
		summary.PeriodStart = calendar.Truncate(dates[0])
		summary.PeriodEnd = calendar.Truncate(dates[len(dates)-1])
	}

	overtimeMinutes := 0
	expectedWorkMinutes := 0

	for _, date := range dates {
		day := providers.CalendarDay(date)
		rule := providers.ShiftRule(date)
		resolved := ResolveDayStatus(day, providers.Attendance(date), rule, today)

		if resolved.Status == timesheet.StatusFuture {
			continue
		}

		// Working days count from the classification alone, whatever the
		// punch data resolved to.
		if day.Classification == calendar.ClassificationWorkingDay {
			summary.WorkingDays++
			expectedWorkMinutes += int(rule.FullDayHours * 60)
		}

		switch resolved.Status {
		case timesheet.StatusHoliday:
			summary.Holidays++
		case timesheet.StatusWeekend:
			summary.Weekends++
		case timesheet.StatusLeave:
			summary.Leaves++
		case timesheet.StatusPresent:
			summary.PresentDays++
		case timesheet.StatusHalfDay:
			summary.HalfDays++
		case timesheet.StatusIncomplete:
			summary.IncompleteDays++
		case timesheet.StatusAbsent:
			summary.AbsentDays++
		}

		if resolved.IsLate {
			summary.LateDays++
		}

		switch resolved.Status {
		case timesheet.StatusPresent, timesheet.StatusHalfDay, timesheet.StatusIncomplete:
			if rec := resolved.SourceRecord; rec != nil {
				if rec.TotalWorkedMinutes > 0 {
					summary.TotalWorkedMinutes += rec.TotalWorkedMinutes
				}
				if rec.TotalBreakMinutes > 0 {
					summary.TotalBreakMinutes += rec.TotalBreakMinutes
				}
			}
			overtimeMinutes += resolved.OvertimeMinutes
		}
	}

	summary.OvertimeHours = minutesToHours(overtimeMinutes)

	validateCounts(&summary)
	deriveMetrics(&summary, expectedWorkMinutes)

	return summary
}

// validateCounts records the non-fatal consistency warnings.
func validateCounts(s *timesheet.PeriodSummary) {
	if s.LateDays > s.PresentDays {
		s.DataWarnings = append(s.DataWarnings,
			fmt.Sprintf("late count exceeds present count (%d > %d)", s.LateDays, s.PresentDays))
	}

	recorded := s.PresentDays + s.AbsentDays + s.Leaves + s.HalfDays
	if recorded > s.WorkingDays {
		s.DataWarnings = append(s.DataWarnings,
			fmt.Sprintf("attendance records exceed working days (%d > %d)", recorded, s.WorkingDays))
	}
}

// deriveMetrics computes average hours and work-hour percentage from the
// plausibility-capped total. The raw total stays on the summary for
// transparency.
func deriveMetrics(s *timesheet.PeriodSummary, expectedWorkMinutes int) {
	cappedMinutes := s.TotalWorkedMinutes
	plausibleCap := s.PresentDays * minutesPerPresentDayCap
	if cappedMinutes > plausibleCap {
		s.DataWarnings = append(s.DataWarnings,
			fmt.Sprintf("implausible total worked hours: %s exceeds 24h per present day", minutesLabel(s.TotalWorkedMinutes)))
		cappedMinutes = plausibleCap
	}

	if s.PresentDays > 0 {
		s.AverageHoursPerDay = decimal.NewFromInt(int64(cappedMinutes)).
			Div(decimal.NewFromInt(int64(s.PresentDays * 60))).
			Round(2).InexactFloat64()
	}

	if expectedWorkMinutes > 0 {
		s.WorkHoursPercentage = decimal.NewFromInt(int64(cappedMinutes)).
			Div(decimal.NewFromInt(int64(expectedWorkMinutes))).
			Mul(decimal.NewFromInt(100)).
			Round(2).InexactFloat64()
	}
}

func minutesToHours(minutes int) float64 {
	if minutes == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(minutes)).
		Div(decimal.NewFromInt(60)).
		Round(2).InexactFloat64()
}

func minutesLabel(minutes int) string {
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
