package timesheet

import (
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/calendar"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/timesheet"
)

// ResolveDayStatus combines a day's calendar classification, its attendance
// record (if any) and the applicable shift rule into the one status the rest
// of the system trusts.
//
// It never fails: attendance data feeds payroll, so a malformed or partial
// record degrades toward absent/incomplete instead of sinking the whole
// period.
//
// Resolution order:
//  1. dates after today are future and carry no attendance expectation
//  2. holiday, weekend and leave classifications win over any punch data;
//     a punch on a holiday is informational only
//  3. working days derive their status from the punch pair and the rule's
//     worked-minute thresholds
func ResolveDayStatus(day calendar.Day, rec *attendance.Record, rule shift.Rule, today time.Time) timesheet.ResolvedDayStatus {
	resolved := timesheet.ResolvedDayStatus{
		Date:         day.Date,
		HolidayName:  day.HolidayName,
		SourceRecord: rec,
	}

	if calendar.Truncate(day.Date).After(calendar.Truncate(today)) {
		resolved.Status = timesheet.StatusFuture
		return resolved
	}

	switch day.Classification {
	case calendar.ClassificationHoliday:
		resolved.Status = timesheet.StatusHoliday
		return resolved
	case calendar.ClassificationWeekend:
		resolved.Status = timesheet.StatusWeekend
		return resolved
	case calendar.ClassificationLeave:
		resolved.Status = timesheet.StatusLeave
		return resolved
	}

	if rec == nil || rec.ClockIn == nil {
		// A record without a clock-in carries no usable punch data.
		resolved.Status = timesheet.StatusAbsent
		return resolved
	}

	if rec.ClockOut == nil {
		resolved.Status = timesheet.StatusIncomplete
		return resolved
	}

	// Lateness is measured from the end of the grace window, not from the
	// scheduled start.
	graceLimit := rule.StartOn(day.Date).Add(time.Duration(rule.GracePeriodMinutes) * time.Minute)
	if lateBy := rec.ClockIn.Sub(graceLimit); lateBy > 0 {
		resolved.LateMinutes = int(lateBy.Minutes())
	}
	resolved.IsLate = resolved.LateMinutes > rule.LateThresholdMinutes

	shiftEnd := rule.EndOn(day.Date)
	if earlyBy := shiftEnd.Sub(*rec.ClockOut); earlyBy > 0 {
		resolved.EarlyExitMinutes = int(earlyBy.Minutes())
	}
	resolved.IsEarlyDeparture = resolved.EarlyExitMinutes > rule.EarlyDepartureThresholdMinutes

	worked := rec.TotalWorkedMinutes
	if worked < 0 {
		worked = 0
	}

	if rule.OvertimeEnabled {
		threshold := rule.DurationMinutes() + rule.OvertimeThresholdMinutes
		if worked > threshold {
			resolved.OvertimeMinutes = worked - threshold
		}
	}

	// Late arrival and early departure stay modifier flags on a present day,
	// they never demote the status category.
	switch {
	case float64(worked) >= rule.FullDayHours*60:
		resolved.Status = timesheet.StatusPresent
	case float64(worked) >= rule.HalfDayHours*60:
		resolved.Status = timesheet.StatusHalfDay
	default:
		resolved.Status = timesheet.StatusIncomplete
	}

	return resolved
}
