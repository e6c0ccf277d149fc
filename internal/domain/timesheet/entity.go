package timesheet

import (
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
)

// DayStatus is the single authoritative status of one calendar day. The enum
// is closed: rendering layers map these values to icons and colors on their
// own, the engine never carries presentation data.
type DayStatus string

const (
	StatusHoliday DayStatus = "holiday"
	StatusWeekend DayStatus = "weekend"
	StatusLeave   DayStatus = "leave"
	StatusPresent DayStatus = "present"
	// StatusLate exists for renderers that bucket late arrivals separately.
	// The resolver reports lateness as IsLate on a present day and never
	// emits this value itself.
	StatusLate       DayStatus = "late"
	StatusHalfDay    DayStatus = "half_day"
	StatusIncomplete DayStatus = "incomplete"
	StatusAbsent     DayStatus = "absent"
	StatusFuture     DayStatus = "future"
)

// DayStatusValues lists every member of the closed enum.
var DayStatusValues = []string{
	string(StatusHoliday),
	string(StatusWeekend),
	string(StatusLeave),
	string(StatusPresent),
	string(StatusLate),
	string(StatusHalfDay),
	string(StatusIncomplete),
	string(StatusAbsent),
	string(StatusFuture),
}

// ResolvedDayStatus is the reconciliation result for one date.
type ResolvedDayStatus struct {
	Date   time.Time
	Status DayStatus

	IsLate      bool
	LateMinutes int

	IsEarlyDeparture bool
	EarlyExitMinutes int

	OvertimeMinutes int

	HolidayName *string

	// SourceRecord points back at the matched attendance record, when any.
	// The record stays owned by the capture subsystem.
	SourceRecord *attendance.Record
}

// PeriodSummary is the aggregate over one reporting period, typically a
// month. Future dates are excluded from every bucket.
type PeriodSummary struct {
	PeriodStart time.Time
	PeriodEnd   time.Time

	TotalDays   int
	WorkingDays int
	Weekends    int
	Holidays    int
	Leaves      int

	PresentDays    int
	AbsentDays     int
	LateDays       int
	HalfDays       int
	IncompleteDays int

	// TotalWorkedMinutes is the raw accumulated value, reported even when it
	// fails the plausibility cap; derived metrics use the capped value.
	TotalWorkedMinutes int
	TotalBreakMinutes  int
	OvertimeHours      float64

	AverageHoursPerDay  float64
	WorkHoursPercentage float64

	DataWarnings []string
}
