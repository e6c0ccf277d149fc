package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/calendar"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
)

// periodFixture builds Providers over plain maps so each test can stage a
// month of inputs declaratively.
type periodFixture struct {
	days    map[string]calendar.Day
	records map[string]*attendance.Record
}

func newPeriodFixture() *periodFixture {
	return &periodFixture{
		days:    map[string]calendar.Day{},
		records: map[string]*attendance.Record{},
	}
}

func (f *periodFixture) classify(date time.Time, classification calendar.Classification) {
	f.days[attendance.DateKey(date)] = calendar.Day{Date: date, Classification: classification}
}

func (f *periodFixture) punch(date time.Time, workedMinutes, breakMinutes int) {
	rec := punchedRecord(date, 9, 0, 17, 0, workedMinutes)
	rec.TotalBreakMinutes = breakMinutes
	f.records[attendance.DateKey(date)] = rec
}

func (f *periodFixture) providers() Providers {
	return Providers{
		CalendarDay: func(date time.Time) calendar.Day {
			if day, ok := f.days[attendance.DateKey(date)]; ok {
				return day
			}
			return calendar.Day{Date: date, Classification: calendar.ClassificationWorkingDay}
		},
		Attendance: func(date time.Time) *attendance.Record {
			return f.records[attendance.DateKey(date)]
		},
		ShiftRule: func(time.Time) shift.Rule { return officeRule() },
	}
}

func weekOf(start time.Time, n int) []time.Time {
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

func TestAggregatePeriod_CountsAndBuckets(t *testing.T) {
	// Mon 2026-01-05 through Sun 2026-01-11: five working days, one holiday
	// midweek, a weekend tail.
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	dates := weekOf(start, 7)
	today := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	f := newPeriodFixture()
	f.classify(dates[2], calendar.ClassificationHoliday)
	f.classify(dates[5], calendar.ClassificationWeekend)
	f.classify(dates[6], calendar.ClassificationWeekend)
	f.punch(dates[0], 480, 60) // present
	f.punch(dates[1], 300, 30) // half day
	f.punch(dates[3], 100, 0)  // incomplete
	// dates[4] has no record: absent

	summary := AggregatePeriod(dates, f.providers(), today)

	assert.Equal(t, 7, summary.TotalDays)
	assert.Equal(t, 4, summary.WorkingDays)
	assert.Equal(t, 1, summary.Holidays)
	assert.Equal(t, 2, summary.Weekends)
	assert.Equal(t, 1, summary.PresentDays)
	assert.Equal(t, 1, summary.HalfDays)
	assert.Equal(t, 1, summary.IncompleteDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 880, summary.TotalWorkedMinutes)
	assert.Equal(t, 90, summary.TotalBreakMinutes)
	assert.Empty(t, summary.DataWarnings)
}

func TestAggregatePeriod_FutureDatesExcluded(t *testing.T) {
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	dates := weekOf(start, 5)
	today := dates[1] // only the first two days have elapsed

	f := newPeriodFixture()
	f.punch(dates[0], 480, 0)
	f.punch(dates[1], 480, 0)
	f.punch(dates[3], 480, 0) // future punch must not count

	summary := AggregatePeriod(dates, f.providers(), today)

	assert.Equal(t, 5, summary.TotalDays)
	assert.Equal(t, 2, summary.WorkingDays)
	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 0, summary.AbsentDays)
	assert.Equal(t, 960, summary.TotalWorkedMinutes)
}

func TestAggregatePeriod_Idempotent(t *testing.T) {
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	dates := weekOf(start, 7)
	today := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	f := newPeriodFixture()
	f.classify(dates[5], calendar.ClassificationWeekend)
	f.classify(dates[6], calendar.ClassificationWeekend)
	f.punch(dates[0], 480, 45)
	f.punch(dates[2], 250, 0)

	first := AggregatePeriod(dates, f.providers(), today)
	second := AggregatePeriod(dates, f.providers(), today)

	assert.Equal(t, first, second)
}

func TestAggregatePeriod_LateCountWarning(t *testing.T) {
	// Two late half days and one late present day: LateDays 3 against
	// PresentDays 1 trips the consistency check.
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	dates := weekOf(start, 3)
	today := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	f := newPeriodFixture()
	for i, worked := range []int{480, 300, 300} {
		rec := punchedRecord(dates[i], 10, 0, 17, 0, worked)
		f.records[attendance.DateKey(dates[i])] = rec
	}

	summary := AggregatePeriod(dates, f.providers(), today)

	assert.Equal(t, 3, summary.LateDays)
	assert.Equal(t, 1, summary.PresentDays)
	assert.Contains(t, summary.DataWarnings, "late count exceeds present count (3 > 1)")
}

func TestAggregatePeriod_RecordsExceedWorkingDaysWarning(t *testing.T) {
	// Leave days layered on a short period push recorded days past the
	// working-day count.
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	dates := weekOf(start, 3)
	today := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	f := newPeriodFixture()
	f.classify(dates[1], calendar.ClassificationLeave)
	f.classify(dates[2], calendar.ClassificationLeave)
	f.punch(dates[0], 480, 0)
	f.punch(dates[1], 480, 0)

	summary := AggregatePeriod(dates, f.providers(), today)

	assert.Equal(t, 1, summary.WorkingDays)
	assert.Equal(t, 2, summary.Leaves)
	assert.Contains(t, summary.DataWarnings, "attendance records exceed working days (3 > 1)")
}

func TestAggregatePeriod_ImplausibleHoursCapped(t *testing.T) {
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	dates := weekOf(start, 1)
	today := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	f := newPeriodFixture()
	f.punch(dates[0], 3000, 0) // 50h in one day

	summary := AggregatePeriod(dates, f.providers(), today)

	// Raw total stays visible, derived metrics use the cap.
	assert.Equal(t, 3000, summary.TotalWorkedMinutes)
	assert.Contains(t, summary.DataWarnings, "implausible total worked hours: 50h 00m exceeds 24h per present day")
	assert.InDelta(t, 24.0, summary.AverageHoursPerDay, 0.001)
}

func TestAggregatePeriod_DerivedMetrics(t *testing.T) {
	// Two working days, one full 8h day recorded: 480 of 960 expected
	// minutes is 50%.
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	dates := weekOf(start, 2)
	today := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	f := newPeriodFixture()
	f.punch(dates[0], 480, 0)

	summary := AggregatePeriod(dates, f.providers(), today)

	assert.InDelta(t, 8.0, summary.AverageHoursPerDay, 0.001)
	assert.InDelta(t, 50.0, summary.WorkHoursPercentage, 0.001)
}

func TestAggregatePeriod_OvertimeRollup(t *testing.T) {
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	dates := weekOf(start, 2)
	today := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	rule := officeRule()
	rule.OvertimeEnabled = true
	rule.OvertimeThresholdMinutes = 30

	f := newPeriodFixture()
	f.punch(dates[0], 570, 0) // 480 + 30 threshold + 60 overtime
	f.punch(dates[1], 495, 0) // inside the threshold

	providers := f.providers()
	providers.ShiftRule = func(time.Time) shift.Rule { return rule }

	summary := AggregatePeriod(dates, providers, today)

	assert.InDelta(t, 1.0, summary.OvertimeHours, 0.001)
}

func TestAggregatePeriod_EmptyPeriod(t *testing.T) {
	summary := AggregatePeriod(nil, newPeriodFixture().providers(), testToday)

	assert.Equal(t, 0, summary.TotalDays)
	assert.Equal(t, 0.0, summary.AverageHoursPerDay)
	assert.Equal(t, 0.0, summary.WorkHoursPercentage)
	assert.Empty(t, summary.DataWarnings)
}
