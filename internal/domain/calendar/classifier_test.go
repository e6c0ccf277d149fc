package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyDay_DefaultsToWorkingDay(t *testing.T) {
	day := ClassifyDay(date(2026, time.January, 14), nil, nil, nil)

	assert.Equal(t, ClassificationWorkingDay, day.Classification)
	assert.Nil(t, day.HolidayName)
}

func TestClassifyDay_Holiday(t *testing.T) {
	holidays := []Holiday{
		{Date: date(2026, time.January, 26), Name: "Republic Day"},
	}

	day := ClassifyDay(date(2026, time.January, 26), holidays, nil, nil)

	assert.Equal(t, ClassificationHoliday, day.Classification)
	if assert.NotNil(t, day.HolidayName) {
		assert.Equal(t, "Republic Day", *day.HolidayName)
	}
}

func TestClassifyDay_HolidayBeatsWeekend(t *testing.T) {
	// 2026-01-25 is a Sunday.
	holidays := []Holiday{
		{Date: date(2026, time.January, 25), Name: "Foundation Day"},
	}
	weeklyOff := []int{0, 6}

	day := ClassifyDay(date(2026, time.January, 25), holidays, weeklyOff, nil)

	assert.Equal(t, ClassificationHoliday, day.Classification)
}

func TestClassifyDay_WeekendBeatsLeave(t *testing.T) {
	// Approved leave spanning a weekend: the Sunday stays a weekend.
	leaves := []LeaveInterval{
		{StartDate: date(2026, time.January, 23), EndDate: date(2026, time.January, 27)},
	}
	weeklyOff := []int{0}

	sunday := ClassifyDay(date(2026, time.January, 25), nil, weeklyOff, leaves)
	monday := ClassifyDay(date(2026, time.January, 26), nil, weeklyOff, leaves)

	assert.Equal(t, ClassificationWeekend, sunday.Classification)
	assert.Equal(t, ClassificationLeave, monday.Classification)
}

func TestClassifyDay_LeaveBoundsInclusive(t *testing.T) {
	leaves := []LeaveInterval{
		{StartDate: date(2026, time.March, 2), EndDate: date(2026, time.March, 4)},
	}

	cases := []struct {
		day  time.Time
		want Classification
	}{
		{date(2026, time.March, 1), ClassificationWorkingDay},
		{date(2026, time.March, 2), ClassificationLeave},
		{date(2026, time.March, 4), ClassificationLeave},
		{date(2026, time.March, 5), ClassificationWorkingDay},
	}
	for _, c := range cases {
		got := ClassifyDay(c.day, nil, nil, leaves)
		assert.Equalf(t, c.want, got.Classification, "date %s", c.day.Format("2006-01-02"))
	}
}

func TestClassifyDay_IgnoresTimeOfDayOnInputs(t *testing.T) {
	// Holiday stored with an embedded timestamp still matches the date.
	holidays := []Holiday{
		{Date: time.Date(2026, time.May, 1, 17, 30, 0, 0, time.UTC), Name: "Labour Day"},
	}

	day := ClassifyDay(date(2026, time.May, 1), holidays, nil, nil)

	assert.Equal(t, ClassificationHoliday, day.Classification)
}
