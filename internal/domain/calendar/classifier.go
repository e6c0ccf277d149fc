package calendar

import "time"

// ClassifyDay resolves the contextual classification of a date from the
// organization holiday calendar, the active weekly-off set and the employee's
// approved leave intervals.
//
// Precedence: HOLIDAY > WEEKEND > LEAVE > WORKING_DAY. A date covered by none
// of the inputs classifies as a working day.
func ClassifyDay(date time.Time, holidays []Holiday, weeklyOffDays []int, leaves []LeaveInterval) Day {
	day := Day{
		Date:           date,
		Classification: ClassificationWorkingDay,
	}

	for _, h := range holidays {
		if SameDate(h.Date, date) {
			name := h.Name
			day.Classification = ClassificationHoliday
			day.HolidayName = &name
			return day
		}
	}

	weekday := int(date.Weekday())
	for _, off := range weeklyOffDays {
		if off == weekday {
			day.Classification = ClassificationWeekend
			return day
		}
	}

	for _, l := range leaves {
		if l.Covers(date) {
			day.Classification = ClassificationLeave
			return day
		}
	}

	return day
}

// Covers reports whether date falls inside the interval, comparing calendar
// dates only.
func (l LeaveInterval) Covers(date time.Time) bool {
	d := Truncate(date)
	return !d.Before(Truncate(l.StartDate)) && !d.After(Truncate(l.EndDate))
}

// SameDate reports whether two instants fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Truncate drops the time-of-day component, keeping the calendar date.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
