package calendar

import "time"

// Classification is the contextual category of a calendar date, computed
// independently of any attendance punch.
type Classification string

const (
	ClassificationWorkingDay Classification = "WORKING_DAY"
	ClassificationWeekend    Classification = "WEEKEND"
	ClassificationHoliday    Classification = "HOLIDAY"
	ClassificationLeave      Classification = "LEAVE"
)

// Holiday is one dated entry in the organization calendar.
type Holiday struct {
	ID        string
	CompanyID string
	Date      time.Time
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveInterval is an approved leave request projected down to the date range
// the classifier needs. Both ends are inclusive.
type LeaveInterval struct {
	EmployeeID    string
	StartDate     time.Time
	EndDate       time.Time
	LeaveTypeName *string
}

// Day is the classification result for a single date. Exactly one
// classification per date.
type Day struct {
	Date           time.Time
	Classification Classification
	HolidayName    *string
	ActiveRuleName string
}
