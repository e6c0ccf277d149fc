package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrInvalidPeriod = errors.New("invalid reporting period")
)
