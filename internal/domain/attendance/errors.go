package attendance

import "errors"

// Attendance domain errors
var (
	ErrMalformedDate = errors.New("attendance record has unparseable date")
)
