package attendance

import (
	"time"
)

// Record is one employee-day attendance row as persisted by the capture
// subsystem. Created on clock-in, mutated on clock-out and break events,
// immutable once the day closes. This service only reads records.
type Record struct {
	ID         string
	EmployeeID string
	CompanyID  string

	// Date is the canonical work day. RawDate preserves the value exactly as
	// the capture subsystem stored it: legacy rows carry full timestamps or
	// RFC3339 strings where newer rows carry a plain date.
	Date    time.Time
	RawDate string

	ClockIn  *time.Time
	ClockOut *time.Time

	BreakSessions      []BreakSession
	TotalWorkedMinutes int
	TotalBreakMinutes  int

	WorkMode *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BreakSession is one break taken within a work day. An open break has a nil
// End.
type BreakSession struct {
	Start           time.Time  `json:"start"`
	End             *time.Time `json:"end,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
}
