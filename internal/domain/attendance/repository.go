package attendance

import (
	"context"
	"time"
)

// Repository defines read access to attendance records. The capture subsystem
// owns writes; this service never mutates a record. All methods include
// companyID to prevent cross-company data access.
type Repository interface {
	// ListByEmployeeAndRange retrieves records with dates inside [from, to].
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]Record, error)
}
