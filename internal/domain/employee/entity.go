package employee

import "time"

// Employee is the minimal directory projection this service needs: identity,
// company scope and whether attendance is expected at all. The full employee
// profile lives in the HR management system.
type Employee struct {
	ID               string
	CompanyID        string
	EmployeeCode     string
	FullName         string
	Email            *string
	HireDate         time.Time
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
	EmploymentStatusResigned EmploymentStatus = "resigned"
)
