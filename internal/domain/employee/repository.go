package employee

import "context"

// Repository defines read access to the employee directory. All methods
// include companyID to prevent cross-company data access.
type Repository interface {
	// GetByID retrieves an employee, or ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// GetActiveByCompanyID retrieves all active employees of a company.
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}
