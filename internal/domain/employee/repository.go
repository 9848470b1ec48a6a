package employee

import "context"

// EmployeeRepository is the directory collaborator. All methods include
// companyID to prevent cross-company data access.
type EmployeeRepository interface {
	// GetActiveByCompanyID retrieves all active employees of a company in a
	// single bulk read, ordered by ID for deterministic processing.
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)

	// GetByID retrieves an employee by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
}
