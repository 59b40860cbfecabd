package employee

import "context"

type EmployeeRepository interface {
	// GetByID returns the employee row. Fails with ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// ListByCompany returns all employees in a company, active first.
	ListByCompany(ctx context.Context, companyID string) ([]Employee, error)
}
