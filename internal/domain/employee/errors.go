package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInactiveEmployee = errors.New("employee is deactivated")
)
