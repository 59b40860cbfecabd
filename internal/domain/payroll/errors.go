package payroll

import "errors"

// Payroll domain errors
var (
	ErrInvalidPeriod       = errors.New("payroll period covers no days")
	ErrMissingSalaryConfig = errors.New("employee has no base salary configured")
)
