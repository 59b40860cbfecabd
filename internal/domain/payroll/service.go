package payroll

import "context"

type PayrollService interface {
	// Payslip computes the salary statement for one employee and calendar
	// month ("2006-01"). Pure over a snapshot of the month's day records.
	Payslip(ctx context.Context, employeeID string, month string) (Payslip, error)
}
