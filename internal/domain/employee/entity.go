package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	CompanyID    string
	EmployeeCode string
	FullName     string
	Department   string
	Position     string
	WorkLocation string
	IsActive     bool
	ShiftTiming  *ShiftTiming
	Salary       *SalaryConfig
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ShiftTiming is the expected working window, both ends as 24-hour "HH:MM"
// strings on the same calendar day. No overnight shifts.
type ShiftTiming struct {
	StartTime string
	EndTime   string
}

// SalaryConfig is the read-only payroll input attached to an employee.
// Base is a fixed monthly figure; OvertimeRatePerHour and HourlyRate are
// optional (the calculator falls back from one to the other).
type SalaryConfig struct {
	Base                *decimal.Decimal
	OvertimeRatePerHour *decimal.Decimal
	HourlyRate          *decimal.Decimal
	Bonus               decimal.Decimal
	Deductions          decimal.Decimal
}
