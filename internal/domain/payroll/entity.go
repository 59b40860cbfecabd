package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/kelolahr/attendance-backend-go/internal/config"
)

// Rates holds the fixed allowance amounts and statutory percentages the
// calculator applies. Injected rather than embedded so a tenant or period
// can override them without a code change.
type Rates struct {
	TransportAllowance       decimal.Decimal
	MealAllowance            decimal.Decimal
	MobileAllowance          decimal.Decimal
	PerformanceAllowance     decimal.Decimal
	PerformanceAttendanceMin int
	PFRate                   decimal.Decimal
	ESIRate                  decimal.Decimal
	// OvertimeFallbackFactor multiplies the hourly rate when no explicit
	// overtime rate is configured.
	OvertimeFallbackFactor decimal.Decimal
}

func RatesFromConfig(cfg config.PayrollConfig) Rates {
	return Rates{
		TransportAllowance:       cfg.TransportAllowance,
		MealAllowance:            cfg.MealAllowance,
		MobileAllowance:          cfg.MobileAllowance,
		PerformanceAllowance:     cfg.PerformanceAllowance,
		PerformanceAttendanceMin: cfg.PerformanceAttendanceMin,
		PFRate:                   cfg.PFRate,
		ESIRate:                  cfg.ESIRate,
		OvertimeFallbackFactor:   cfg.OvertimeFallbackFactor,
	}
}

// DefaultRates mirrors the standard figures used when no configuration
// override is present.
func DefaultRates() Rates {
	return Rates{
		TransportAllowance:       decimal.NewFromInt(1000),
		MealAllowance:            decimal.NewFromInt(500),
		MobileAllowance:          decimal.NewFromInt(300),
		PerformanceAllowance:     decimal.NewFromInt(2000),
		PerformanceAttendanceMin: 95,
		PFRate:                   decimal.NewFromFloat(0.12),
		ESIRate:                  decimal.NewFromFloat(0.0175),
		OvertimeFallbackFactor:   decimal.NewFromFloat(1.5),
	}
}

// Earnings is the payslip earnings block. Every figure is rounded to the
// nearest integer currency unit at assembly; nothing is rounded between
// the intermediate calculation steps.
type Earnings struct {
	BasicSalary          decimal.Decimal `json:"basic_salary"`
	OvertimePay          decimal.Decimal `json:"overtime_pay"`
	TransportAllowance   decimal.Decimal `json:"transport_allowance"`
	MealAllowance        decimal.Decimal `json:"meal_allowance"`
	MobileAllowance      decimal.Decimal `json:"mobile_allowance"`
	PerformanceAllowance decimal.Decimal `json:"performance_allowance"`
	Bonus                decimal.Decimal `json:"bonus"`
	TotalAllowances      decimal.Decimal `json:"total_allowances"`
	GrossEarnings        decimal.Decimal `json:"gross_earnings"`
}

// Deductions is the payslip deductions block. Tax is a fixed zero stub.
type Deductions struct {
	ProvidentFund   decimal.Decimal `json:"provident_fund"`
	ESI             decimal.Decimal `json:"esi"`
	Tax             decimal.Decimal `json:"tax"`
	Advance         decimal.Decimal `json:"advance"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
}

// Payslip is the derived salary statement for one employee and period.
// Never persisted.
type Payslip struct {
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	Period        string          `json:"period"`
	PresentDays   int             `json:"present_days"`
	OvertimeHours float64         `json:"overtime_hours"`
	Earnings      Earnings        `json:"earnings"`
	Deductions    Deductions      `json:"deductions"`
	NetSalary     decimal.Decimal `json:"net_salary"`
}
