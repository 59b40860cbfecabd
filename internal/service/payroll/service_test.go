package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelolahr/attendance-backend-go/internal/domain/employee"
	"github.com/kelolahr/attendance-backend-go/internal/domain/payroll"
	reportdomain "github.com/kelolahr/attendance-backend-go/internal/domain/report"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func testEmployee(base int64) employee.Employee {
	return employee.Employee{
		ID:       "emp-1",
		FullName: "Asha Rao",
		IsActive: true,
		Salary: &employee.SalaryConfig{
			Base: dec(base),
		},
	}
}

func TestComputePayslip_StandardScenario(t *testing.T) {
	t.Parallel()

	emp := testEmployee(30000)
	emp.Salary.OvertimeRatePerHour = dec(200)
	stats := reportdomain.PeriodStats{
		PresentDays:          24,
		AbsentDays:           1,
		OvertimeHours:        5,
		AttendancePercentage: 96,
	}

	slip, err := ComputePayslip(emp, stats, payroll.DefaultRates(), "2026-06")
	require.NoError(t, err)

	assert.Equal(t, "30000", slip.Earnings.BasicSalary.String())
	assert.Equal(t, "1000", slip.Earnings.OvertimePay.String())
	assert.Equal(t, "2000", slip.Earnings.PerformanceAllowance.String())
	assert.Equal(t, "3800", slip.Earnings.TotalAllowances.String())
	assert.Equal(t, "34800", slip.Earnings.GrossEarnings.String())

	assert.Equal(t, "3600", slip.Deductions.ProvidentFund.String())
	assert.Equal(t, "525", slip.Deductions.ESI.String())
	assert.True(t, slip.Deductions.Tax.IsZero())
	assert.Equal(t, "4125", slip.Deductions.TotalDeductions.String())

	assert.Equal(t, "30675", slip.NetSalary.String())
	assert.Equal(t, "2026-06", slip.Period)
}

func TestComputePayslip_NoPerformanceAllowanceBelowThreshold(t *testing.T) {
	t.Parallel()

	emp := testEmployee(30000)
	stats := reportdomain.PeriodStats{
		PresentDays:          20,
		AbsentDays:           5,
		AttendancePercentage: 80,
	}

	slip, err := ComputePayslip(emp, stats, payroll.DefaultRates(), "2026-06")
	require.NoError(t, err)

	assert.True(t, slip.Earnings.PerformanceAllowance.IsZero())
	assert.Equal(t, "1800", slip.Earnings.TotalAllowances.String())
}

func TestComputePayslip_OvertimeRateFallsBackToHourlyRate(t *testing.T) {
	t.Parallel()

	emp := testEmployee(30000)
	emp.Salary.HourlyRate = dec(100)
	stats := reportdomain.PeriodStats{
		PresentDays:          22,
		OvertimeHours:        4,
		AttendancePercentage: 100,
	}

	slip, err := ComputePayslip(emp, stats, payroll.DefaultRates(), "2026-06")
	require.NoError(t, err)

	// hourly rate * 1.5 * 4h
	assert.Equal(t, "600", slip.Earnings.OvertimePay.String())
}

func TestComputePayslip_NoRatesConfiguredMeansNoOvertimePay(t *testing.T) {
	t.Parallel()

	emp := testEmployee(30000)
	stats := reportdomain.PeriodStats{
		PresentDays:          22,
		OvertimeHours:        10,
		AttendancePercentage: 100,
	}

	slip, err := ComputePayslip(emp, stats, payroll.DefaultRates(), "2026-06")
	require.NoError(t, err)
	assert.True(t, slip.Earnings.OvertimePay.IsZero())
}

func TestComputePayslip_BonusAndAdvance(t *testing.T) {
	t.Parallel()

	emp := testEmployee(30000)
	emp.Salary.Bonus = decimal.NewFromInt(1500)
	emp.Salary.Deductions = decimal.NewFromInt(2000)
	stats := reportdomain.PeriodStats{
		PresentDays:          22,
		AttendancePercentage: 100,
	}

	slip, err := ComputePayslip(emp, stats, payroll.DefaultRates(), "2026-06")
	require.NoError(t, err)

	assert.Equal(t, "1500", slip.Earnings.Bonus.String())
	assert.Equal(t, "2000", slip.Deductions.Advance.String())
	// 30000 + 3800 allowances + 1500 bonus
	assert.Equal(t, "35300", slip.Earnings.GrossEarnings.String())
	// minus 3600 PF + 525 ESI + 2000 advance
	assert.Equal(t, "29175", slip.NetSalary.String())
}

func TestComputePayslip_ErrInvalidPeriod(t *testing.T) {
	t.Parallel()

	_, err := ComputePayslip(testEmployee(30000), reportdomain.PeriodStats{}, payroll.DefaultRates(), "2026-06")
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestComputePayslip_ErrMissingSalaryConfig(t *testing.T) {
	t.Parallel()

	emp := employee.Employee{ID: "emp-1", Salary: &employee.SalaryConfig{}}
	stats := reportdomain.PeriodStats{PresentDays: 20}

	_, err := ComputePayslip(emp, stats, payroll.DefaultRates(), "2026-06")
	assert.ErrorIs(t, err, payroll.ErrMissingSalaryConfig)

	emp.Salary = nil
	_, err = ComputePayslip(emp, stats, payroll.DefaultRates(), "2026-06")
	assert.ErrorIs(t, err, payroll.ErrMissingSalaryConfig)
}

func TestComputePayslip_ESIRoundsHalfUp(t *testing.T) {
	t.Parallel()

	// 25700 * 0.0175 = 449.75, rounds to 450
	emp := testEmployee(25700)
	stats := reportdomain.PeriodStats{PresentDays: 22, AttendancePercentage: 100}

	slip, err := ComputePayslip(emp, stats, payroll.DefaultRates(), "2026-06")
	require.NoError(t, err)
	assert.Equal(t, "450", slip.Deductions.ESI.String())
	assert.Equal(t, "3084", slip.Deductions.ProvidentFund.String())
}
