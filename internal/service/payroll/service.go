package payroll

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/kelolahr/attendance-backend-go/internal/domain/attendance"
	"github.com/kelolahr/attendance-backend-go/internal/domain/employee"
	"github.com/kelolahr/attendance-backend-go/internal/domain/payroll"
	reportdomain "github.com/kelolahr/attendance-backend-go/internal/domain/report"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/clock"
	reportsvc "github.com/kelolahr/attendance-backend-go/internal/service/report"
)

type PayrollServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	rates          payroll.Rates
	clock          clock.Clock
}

func NewPayrollService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	rates payroll.Rates,
	clk clock.Clock,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		rates:          rates,
		clock:          clk,
	}
}

// ComputePayslip derives the salary statement from aggregated period stats
// and the employee's salary configuration. Pure: no rounding happens
// between the calculation steps, each displayed figure is rounded to the
// nearest currency unit at assembly, and the block totals are sums of the
// displayed figures.
func ComputePayslip(emp employee.Employee, stats reportdomain.PeriodStats, rates payroll.Rates, period string) (payroll.Payslip, error) {
	if stats.PresentDays+stats.AbsentDays == 0 {
		return payroll.Payslip{}, payroll.ErrInvalidPeriod
	}
	if emp.Salary == nil || emp.Salary.Base == nil {
		return payroll.Payslip{}, payroll.ErrMissingSalaryConfig
	}

	basic := *emp.Salary.Base

	overtimeRate := decimal.Zero
	switch {
	case emp.Salary.OvertimeRatePerHour != nil:
		overtimeRate = *emp.Salary.OvertimeRatePerHour
	case emp.Salary.HourlyRate != nil:
		overtimeRate = emp.Salary.HourlyRate.Mul(rates.OvertimeFallbackFactor)
	}
	overtimePay := overtimeRate.Mul(decimal.NewFromFloat(stats.OvertimeHours))

	performance := decimal.Zero
	if stats.AttendancePercentage >= rates.PerformanceAttendanceMin {
		performance = rates.PerformanceAllowance
	}
	totalAllowances := rates.TransportAllowance.
		Add(rates.MealAllowance).
		Add(rates.MobileAllowance).
		Add(performance)

	bonus := emp.Salary.Bonus
	gross := basic.Add(overtimePay).Add(totalAllowances).Add(bonus)

	pf := basic.Mul(rates.PFRate).Round(0)
	esi := basic.Mul(rates.ESIRate).Round(0)
	tax := decimal.Zero // stub, no tax engine
	advance := emp.Salary.Deductions.Round(0)
	totalDeductions := pf.Add(esi).Add(tax).Add(advance)

	earnings := payroll.Earnings{
		BasicSalary:          basic.Round(0),
		OvertimePay:          overtimePay.Round(0),
		TransportAllowance:   rates.TransportAllowance.Round(0),
		MealAllowance:        rates.MealAllowance.Round(0),
		MobileAllowance:      rates.MobileAllowance.Round(0),
		PerformanceAllowance: performance.Round(0),
		Bonus:                bonus.Round(0),
		TotalAllowances:      totalAllowances.Round(0),
		GrossEarnings:        gross.Round(0),
	}
	deductions := payroll.Deductions{
		ProvidentFund:   pf,
		ESI:             esi,
		Tax:             tax,
		Advance:         advance,
		TotalDeductions: totalDeductions,
	}

	return payroll.Payslip{
		EmployeeID:    emp.ID,
		EmployeeName:  emp.FullName,
		Period:        period,
		PresentDays:   stats.PresentDays,
		OvertimeHours: stats.OvertimeHours,
		Earnings:      earnings,
		Deductions:    deductions,
		NetSalary:     gross.Sub(totalDeductions).Round(0),
	}, nil
}

// Payslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, employeeID string, month string) (payroll.Payslip, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return payroll.Payslip{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	now := s.clock.Now()
	window, err := reportdomain.ParseMonthWindow(month, now)
	if err != nil {
		return payroll.Payslip{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.Payslip{}, err
		}
		return payroll.Payslip{}, fmt.Errorf("failed to load employee: %w", err)
	}

	days, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, window.Start, window.End, companyID)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to list attendance days: %w", err)
	}

	stats := reportsvc.Aggregate(days, window, now)
	return ComputePayslip(emp, stats, s.rates, window.Start.Format("2006-01"))
}
