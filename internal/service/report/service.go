package report

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/kelolahr/attendance-backend-go/internal/domain/attendance"
	"github.com/kelolahr/attendance-backend-go/internal/domain/employee"
	"github.com/kelolahr/attendance-backend-go/internal/domain/payroll"
	"github.com/kelolahr/attendance-backend-go/internal/domain/report"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/clock"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/validator"
)

// Aggregate folds day records falling inside the window into PeriodStats.
// Pure and reentrant: safe to run concurrently over a snapshot.
//
// For a month window, absent days are derived from days elapsed in the
// month (capped at today for the in-progress month) so future days are
// never counted as absent. For a range window, absent days are the stored
// not-present records inside the range.
func Aggregate(days []attendance.Day, window report.Window, today time.Time) report.PeriodStats {
	stats := report.PeriodStats{}

	for _, day := range days {
		if !window.Contains(day.Date) {
			continue
		}
		if day.IsPresent {
			stats.PresentDays++
		} else {
			stats.AbsentDays++
		}
		if day.HoursWorked != nil {
			stats.TotalHours += *day.HoursWorked
		}
		if day.OvertimeHours != nil {
			stats.OvertimeHours += *day.OvertimeHours
		}
		switch day.Status {
		case attendance.StatusLate:
			stats.LateCount++
		case attendance.StatusEarlyLeave:
			stats.EarlyLeaveCount++
		}
	}

	if window.IsMonth() {
		elapsed := daysElapsedInMonth(window.Month, window.Year, today)
		stats.AbsentDays = elapsed - stats.PresentDays
		if stats.AbsentDays < 0 {
			stats.AbsentDays = 0
		}
	}

	if denom := stats.PresentDays + stats.AbsentDays; denom > 0 {
		stats.AttendancePercentage = roundPct(float64(stats.PresentDays) / float64(denom) * 100)
	}
	if stats.PresentDays > 0 {
		punctual := stats.PresentDays - stats.LateCount - stats.EarlyLeaveCount
		// not clamped: a day counts toward at most one of LateCount or
		// EarlyLeaveCount and is always a present day, so the subtraction
		// bottoms out at 0 on its own
		stats.PunctualityScore = roundPct(float64(punctual) / float64(stats.PresentDays) * 100)
		stats.AverageHours = round2(stats.TotalHours / float64(stats.PresentDays))
	}

	stats.TotalHours = round2(stats.TotalHours)
	stats.OvertimeHours = round2(stats.OvertimeHours)
	return stats
}

func daysElapsedInMonth(month time.Month, year int, today time.Time) int {
	if today.Year() == year && today.Month() == month {
		return today.Day()
	}
	// AddDate(0,1,-1) on the first of the month lands on its last day
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

func roundPct(v float64) int {
	return int(math.Round(v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
	}
}

func companyFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// PeriodStats implements report.ReportService.
func (s *ReportServiceImpl) PeriodStats(ctx context.Context, employeeID string, startDate, endDate string) (report.PeriodStats, error) {
	start, ok := validator.IsValidDate(startDate)
	if !ok {
		return report.PeriodStats{}, fmt.Errorf("%w: start date must be YYYY-MM-DD", report.ErrInvalidPeriod)
	}
	end, ok := validator.IsValidDate(endDate)
	if !ok {
		return report.PeriodStats{}, fmt.Errorf("%w: end date must be YYYY-MM-DD", report.ErrInvalidPeriod)
	}
	window, err := report.RangeWindow(start, end)
	if err != nil {
		return report.PeriodStats{}, err
	}

	return s.aggregateWindow(ctx, employeeID, window)
}

// MonthStats implements report.ReportService.
func (s *ReportServiceImpl) MonthStats(ctx context.Context, employeeID string, month string) (report.PeriodStats, error) {
	window, err := report.ParseMonthWindow(month, s.clock.Now())
	if err != nil {
		return report.PeriodStats{}, err
	}
	return s.aggregateWindow(ctx, employeeID, window)
}

// MonthlySummary implements report.ReportService.
func (s *ReportServiceImpl) MonthlySummary(ctx context.Context, employeeID string, month string) (report.MonthlySummary, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return report.MonthlySummary{}, err
	}

	window, err := report.ParseMonthWindow(month, s.clock.Now())
	if err != nil {
		return report.MonthlySummary{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return report.MonthlySummary{}, err
	}

	stats, err := s.listAndAggregate(ctx, companyID, employeeID, window)
	if err != nil {
		return report.MonthlySummary{}, err
	}

	// simplified report figure: base prorated by present days at base/30
	if emp.Salary == nil || emp.Salary.Base == nil {
		return report.MonthlySummary{}, payroll.ErrMissingSalaryConfig
	}
	prorated := emp.Salary.Base.
		Div(decimal.NewFromInt(30)).
		Mul(decimal.NewFromInt(int64(stats.PresentDays))).
		Round(0)

	return report.MonthlySummary{
		EmployeeID:     emp.ID,
		EmployeeName:   emp.FullName,
		Month:          window.Start.Format("2006-01"),
		Stats:          stats,
		ProratedSalary: prorated.String(),
	}, nil
}

func (s *ReportServiceImpl) aggregateWindow(ctx context.Context, employeeID string, window report.Window) (report.PeriodStats, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return report.PeriodStats{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID, companyID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return report.PeriodStats{}, err
		}
		return report.PeriodStats{}, fmt.Errorf("failed to load employee: %w", err)
	}

	return s.listAndAggregate(ctx, companyID, employeeID, window)
}

// listAndAggregate folds the stored day records for a window. Callers that
// already loaded the employee use this directly to avoid a second fetch.
func (s *ReportServiceImpl) listAndAggregate(ctx context.Context, companyID, employeeID string, window report.Window) (report.PeriodStats, error) {
	days, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, window.Start, window.End, companyID)
	if err != nil {
		return report.PeriodStats{}, fmt.Errorf("failed to list attendance days: %w", err)
	}

	return Aggregate(days, window, s.clock.Now()), nil
}
