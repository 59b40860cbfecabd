package report

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelolahr/attendance-backend-go/internal/domain/attendance"
	"github.com/kelolahr/attendance-backend-go/internal/domain/employee"
	"github.com/kelolahr/attendance-backend-go/internal/domain/report"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/clock"
)

func dayOn(date time.Time, status attendance.Status, hours, overtime float64) attendance.Day {
	day := attendance.NewDay("emp-1", "co-1", date)
	day.IsPresent = true
	day.Status = status
	day.HoursWorked = &hours
	day.OvertimeHours = &overtime
	return day
}

func TestAggregate_FullMonth(t *testing.T) {
	t.Parallel()

	window, err := report.MonthWindow(time.June, 2026)
	require.NoError(t, err)

	// 22 working days recorded, viewed from the following month
	var days []attendance.Day
	for i := 0; i < 22; i++ {
		days = append(days, dayOn(time.Date(2026, 6, 1+i, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 8, 0))
	}
	today := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

	stats := Aggregate(days, window, today)
	assert.Equal(t, 22, stats.PresentDays)
	assert.Equal(t, 8, stats.AbsentDays) // June has 30 days
	assert.Equal(t, 73, stats.AttendancePercentage)
	assert.Equal(t, 176.0, stats.TotalHours)
	assert.Equal(t, 8.0, stats.AverageHours)
	assert.Equal(t, 100, stats.PunctualityScore)
}

func TestAggregate_PerfectAttendance(t *testing.T) {
	t.Parallel()

	window, err := report.RangeWindow(
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	var days []attendance.Day
	for i := 0; i < 22; i++ {
		days = append(days, dayOn(time.Date(2026, 6, 1+i, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 8, 0))
	}

	stats := Aggregate(days, window, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 22, stats.PresentDays)
	assert.Equal(t, 0, stats.AbsentDays)
	assert.Equal(t, 100, stats.AttendancePercentage)
}

func TestAggregate_PunctualityScore(t *testing.T) {
	t.Parallel()

	window, err := report.RangeWindow(
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	var days []attendance.Day
	for i := 0; i < 10; i++ {
		status := attendance.StatusPresent
		switch {
		case i < 2:
			status = attendance.StatusLate
		case i == 2:
			status = attendance.StatusEarlyLeave
		}
		days = append(days, dayOn(time.Date(2026, 6, 1+i, 0, 0, 0, 0, time.UTC), status, 8, 0))
	}

	stats := Aggregate(days, window, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 10, stats.PresentDays)
	assert.Equal(t, 2, stats.LateCount)
	assert.Equal(t, 1, stats.EarlyLeaveCount)
	assert.Equal(t, 70, stats.PunctualityScore)
}

func TestAggregate_PunctualityZeroWhenEveryDayFlagged(t *testing.T) {
	t.Parallel()

	window, err := report.MonthWindow(time.June, 2026)
	require.NoError(t, err)

	// the worst reachable score: every present day is late or early-leave.
	// The 0 here is arithmetic, not a clamp; a flagged day is always also
	// a present day, so the score cannot go below it.
	days := []attendance.Day{
		dayOn(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), attendance.StatusLate, 8, 0),
		dayOn(time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), attendance.StatusLate, 8, 0),
		dayOn(time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC), attendance.StatusEarlyLeave, 6, 0),
	}

	stats := Aggregate(days, window, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 3, stats.PresentDays)
	assert.Equal(t, 0, stats.PunctualityScore)
}

func TestAggregate_EmptyPeriod(t *testing.T) {
	t.Parallel()

	window, err := report.RangeWindow(
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	stats := Aggregate(nil, window, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, stats.AttendancePercentage)
	assert.Equal(t, 0, stats.PunctualityScore)
	assert.Equal(t, 0.0, stats.AverageHours)
	assert.Equal(t, 0.0, stats.TotalHours)
}

func TestAggregate_CurrentMonthCapsAbsentDaysAtToday(t *testing.T) {
	t.Parallel()

	window, err := report.MonthWindow(time.June, 2026)
	require.NoError(t, err)

	// 8 present days, viewed on June 10th: only 10 days have elapsed, so
	// absent days must be 2, not 22
	var days []attendance.Day
	for i := 0; i < 8; i++ {
		days = append(days, dayOn(time.Date(2026, 6, 1+i, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 8, 0))
	}
	today := time.Date(2026, 6, 10, 14, 0, 0, 0, time.UTC)

	stats := Aggregate(days, window, today)
	assert.Equal(t, 8, stats.PresentDays)
	assert.Equal(t, 2, stats.AbsentDays)
	assert.Equal(t, 80, stats.AttendancePercentage)
}

func TestAggregate_RangeWindowCountsStoredAbsents(t *testing.T) {
	t.Parallel()

	window, err := report.RangeWindow(
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	absent := attendance.NewDay("emp-1", "co-1", time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC))
	days := []attendance.Day{
		dayOn(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 8, 0),
		absent,
		// outside the window, ignored
		dayOn(time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 8, 0),
	}

	stats := Aggregate(days, window, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, stats.PresentDays)
	assert.Equal(t, 1, stats.AbsentDays)
	assert.Equal(t, 50, stats.AttendancePercentage)
}

func TestAggregate_HourTotalsRounded(t *testing.T) {
	t.Parallel()

	window, err := report.MonthWindow(time.June, 2026)
	require.NoError(t, err)

	days := []attendance.Day{
		dayOn(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 7.17, 0),
		dayOn(time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), attendance.StatusOvertime, 9.33, 1.33),
		dayOn(time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 8.01, 0),
	}

	stats := Aggregate(days, window, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 24.51, stats.TotalHours)
	assert.Equal(t, 1.33, stats.OvertimeHours)
	assert.Equal(t, 8.17, stats.AverageHours)
}

func TestRangeWindow_RejectsInvertedRange(t *testing.T) {
	t.Parallel()

	_, err := report.RangeWindow(
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	)
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)
}

func TestParseMonthWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	window, err := report.ParseMonthWindow("2026-06", now)
	require.NoError(t, err)
	assert.Equal(t, time.June, window.Month)
	assert.Equal(t, 2026, window.Year)

	window, err = report.ParseMonthWindow("", now)
	require.NoError(t, err)
	assert.Equal(t, time.August, window.Month)

	_, err = report.ParseMonthWindow("June 2026", now)
	assert.ErrorIs(t, err, report.ErrInvalidPeriod)
}

type countingEmployeeRepo struct {
	emp      employee.Employee
	getCalls int
}

func (f *countingEmployeeRepo) GetByID(_ context.Context, id, companyID string) (employee.Employee, error) {
	f.getCalls++
	if id != f.emp.ID || companyID != f.emp.CompanyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return f.emp, nil
}

func (f *countingEmployeeRepo) ListByCompany(_ context.Context, _ string) ([]employee.Employee, error) {
	return []employee.Employee{f.emp}, nil
}

type stubAttendanceRepo struct {
	days []attendance.Day
}

func (f *stubAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time, _ string) (*attendance.Day, error) {
	return nil, nil
}

func (f *stubAttendanceRepo) Upsert(_ context.Context, day attendance.Day) (attendance.Day, error) {
	return day, nil
}

func (f *stubAttendanceRepo) ListByEmployee(_ context.Context, _ string, _, _ time.Time, _ string) ([]attendance.Day, error) {
	return f.days, nil
}

func companyContext(t *testing.T, companyID string) context.Context {
	t.Helper()
	token := jwxjwt.New()
	require.NoError(t, token.Set("company_id", companyID))
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestMonthlySummary_LoadsEmployeeOnce(t *testing.T) {
	t.Parallel()

	base := decimal.NewFromInt(30000)
	empRepo := &countingEmployeeRepo{emp: employee.Employee{
		ID:        "emp-1",
		CompanyID: "co-1",
		FullName:  "Asha Rao",
		IsActive:  true,
		Salary:    &employee.SalaryConfig{Base: &base},
	}}
	attRepo := &stubAttendanceRepo{days: []attendance.Day{
		dayOn(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 8, 0),
		dayOn(time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC), attendance.StatusPresent, 8, 0),
		dayOn(time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC), attendance.StatusLate, 7.5, 0),
	}}

	svc := NewReportService(attRepo, empRepo,
		clock.NewFixed(time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)))

	summary, err := svc.MonthlySummary(companyContext(t, "co-1"), "emp-1", "2026-06")
	require.NoError(t, err)

	assert.Equal(t, 1, empRepo.getCalls)
	assert.Equal(t, "Asha Rao", summary.EmployeeName)
	assert.Equal(t, "2026-06", summary.Month)
	assert.Equal(t, 3, summary.Stats.PresentDays)
	// 30000/30 * 3 present days
	assert.Equal(t, "3000", summary.ProratedSalary)
}
