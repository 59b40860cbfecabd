package report

import (
	"fmt"
	"time"
)

// PeriodStats is the derived summary of an employee's attendance days over
// a window. Never persisted.
type PeriodStats struct {
	PresentDays     int     `json:"present_days"`
	AbsentDays      int     `json:"absent_days"`
	TotalHours      float64 `json:"total_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	LateCount       int     `json:"late_count"`
	EarlyLeaveCount int     `json:"early_leave_count"`
	// AttendancePercentage is 0-100. PunctualityScore can go negative when
	// flagged days outnumber present days; it is reported as-is.
	AttendancePercentage int     `json:"attendance_percentage"`
	PunctualityScore     int     `json:"punctuality_score"`
	AverageHours         float64 `json:"average_hours"`
}

// Window selects attendance days for aggregation: either an explicit
// inclusive date range or a calendar month/year pair.
type Window struct {
	Start time.Time
	End   time.Time

	// Month/Year are set only for month windows, where absent days are
	// derived from days elapsed rather than from stored records.
	Month time.Month
	Year  int
}

func RangeWindow(start, end time.Time) (Window, error) {
	if end.Before(start) {
		return Window{}, fmt.Errorf("%w: end date before start date", ErrInvalidPeriod)
	}
	return Window{Start: start, End: end}, nil
}

func MonthWindow(month time.Month, year int) (Window, error) {
	if month < time.January || month > time.December || year < 1 {
		return Window{}, fmt.Errorf("%w: invalid month/year", ErrInvalidPeriod)
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return Window{Start: start, End: end, Month: month, Year: year}, nil
}

// ParseMonthWindow parses a "YYYY-MM" string, defaulting to the calendar
// month of now when empty.
func ParseMonthWindow(month string, now time.Time) (Window, error) {
	if month == "" {
		return MonthWindow(now.Month(), now.Year())
	}
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return Window{}, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidPeriod)
	}
	return MonthWindow(parsed.Month(), parsed.Year())
}

func (w Window) IsMonth() bool {
	return w.Month != 0
}

// Contains reports whether a calendar date falls inside the window,
// inclusive on both bounds.
func (w Window) Contains(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	s := time.Date(w.Start.Year(), w.Start.Month(), w.Start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(w.End.Year(), w.End.Month(), w.End.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(s) && !d.After(e)
}

// ========================================
// COHORT DTOs
// ========================================

// EmployeeStats pairs an employee with their aggregated period stats.
type EmployeeStats struct {
	EmployeeID   string      `json:"employee_id"`
	EmployeeName string      `json:"employee_name"`
	Department   string      `json:"department"`
	Position     string      `json:"position"`
	Stats        PeriodStats `json:"stats"`
}

// GroupSummary is the per-department or per-role rollup.
type GroupSummary struct {
	Name                 string  `json:"name"`
	EmployeeCount        int     `json:"employee_count"`
	PresentDays          int     `json:"present_days"`
	TotalHours           float64 `json:"total_hours"`
	AverageAttendancePct int     `json:"average_attendance_percentage"`
}

// RankedEmployee is one entry in the top-performer list.
type RankedEmployee struct {
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name"`
	Department       string  `json:"department"`
	PerformanceScore float64 `json:"performance_score"`
	AttendancePct    int     `json:"attendance_percentage"`
	PunctualityScore int     `json:"punctuality_score"`
}

// AtRiskEmployee carries the specific issues that triggered the flag.
type AtRiskEmployee struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Department   string   `json:"department"`
	Issues       []string `json:"issues"`
}

// CohortReport is the cross-employee analytics output. The dashboard and
// comprehensive variants differ in ranking size, scoring function and
// at-risk rule.
type CohortReport struct {
	Period        string           `json:"period"`
	EmployeeCount int              `json:"employee_count"`
	Departments   []GroupSummary   `json:"departments"`
	Roles         []GroupSummary   `json:"roles"`
	TopPerformers []RankedEmployee `json:"top_performers"`
	AtRisk        []AtRiskEmployee `json:"at_risk"`
}

// MonthlySummary is the simplified per-employee report with salary prorated
// by present days (base/30 per day).
type MonthlySummary struct {
	EmployeeID     string      `json:"employee_id"`
	EmployeeName   string      `json:"employee_name"`
	Month          string      `json:"month"`
	Stats          PeriodStats `json:"stats"`
	ProratedSalary string      `json:"prorated_salary"`
}
