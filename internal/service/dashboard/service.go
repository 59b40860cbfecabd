package dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/kelolahr/attendance-backend-go/internal/domain/attendance"
	"github.com/kelolahr/attendance-backend-go/internal/domain/employee"
	reportdomain "github.com/kelolahr/attendance-backend-go/internal/domain/report"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/clock"
	reportsvc "github.com/kelolahr/attendance-backend-go/internal/service/report"
)

const (
	dashboardTopN = 5
	reportTopN    = 10
)

// DashboardScore weighs attendance against punctuality for the quick
// dashboard ranking.
func DashboardScore(stats reportdomain.PeriodStats) float64 {
	return 0.7*float64(stats.AttendancePercentage) + 0.3*float64(stats.PunctualityScore)
}

// ComprehensiveScore additionally credits logged hours, capped at a
// 160-hour month.
func ComprehensiveScore(stats reportdomain.PeriodStats) float64 {
	hoursRatio := stats.TotalHours / 160
	if hoursRatio > 1 {
		hoursRatio = 1
	}
	return 0.4*float64(stats.AttendancePercentage) +
		0.3*float64(stats.PunctualityScore) +
		0.3*hoursRatio*100
}

// dashboardRisk flags low attendance or low punctuality.
func dashboardRisk(stats reportdomain.PeriodStats) []string {
	var issues []string
	if stats.AttendancePercentage < 80 {
		issues = append(issues, fmt.Sprintf("attendance at %d%%, below 80%%", stats.AttendancePercentage))
	}
	if stats.PunctualityScore < 70 {
		issues = append(issues, fmt.Sprintf("punctuality score %d, below 70", stats.PunctualityScore))
	}
	return issues
}

// reportRisk flags low attendance or habitual lateness.
func reportRisk(stats reportdomain.PeriodStats) []string {
	var issues []string
	if stats.AttendancePercentage < 80 {
		issues = append(issues, fmt.Sprintf("attendance at %d%%, below 80%%", stats.AttendancePercentage))
	}
	if stats.LateCount > 5 {
		issues = append(issues, fmt.Sprintf("late %d times this period", stats.LateCount))
	}
	return issues
}

// Summarize folds per-employee stats into the cohort report. Pure; the
// scoring function and at-risk rule select the dashboard or comprehensive
// variant.
func Summarize(
	perEmployee []reportdomain.EmployeeStats,
	topN int,
	score func(reportdomain.PeriodStats) float64,
	risk func(reportdomain.PeriodStats) []string,
	period string,
) reportdomain.CohortReport {
	cohort := reportdomain.CohortReport{
		Period:        period,
		EmployeeCount: len(perEmployee),
		Departments:   groupBy(perEmployee, func(e reportdomain.EmployeeStats) string { return e.Department }),
		Roles:         groupBy(perEmployee, func(e reportdomain.EmployeeStats) string { return e.Position }),
		TopPerformers: []reportdomain.RankedEmployee{},
		AtRisk:        []reportdomain.AtRiskEmployee{},
	}

	ranked := make([]reportdomain.RankedEmployee, 0, len(perEmployee))
	for _, entry := range perEmployee {
		ranked = append(ranked, reportdomain.RankedEmployee{
			EmployeeID:       entry.EmployeeID,
			EmployeeName:     entry.EmployeeName,
			Department:       entry.Department,
			PerformanceScore: score(entry.Stats),
			AttendancePct:    entry.Stats.AttendancePercentage,
			PunctualityScore: entry.Stats.PunctualityScore,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].PerformanceScore != ranked[j].PerformanceScore {
			return ranked[i].PerformanceScore > ranked[j].PerformanceScore
		}
		return ranked[i].EmployeeName < ranked[j].EmployeeName
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	cohort.TopPerformers = ranked

	for _, entry := range perEmployee {
		issues := risk(entry.Stats)
		if len(issues) == 0 {
			continue
		}
		cohort.AtRisk = append(cohort.AtRisk, reportdomain.AtRiskEmployee{
			EmployeeID:   entry.EmployeeID,
			EmployeeName: entry.EmployeeName,
			Department:   entry.Department,
			Issues:       issues,
		})
	}

	return cohort
}

func groupBy(perEmployee []reportdomain.EmployeeStats, key func(reportdomain.EmployeeStats) string) []reportdomain.GroupSummary {
	groups := make(map[string]*reportdomain.GroupSummary)
	attendanceSums := make(map[string]int)
	for _, entry := range perEmployee {
		name := key(entry)
		if name == "" {
			name = "unassigned"
		}
		group, ok := groups[name]
		if !ok {
			group = &reportdomain.GroupSummary{Name: name}
			groups[name] = group
		}
		group.EmployeeCount++
		group.PresentDays += entry.Stats.PresentDays
		group.TotalHours += entry.Stats.TotalHours
		attendanceSums[name] += entry.Stats.AttendancePercentage
	}

	result := make([]reportdomain.GroupSummary, 0, len(groups))
	for name, group := range groups {
		group.AverageAttendancePct = roundPct(float64(attendanceSums[name]) / float64(group.EmployeeCount))
		result = append(result, *group)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func roundPct(v float64) int {
	return int(math.Round(v))
}

type CohortServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	clock          clock.Clock
}

func NewCohortService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) reportdomain.CohortService {
	return &CohortServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clk,
	}
}

// DashboardSummary implements report.CohortService.
func (s *CohortServiceImpl) DashboardSummary(ctx context.Context, month string) (reportdomain.CohortReport, error) {
	perEmployee, period, err := s.collect(ctx, month)
	if err != nil {
		return reportdomain.CohortReport{}, err
	}
	return Summarize(perEmployee, dashboardTopN, DashboardScore, dashboardRisk, period), nil
}

// ComprehensiveReport implements report.CohortService.
func (s *CohortServiceImpl) ComprehensiveReport(ctx context.Context, month string) (reportdomain.CohortReport, error) {
	perEmployee, period, err := s.collect(ctx, month)
	if err != nil {
		return reportdomain.CohortReport{}, err
	}
	return Summarize(perEmployee, reportTopN, ComprehensiveScore, reportRisk, period), nil
}

// collect aggregates the month's stats for every employee in the company,
// fanning out over a bounded worker group. Reads only, no coordination
// with the mutation path.
func (s *CohortServiceImpl) collect(ctx context.Context, month string) ([]reportdomain.EmployeeStats, string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return nil, "", fmt.Errorf("company_id claim is missing or invalid")
	}

	now := s.clock.Now()
	window, err := reportdomain.ParseMonthWindow(month, now)
	if err != nil {
		return nil, "", err
	}

	employees, err := s.employeeRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list employees: %w", err)
	}

	perEmployee := make([]reportdomain.EmployeeStats, len(employees))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			days, err := s.attendanceRepo.ListByEmployee(gCtx, emp.ID, window.Start, window.End, companyID)
			if err != nil {
				return fmt.Errorf("failed to list attendance for %s: %w", emp.ID, err)
			}
			perEmployee[i] = reportdomain.EmployeeStats{
				EmployeeID:   emp.ID,
				EmployeeName: emp.FullName,
				Department:   emp.Department,
				Position:     emp.Position,
				Stats:        reportsvc.Aggregate(days, window, now),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	return perEmployee, window.Start.Format("2006-01"), nil
}
