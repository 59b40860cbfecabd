package report

import "context"

// ReportService exposes per-employee aggregation to the HTTP layer.
type ReportService interface {
	// PeriodStats aggregates one employee's days over an explicit range
	PeriodStats(ctx context.Context, employeeID string, startDate, endDate string) (PeriodStats, error)

	// MonthStats aggregates one employee's days over a calendar month
	MonthStats(ctx context.Context, employeeID string, month string) (PeriodStats, error)

	// MonthlySummary is MonthStats plus the prorated-salary report figure
	MonthlySummary(ctx context.Context, employeeID string, month string) (MonthlySummary, error)
}

// CohortService exposes the cross-employee analytics.
type CohortService interface {
	// DashboardSummary: top-5 ranking by the dashboard score, at-risk rule
	// attendance < 80 or punctuality < 70
	DashboardSummary(ctx context.Context, month string) (CohortReport, error)

	// ComprehensiveReport: top-10 ranking by the comprehensive score,
	// at-risk rule attendance < 80 or late count > 5
	ComprehensiveReport(ctx context.Context, month string) (CohortReport, error)
}
