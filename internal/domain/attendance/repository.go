package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetByEmployeeAndDate returns the day record for a calendar date, or
	// nil when no record exists (an implicit absent day).
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*Day, error)

	// Upsert persists the full day record in one write, keyed on
	// (employee_id, date).
	Upsert(ctx context.Context, day Day) (Day, error)

	// ListByEmployee returns day records with dates in [from, to],
	// ascending by date.
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]Day, error)
}
