package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations. All
// mutating operations execute as a single atomic read-modify-write on the
// employee's day record.
type AttendanceService interface {
	// CheckIn records the start of the authenticated employee's working day
	CheckIn(ctx context.Context, req CheckInRequest) (Day, error)

	// CheckOut ends the working day and derives its final metrics
	CheckOut(ctx context.Context, req CheckOutRequest) (Day, error)

	// StartBreak opens a break on the current day
	StartBreak(ctx context.Context, req BreakStartRequest) (Day, error)

	// EndBreak closes the open break on the current day
	EndBreak(ctx context.Context) (Day, error)

	// BulkCheckIn checks in many employees, reporting per-employee outcomes
	BulkCheckIn(ctx context.Context, req BulkCheckInRequest) (BulkCheckInResponse, error)

	// MyAttendance lists the authenticated employee's day records
	MyAttendance(ctx context.Context, filter MyAttendanceFilter) ([]Day, error)
}
