package attendance

import "errors"

// Attendance domain errors
var (
	// State machine errors
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")
	ErrBreakInProgress   = errors.New("a break is already in progress")
	ErrNoOpenBreak       = errors.New("no break is in progress")

	// General errors
	ErrInvalidInput   = errors.New("invalid input")
	ErrRecordNotFound = errors.New("attendance record not found")

	// ErrStorageFailure wraps unexpected persistence faults; the engine
	// never retries, that belongs to the storage collaborator.
	ErrStorageFailure = errors.New("storage failure")
)
