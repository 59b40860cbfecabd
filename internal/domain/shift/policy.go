package shift

import (
	"fmt"
	"time"

	"github.com/kelolahr/attendance-backend-go/internal/domain/employee"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/validator"
)

const (
	DefaultStart = "09:00"
	DefaultEnd   = "18:00"
)

// Policy resolves an employee's expected shift window. Employees without an
// explicit shift timing fall back to the company default 09:00-18:00.
type Policy struct{}

func NewPolicy() Policy {
	return Policy{}
}

func (Policy) ExpectedStart(emp employee.Employee) string {
	if emp.ShiftTiming == nil || emp.ShiftTiming.StartTime == "" {
		return DefaultStart
	}
	return emp.ShiftTiming.StartTime
}

func (Policy) ExpectedEnd(emp employee.Employee) string {
	if emp.ShiftTiming == nil || emp.ShiftTiming.EndTime == "" {
		return DefaultEnd
	}
	return emp.ShiftTiming.EndTime
}

// StandardShiftHours is the shift length in hours. A shift whose end is not
// strictly after its start is rejected rather than reported as negative.
func (p Policy) StandardShiftHours(emp employee.Employee) (float64, error) {
	startMinutes, err := parseClock(p.ExpectedStart(emp))
	if err != nil {
		return 0, err
	}
	endMinutes, err := parseClock(p.ExpectedEnd(emp))
	if err != nil {
		return 0, err
	}
	if endMinutes <= startMinutes {
		return 0, fmt.Errorf("%w: end %q is not after start %q", ErrInvalidShiftTiming, p.ExpectedEnd(emp), p.ExpectedStart(emp))
	}
	return float64(endMinutes-startMinutes) / 60, nil
}

// StartOn anchors the expected start time to the given calendar date.
func (p Policy) StartOn(emp employee.Employee, date time.Time) (time.Time, error) {
	return clockOn(p.ExpectedStart(emp), date)
}

// EndOn anchors the expected end time to the given calendar date.
func (p Policy) EndOn(emp employee.Employee, date time.Time) (time.Time, error) {
	return clockOn(p.ExpectedEnd(emp), date)
}

func clockOn(clock string, date time.Time) (time.Time, error) {
	minutes, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location()), nil
}

func parseClock(s string) (int, error) {
	if !validator.IsValidClockTime(s) {
		return 0, fmt.Errorf("%w: %q is not a valid HH:MM time", ErrInvalidShiftTiming, s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidShiftTiming, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}
