package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelolahr/attendance-backend-go/internal/domain/employee"
)

func TestPolicy_Defaults(t *testing.T) {
	t.Parallel()
	policy := NewPolicy()

	emp := employee.Employee{}
	assert.Equal(t, "09:00", policy.ExpectedStart(emp))
	assert.Equal(t, "18:00", policy.ExpectedEnd(emp))

	hours, err := policy.StandardShiftHours(emp)
	require.NoError(t, err)
	assert.Equal(t, 9.0, hours)
}

func TestPolicy_CustomTiming(t *testing.T) {
	t.Parallel()
	policy := NewPolicy()

	emp := employee.Employee{
		ShiftTiming: &employee.ShiftTiming{StartTime: "08:30", EndTime: "17:00"},
	}
	assert.Equal(t, "08:30", policy.ExpectedStart(emp))
	assert.Equal(t, "17:00", policy.ExpectedEnd(emp))

	hours, err := policy.StandardShiftHours(emp)
	require.NoError(t, err)
	assert.Equal(t, 8.5, hours)
}

func TestPolicy_RejectsInvertedShift(t *testing.T) {
	t.Parallel()
	policy := NewPolicy()

	emp := employee.Employee{
		ShiftTiming: &employee.ShiftTiming{StartTime: "22:00", EndTime: "06:00"},
	}
	_, err := policy.StandardShiftHours(emp)
	assert.ErrorIs(t, err, ErrInvalidShiftTiming)

	// zero-length shift is rejected too
	emp.ShiftTiming = &employee.ShiftTiming{StartTime: "09:00", EndTime: "09:00"}
	_, err = policy.StandardShiftHours(emp)
	assert.ErrorIs(t, err, ErrInvalidShiftTiming)
}

func TestPolicy_RejectsMalformedTiming(t *testing.T) {
	t.Parallel()
	policy := NewPolicy()

	emp := employee.Employee{
		ShiftTiming: &employee.ShiftTiming{StartTime: "9am", EndTime: "18:00"},
	}
	_, err := policy.StandardShiftHours(emp)
	assert.ErrorIs(t, err, ErrInvalidShiftTiming)
}

func TestPolicy_StartOnAnchorsToDate(t *testing.T) {
	t.Parallel()
	policy := NewPolicy()

	date := time.Date(2026, 3, 14, 13, 45, 0, 0, time.UTC)
	start, err := policy.StartOn(employee.Employee{}, date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC), start)

	end, err := policy.EndOn(employee.Employee{}, date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC), end)
}
