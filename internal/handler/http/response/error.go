package response

import (
	"errors"
	"net/http"

	"github.com/kelolahr/attendance-backend-go/internal/domain/attendance"
	"github.com/kelolahr/attendance-backend-go/internal/domain/auth"
	"github.com/kelolahr/attendance-backend-go/internal/domain/employee"
	"github.com/kelolahr/attendance-backend-go/internal/domain/payroll"
	"github.com/kelolahr/attendance-backend-go/internal/domain/report"
	"github.com/kelolahr/attendance-backend-go/internal/domain/shift"
	"github.com/kelolahr/attendance-backend-go/internal/domain/user"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrNoEmployeeProfile):
		BadRequest(w, "No employee profile linked to this account", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInactiveEmployee):
		Forbidden(w, "Employee is deactivated")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrBreakInProgress):
		Conflict(w, "A break is already in progress")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Not checked in today", nil)
	case errors.Is(err, attendance.ErrNoOpenBreak):
		BadRequest(w, "No break in progress", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidInput):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrStorageFailure):
		InternalServerError(w, "Storage operation failed")

	// Shift and reporting errors
	case errors.Is(err, shift.ErrInvalidShiftTiming):
		BadRequest(w, "Employee shift timing is invalid", nil)
	case errors.Is(err, report.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrMissingSalaryConfig):
		BadRequest(w, "Employee has no salary configuration", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
