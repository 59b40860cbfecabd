package attendance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/kelolahr/attendance-backend-go/internal/domain/attendance"
	"github.com/kelolahr/attendance-backend-go/internal/domain/auth"
	"github.com/kelolahr/attendance-backend-go/internal/domain/employee"
	"github.com/kelolahr/attendance-backend-go/internal/domain/shift"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/clock"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/database"
	"github.com/kelolahr/attendance-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	policy         shift.Policy
	clock          clock.Clock

	// one mutex per employee so each attendance event is a single atomic
	// read-modify-write; two near-simultaneous check-ins must not both
	// succeed
	locks sync.Map
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policy shift.Policy,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		policy:         policy,
		clock:          clk,
	}
}

// claimsFromContext extracts employee_id and company_id from the JWT
func claimsFromContext(ctx context.Context) (employeeID, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", auth.ErrNoEmployeeProfile
	}

	companyID, ok = claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return employeeID, companyID, nil
}

func (a *AttendanceServiceImpl) lockFor(employeeID string) *sync.Mutex {
	mu, _ := a.locks.LoadOrStore(employeeID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// loadEmployee fetches the employee and rejects deactivated ones.
func (a *AttendanceServiceImpl) loadEmployee(ctx context.Context, employeeID, companyID string) (employee.Employee, error) {
	emp, err := a.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
		return employee.Employee{}, fmt.Errorf("%w: %v", attendance.ErrStorageFailure, err)
	}
	if !emp.IsActive {
		return employee.Employee{}, employee.ErrInactiveEmployee
	}
	return emp, nil
}

// loadDay fetches today's record, or nil when the employee has none yet.
func (a *AttendanceServiceImpl) loadDay(ctx context.Context, employeeID, companyID string, now time.Time) (*attendance.Day, error) {
	day, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, now, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrStorageFailure, err)
	}
	return day, nil
}

func (a *AttendanceServiceImpl) saveDay(ctx context.Context, day attendance.Day) (attendance.Day, error) {
	saved, err := a.attendanceRepo.Upsert(ctx, day)
	if err != nil {
		return attendance.Day{}, fmt.Errorf("%w: %v", attendance.ErrStorageFailure, err)
	}
	return saved, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.Day, error) {
	if err := req.Validate(); err != nil {
		return attendance.Day{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.Day{}, err
	}

	return a.checkInEmployee(ctx, employeeID, companyID, req.Location(), req.WorkLocation)
}

func (a *AttendanceServiceImpl) checkInEmployee(ctx context.Context, employeeID, companyID string, location *attendance.GeoPoint, workLocation string) (attendance.Day, error) {
	mu := a.lockFor(employeeID)
	mu.Lock()
	defer mu.Unlock()

	emp, err := a.loadEmployee(ctx, employeeID, companyID)
	if err != nil {
		return attendance.Day{}, err
	}

	now := a.clock.Now()
	shiftStart, err := a.policy.StartOn(emp, now)
	if err != nil {
		return attendance.Day{}, err
	}

	if workLocation == "" {
		workLocation = emp.WorkLocation
	}

	var saved attendance.Day
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := a.loadDay(txCtx, employeeID, companyID, now)
		if err != nil {
			return err
		}

		day := attendance.NewDay(employeeID, companyID, now)
		if existing != nil {
			day = *existing
		}

		if err := day.CheckIn(now, shiftStart, location, workLocation); err != nil {
			return err
		}

		saved, err = a.saveDay(txCtx, day)
		return err
	})
	if err != nil {
		return attendance.Day{}, err
	}
	return saved, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.Day, error) {
	if err := req.Validate(); err != nil {
		return attendance.Day{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.Day{}, err
	}

	mu := a.lockFor(employeeID)
	mu.Lock()
	defer mu.Unlock()

	emp, err := a.loadEmployee(ctx, employeeID, companyID)
	if err != nil {
		return attendance.Day{}, err
	}

	now := a.clock.Now()
	shiftEnd, err := a.policy.EndOn(emp, now)
	if err != nil {
		return attendance.Day{}, err
	}
	standardHours, err := a.policy.StandardShiftHours(emp)
	if err != nil {
		return attendance.Day{}, err
	}

	var saved attendance.Day
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := a.loadDay(txCtx, employeeID, companyID, now)
		if err != nil {
			return err
		}
		if existing == nil {
			return attendance.ErrNotCheckedIn
		}

		if err := existing.CheckOut(now, shiftEnd, standardHours, req.Location()); err != nil {
			return err
		}

		saved, err = a.saveDay(txCtx, *existing)
		return err
	})
	if err != nil {
		return attendance.Day{}, err
	}
	return saved, nil
}

// StartBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) StartBreak(ctx context.Context, req attendance.BreakStartRequest) (attendance.Day, error) {
	if err := req.Validate(); err != nil {
		return attendance.Day{}, err
	}

	breakType, err := attendance.ParseBreakType(req.Type)
	if err != nil {
		return attendance.Day{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.Day{}, err
	}

	mu := a.lockFor(employeeID)
	mu.Lock()
	defer mu.Unlock()

	if _, err := a.loadEmployee(ctx, employeeID, companyID); err != nil {
		return attendance.Day{}, err
	}

	now := a.clock.Now()
	var saved attendance.Day
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := a.loadDay(txCtx, employeeID, companyID, now)
		if err != nil {
			return err
		}
		if existing == nil {
			return attendance.ErrNotCheckedIn
		}

		if err := existing.StartBreak(now, breakType); err != nil {
			return err
		}

		saved, err = a.saveDay(txCtx, *existing)
		return err
	})
	if err != nil {
		return attendance.Day{}, err
	}
	return saved, nil
}

// EndBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) EndBreak(ctx context.Context) (attendance.Day, error) {
	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.Day{}, err
	}

	mu := a.lockFor(employeeID)
	mu.Lock()
	defer mu.Unlock()

	if _, err := a.loadEmployee(ctx, employeeID, companyID); err != nil {
		return attendance.Day{}, err
	}

	now := a.clock.Now()
	var saved attendance.Day
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := a.loadDay(txCtx, employeeID, companyID, now)
		if err != nil {
			return err
		}
		if existing == nil {
			return attendance.ErrNoOpenBreak
		}

		if err := existing.EndBreak(now); err != nil {
			return err
		}

		saved, err = a.saveDay(txCtx, *existing)
		return err
	})
	if err != nil {
		return attendance.Day{}, err
	}
	return saved, nil
}

// BulkCheckIn implements attendance.AttendanceService. Employees are
// processed independently: one failure never aborts or rolls back the rest.
func (a *AttendanceServiceImpl) BulkCheckIn(ctx context.Context, req attendance.BulkCheckInRequest) (attendance.BulkCheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkCheckInResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.BulkCheckInResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return attendance.BulkCheckInResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	resp := attendance.BulkCheckInResponse{
		Results: make([]attendance.BulkCheckInResult, 0, len(req.EmployeeIDs)),
	}
	for _, employeeID := range req.EmployeeIDs {
		result := attendance.BulkCheckInResult{EmployeeID: employeeID, Success: true}
		if _, err := a.checkInEmployee(ctx, employeeID, companyID, nil, req.WorkLocation); err != nil {
			result.Success = false
			result.Error = err.Error()
			resp.Failed++
		} else {
			resp.Succeeded++
		}
		resp.Processed++
		resp.Results = append(resp.Results, result)
	}

	return resp, nil
}

// MyAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) ([]attendance.Day, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now
	if filter.StartDate != "" {
		from, _ = time.Parse("2006-01-02", filter.StartDate)
	}
	if filter.EndDate != "" {
		to, _ = time.Parse("2006-01-02", filter.EndDate)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: end date before start date", attendance.ErrInvalidInput)
	}

	days, err := a.attendanceRepo.ListByEmployee(ctx, employeeID, from, to, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", attendance.ErrStorageFailure, err)
	}
	return days, nil
}
