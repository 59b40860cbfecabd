package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kelolahr/attendance-backend-go/internal/domain/attendance"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, employee_id, company_id, date, login_time, logout_time,
	is_present, status, late_minutes, early_leave_minutes, work_location,
	check_in_location, check_out_location, breaks, total_break_minutes,
	hours_worked, overtime_hours, created_at, updated_at
`

func scanDay(row pgx.Row) (attendance.Day, error) {
	var day attendance.Day
	var status string
	var checkInJSON, checkOutJSON, breaksJSON []byte

	err := row.Scan(
		&day.ID, &day.EmployeeID, &day.CompanyID, &day.Date,
		&day.LoginTime, &day.LogoutTime,
		&day.IsPresent, &status, &day.LateMinutes, &day.EarlyLeaveMinutes, &day.WorkLocation,
		&checkInJSON, &checkOutJSON, &breaksJSON, &day.TotalBreakMinutes,
		&day.HoursWorked, &day.OvertimeHours, &day.CreatedAt, &day.UpdatedAt,
	)
	if err != nil {
		return attendance.Day{}, err
	}

	day.Status = attendance.Status(status)
	if len(checkInJSON) > 0 {
		if err := json.Unmarshal(checkInJSON, &day.CheckInLocation); err != nil {
			return attendance.Day{}, fmt.Errorf("failed to decode check-in location: %w", err)
		}
	}
	if len(checkOutJSON) > 0 {
		if err := json.Unmarshal(checkOutJSON, &day.CheckOutLocation); err != nil {
			return attendance.Day{}, fmt.Errorf("failed to decode check-out location: %w", err)
		}
	}
	if len(breaksJSON) > 0 {
		if err := json.Unmarshal(breaksJSON, &day.Breaks); err != nil {
			return attendance.Day{}, fmt.Errorf("failed to decode breaks: %w", err)
		}
	}

	return day, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_days
		WHERE employee_id = $1 AND date = $2::date AND company_id = $3
	`

	day, err := scanDay(q.QueryRow(ctx, query, employeeID, date.Format("2006-01-02"), companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance day: %w", err)
	}

	return &day, nil
}

// Upsert implements attendance.AttendanceRepository. The (employee_id, date)
// unique index makes the whole day record a single-row write.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, day attendance.Day) (attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	checkInJSON, err := locationJSON(day.CheckInLocation)
	if err != nil {
		return attendance.Day{}, err
	}
	checkOutJSON, err := locationJSON(day.CheckOutLocation)
	if err != nil {
		return attendance.Day{}, err
	}
	breaks := day.Breaks
	if breaks == nil {
		breaks = []attendance.BreakInterval{}
	}
	breaksJSON, err := json.Marshal(breaks)
	if err != nil {
		return attendance.Day{}, fmt.Errorf("failed to encode breaks: %w", err)
	}

	saved := day
	if saved.ID == "" {
		saved.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance_days (
			id, employee_id, company_id, date, login_time, logout_time,
			is_present, status, late_minutes, early_leave_minutes, work_location,
			check_in_location, check_out_location, breaks, total_break_minutes,
			hours_worked, overtime_hours
		) VALUES (
			$1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			login_time = EXCLUDED.login_time,
			logout_time = EXCLUDED.logout_time,
			is_present = EXCLUDED.is_present,
			status = EXCLUDED.status,
			late_minutes = EXCLUDED.late_minutes,
			early_leave_minutes = EXCLUDED.early_leave_minutes,
			work_location = EXCLUDED.work_location,
			check_in_location = EXCLUDED.check_in_location,
			check_out_location = EXCLUDED.check_out_location,
			breaks = EXCLUDED.breaks,
			total_break_minutes = EXCLUDED.total_break_minutes,
			hours_worked = EXCLUDED.hours_worked,
			overtime_hours = EXCLUDED.overtime_hours,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		saved.ID,
		day.EmployeeID,
		day.CompanyID,
		day.Date.Format("2006-01-02"),
		day.LoginTime,
		day.LogoutTime,
		day.IsPresent,
		string(day.Status),
		day.LateMinutes,
		day.EarlyLeaveMinutes,
		day.WorkLocation,
		checkInJSON,
		checkOutJSON,
		breaksJSON,
		day.TotalBreakMinutes,
		day.HoursWorked,
		day.OvertimeHours,
	).Scan(&saved.ID, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		return attendance.Day{}, fmt.Errorf("failed to upsert attendance day: %w", err)
	}

	return saved, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]attendance.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_days
		WHERE employee_id = $1
		  AND company_id = $2
		  AND date BETWEEN $3::date AND $4::date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance days: %w", err)
	}
	defer rows.Close()

	var days []attendance.Day
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance days: %w", err)
	}

	return days, nil
}

func locationJSON(point *attendance.GeoPoint) ([]byte, error) {
	if point == nil {
		return nil, nil
	}
	data, err := json.Marshal(point)
	if err != nil {
		return nil, fmt.Errorf("failed to encode location: %w", err)
	}
	return data, nil
}
