package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kelolahr/attendance-backend-go/internal/domain/employee"
	"github.com/kelolahr/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, company_id, employee_code, full_name, department, position, work_location,
	is_active, shift_start_time, shift_end_time,
	base_salary, overtime_rate_per_hour, hourly_rate, bonus, deductions,
	hire_date, created_at, updated_at
`

// employeeRow carries the nullable columns that fold into the optional
// ShiftTiming and SalaryConfig blocks.
type employeeRow struct {
	shiftStart *string
	shiftEnd   *string
	baseSalary *decimal.Decimal
	overtime   *decimal.Decimal
	hourly     *decimal.Decimal
	bonus      *decimal.Decimal
	deductions *decimal.Decimal
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var extra employeeRow

	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.EmployeeCode, &emp.FullName,
		&emp.Department, &emp.Position, &emp.WorkLocation,
		&emp.IsActive, &extra.shiftStart, &extra.shiftEnd,
		&extra.baseSalary, &extra.overtime, &extra.hourly, &extra.bonus, &extra.deductions,
		&emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if extra.shiftStart != nil && extra.shiftEnd != nil {
		emp.ShiftTiming = &employee.ShiftTiming{
			StartTime: *extra.shiftStart,
			EndTime:   *extra.shiftEnd,
		}
	}

	if extra.baseSalary != nil || extra.overtime != nil || extra.hourly != nil {
		salary := &employee.SalaryConfig{
			Base:                extra.baseSalary,
			OvertimeRatePerHour: extra.overtime,
			HourlyRate:          extra.hourly,
		}
		if extra.bonus != nil {
			salary.Bonus = *extra.bonus
		}
		if extra.deductions != nil {
			salary.Deductions = *extra.deductions
		}
		emp.Salary = salary
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND company_id = $2
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// ListByCompany implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1
		ORDER BY is_active DESC, full_name ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}
