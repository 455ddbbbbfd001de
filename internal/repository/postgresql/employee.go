package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/employee"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

const employeeSelect = `
	SELECT e.id, e.erp_id, e.employee_key, e.full_name,
	       d.name AS designation,
	       g.name AS grade, g.rank AS grade_rank,
	       s.id AS section_id, s.name AS section,
	       e.roster_username, e.active
	FROM employees e
	JOIN designations d ON d.id = e.designation_id
	JOIN grades g ON g.id = e.grade_id
	JOIN sections s ON s.id = e.section_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.ErpID, &e.EmployeeKey, &e.FullName,
		&e.Designation,
		&e.Grade, &e.GradeRank,
		&e.SectionID, &e.Section,
		&e.RosterUsername, &e.Active,
	)
	return e, err
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + `
	WHERE e.active
	ORDER BY g.rank DESC, e.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// GetByErpID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByErpID(ctx context.Context, erpID int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + `
	WHERE e.erp_id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, erpID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// ListSectionActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListSectionActive(ctx context.Context, sectionID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := employeeSelect + `
	WHERE e.active AND s.id = $1
	ORDER BY g.rank DESC, e.full_name
	`

	rows, err := q.Query(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query section employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// ListTeam implements employee.EmployeeRepository.
func (r *employeeRepository) ListTeam(ctx context.Context, erpID int64) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	// Same section as the requester, grade rank not above the requester's.
	query := employeeSelect + `
	WHERE e.active
	  AND s.id = (SELECT section_id FROM employees WHERE erp_id = $1)
	  AND g.rank <= (
		SELECT g2.rank FROM employees e2
		JOIN grades g2 ON g2.id = e2.grade_id
		WHERE e2.erp_id = $1
	  )
	ORDER BY g.rank DESC, e.full_name
	`

	rows, err := q.Query(ctx, query, erpID)
	if err != nil {
		return nil, fmt.Errorf("failed to query team employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}
	return employees, nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
