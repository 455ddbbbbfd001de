package postgresql

import (
	"context"
	"fmt"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/shift"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/database"
)

type assignmentRepository struct {
	db *database.DB
}

// ListShifts implements shift.AssignmentRepository.
func (r *assignmentRepository) ListShifts(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT ON (shift_id) id, shift_id, shift_name
		FROM shift_assignments
		ORDER BY shift_id, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(&s.ID, &s.ShiftID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shifts: %w", err)
	}

	return shifts, nil
}

// ListMembers implements shift.AssignmentRepository.
func (r *assignmentRepository) ListMembers(ctx context.Context, shiftID int64) ([]shift.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.erp_id, e.employee_key, e.full_name,
		       d.name AS designation,
		       g.name AS grade, g.rank AS grade_rank,
		       s.name AS section,
		       sa.shift_id, sa.shift_name, sa.roster_username
		FROM shift_assignments sa
		JOIN employees e ON e.erp_id = sa.erp_id
		JOIN designations d ON d.id = e.designation_id
		JOIN grades g ON g.id = e.grade_id
		JOIN sections s ON s.id = e.section_id
		WHERE sa.shift_id = $1 AND e.active
		ORDER BY g.rank DESC, e.full_name
	`

	rows, err := q.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift members: %w", err)
	}
	defer rows.Close()

	var members []shift.Member
	for rows.Next() {
		var m shift.Member
		err := rows.Scan(
			&m.ErpID, &m.EmployeeKey, &m.Name,
			&m.Designation,
			&m.Grade, &m.GradeRank,
			&m.Section,
			&m.ShiftID, &m.ShiftName, &m.RosterUsername,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shift members: %w", err)
	}

	return members, nil
}

func NewAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &assignmentRepository{db: db}
}
