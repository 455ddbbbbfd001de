package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

// ListByEmployeeAndDate implements attendance.PunchRepository.
func (r *punchRepository) ListByEmployeeAndDate(ctx context.Context, employeeKey int64, date time.Time) ([]attendance.PunchEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_key, ts, direction, device_tag
		FROM punch_events
		WHERE employee_key = $1
		  AND ts::date = $2::date
		ORDER BY ts
	`

	rows, err := q.Query(ctx, query, employeeKey, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query punch events: %w", err)
	}
	defer rows.Close()

	var events []attendance.PunchEvent
	for rows.Next() {
		var e attendance.PunchEvent
		if err := rows.Scan(&e.ID, &e.EmployeeKey, &e.Timestamp, &e.Direction, &e.DeviceTag); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punch events: %w", err)
	}

	return events, nil
}

// ListByEmployeesAndRange implements attendance.PunchRepository.
func (r *punchRepository) ListByEmployeesAndRange(ctx context.Context, employeeKeys []int64, from, to time.Time) ([]attendance.PunchEvent, error) {
	if len(employeeKeys) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_key, ts, direction, device_tag
		FROM punch_events
		WHERE employee_key = ANY($1)
		  AND ts::date BETWEEN $2::date AND $3::date
		ORDER BY employee_key, ts
	`

	rows, err := q.Query(ctx, query, employeeKeys, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query punch events: %w", err)
	}
	defer rows.Close()

	var events []attendance.PunchEvent
	for rows.Next() {
		var e attendance.PunchEvent
		if err := rows.Scan(&e.ID, &e.EmployeeKey, &e.Timestamp, &e.Direction, &e.DeviceTag); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read punch events: %w", err)
	}

	return events, nil
}

// Create implements attendance.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, event attendance.PunchEvent) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punch_events (id, employee_key, ts, direction, device_tag)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := q.Exec(ctx, query, event.ID, event.EmployeeKey, event.Timestamp, event.Direction, event.DeviceTag); err != nil {
		return fmt.Errorf("failed to create punch event: %w", err)
	}

	return nil
}

// UpdateTimestamp implements attendance.PunchRepository.
func (r *punchRepository) UpdateTimestamp(ctx context.Context, employeeKey int64, date time.Time, direction attendance.Direction, ts time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punch_events
		SET ts = $4
		WHERE employee_key = $1
		  AND ts::date = $2::date
		  AND direction = $3
	`

	tag, err := q.Exec(ctx, query, employeeKey, date, direction, ts)
	if err != nil {
		return false, fmt.Errorf("failed to update punch event: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepository{db: db}
}
