package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/leave"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, erp_id, employee_key, kind, leave_type,
			start_date, end_date, reason, status, head_erp_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.ErpID, req.EmployeeKey, req.Kind, req.LeaveType,
		req.StartDate, req.EndDate, req.Reason, req.Status, req.HeadErpID,
	).Scan(&req.CreatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// ListBySection implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListBySection(ctx context.Context, kind leave.Kind, erpID int64) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	// Requests filed by active employees sharing the caller's section, with
	// the filer's and the approving head's names joined in.
	query := `
		SELECT lr.id, lr.erp_id, lr.employee_key, lr.kind, lr.leave_type,
		       lr.start_date, lr.end_date, lr.reason, lr.status, lr.head_erp_id,
		       lr.created_at,
		       e.full_name AS employee_name,
		       h.full_name AS head_name
		FROM leave_requests lr
		JOIN employees e ON e.erp_id = lr.erp_id
		LEFT JOIN employees h ON h.erp_id = lr.head_erp_id
		WHERE lr.kind = $1
		  AND e.active
		  AND e.section_id = (SELECT section_id FROM employees WHERE erp_id = $2)
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query, kind, erpID)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		err := rows.Scan(
			&req.ID, &req.ErpID, &req.EmployeeKey, &req.Kind, &req.LeaveType,
			&req.StartDate, &req.EndDate, &req.Reason, &req.Status, &req.HeadErpID,
			&req.CreatedAt,
			&req.EmployeeName,
			&req.HeadName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}

	return requests, nil
}

// SetStatusIfPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) SetStatusIfPending(ctx context.Context, id string, status leave.Status) (bool, leave.Status, error) {
	q := GetQuerier(ctx, r.db)

	// One round trip: attempt the guarded transition, fall back to reading the
	// current status so the caller can distinguish not-found from
	// already-processed.
	query := `
		WITH updated AS (
			UPDATE leave_requests
			SET status = $2
			WHERE id = $1 AND status = 'pending'
			RETURNING status
		)
		SELECT COALESCE(
			(SELECT status FROM updated),
			(SELECT status FROM leave_requests WHERE id = $1)
		), EXISTS (SELECT 1 FROM updated)
	`

	var current *leave.Status
	var updated bool
	if err := q.QueryRow(ctx, query, id, status).Scan(&current, &updated); err != nil {
		return false, "", fmt.Errorf("failed to update leave request: %w", err)
	}
	if current == nil {
		return false, "", leave.ErrRequestNotFound
	}

	return updated, *current, nil
}

// ListOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListOverlapping(ctx context.Context, kind leave.Kind, from, to time.Time, approvedOnly bool) ([]leave.Interval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT erp_id, leave_type, start_date, end_date
		FROM leave_requests
		WHERE kind = $1
		  AND start_date <= $3::date
		  AND end_date >= $2::date
		  AND ($4 = false OR status = 'approved')
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, kind, from, to, approvedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave intervals: %w", err)
	}
	defer rows.Close()

	var intervals []leave.Interval
	for rows.Next() {
		var iv leave.Interval
		if err := rows.Scan(&iv.ErpID, &iv.LeaveType, &iv.StartDate, &iv.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan leave interval: %w", err)
		}
		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave intervals: %w", err)
	}

	return intervals, nil
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}
