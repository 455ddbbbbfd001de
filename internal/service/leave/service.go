package leave

import (
	"context"
	"fmt"
	"strconv"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/leave"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, kind leave.Kind, req leave.CreateRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	start, end := req.Dates()

	// Status is server-assigned; a client cannot file a pre-approved request.
	created, err := s.LeaveRequestRepository.Create(ctx, leave.Request{
		ID:          uuid.New().String(),
		ErpID:       req.ErpID,
		EmployeeKey: req.EmployeeKey,
		Kind:        kind,
		LeaveType:   req.LeaveType,
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Status:      leave.StatusPending,
		HeadErpID:   req.HeadErpID,
	})
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create %s request: %w", kind, err)
	}

	return toResponse(created), nil
}

// ListBySection implements leave.LeaveService.
func (s *LeaveServiceImpl) ListBySection(ctx context.Context, kind leave.Kind, erpID int64) ([]leave.RequestResponse, error) {
	requests, err := s.LeaveRequestRepository.ListBySection(ctx, kind, erpID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s requests: %w", kind, err)
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}
	return responses, nil
}

// Act implements leave.LeaveService.
func (s *LeaveServiceImpl) Act(ctx context.Context, req leave.ActionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	var status leave.Status
	switch req.Action {
	case "approve":
		status = leave.StatusApproved
	case "reject":
		status = leave.StatusRejected
	default:
		return leave.ErrUnknownAction
	}

	// Not-found surfaces as an error from the repository; a row that exists
	// but did not transition was already approved or rejected.
	updated, _, err := s.LeaveRequestRepository.SetStatusIfPending(ctx, req.RecordID, status)
	if err != nil {
		return err
	}
	if !updated {
		return leave.ErrAlreadyProcessed
	}

	return nil
}

func toResponse(req leave.Request) leave.RequestResponse {
	resp := leave.RequestResponse{
		ID:           req.ID,
		ErpID:        req.ErpID,
		EmployeeKey:  req.EmployeeKey,
		EmployeeName: req.EmployeeName,
		LeaveType:    req.LeaveType,
		StartDate:    req.StartDate.Format("2006-01-02"),
		EndDate:      req.EndDate.Format("2006-01-02"),
		Reason:       req.Reason,
		Status:       string(req.Status),
		CreatedAt:    req.CreatedAt.Format("2006-01-02 15:04:05"),
		HeadErpID:    strconv.FormatInt(req.HeadErpID, 10),
	}
	if req.HeadName != nil {
		resp.HeadName = *req.HeadName
	}
	return resp
}

func NewLeaveService(db *database.DB, leaveRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRepo,
	}
}
