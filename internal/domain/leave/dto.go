package leave

import (
	"time"

	"github.com/compliance-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	ErpID       int64  `json:"erp_id"`
	EmployeeKey int64  `json:"employee_id"`
	HeadErpID   int64  `json:"head_erpid"`
	LeaveType   string `json:"leave_type"`
	Reason      string `json:"reason"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ErpID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "erp_id",
			Message: "erp_id is required",
		})
	}

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed interval. Call Validate first.
func (r *CreateRequest) Dates() (time.Time, time.Time) {
	start, _ := validator.IsValidDate(r.StartDate)
	end, _ := validator.IsValidDate(r.EndDate)
	return start, end
}

type ActionRequest struct {
	RecordID string `json:"recordid"`
	Action   string `json:"action"`
}

func (r *ActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "recordid",
			Message: "recordid is required",
		})
	}

	if !validator.IsInSlice(r.Action, []string{"approve", "reject"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be approve or reject",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID           string `json:"id"`
	ErpID        int64  `json:"erp_id"`
	EmployeeKey  int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	HeadErpID    string `json:"head_erpid"`
	HeadName     string `json:"head_name,omitempty"`
}
