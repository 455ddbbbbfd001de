package response

import (
	"errors"
	"net/http"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/employee"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/leave"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/shift"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrSectionNotFound):
		NotFound(w, "Section not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Request already processed")
	case errors.Is(err, leave.ErrUnknownAction):
		BadRequest(w, "Action must be approve or reject", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrRosterUnavailable):
		BadGateway(w, "Shift roster service unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
