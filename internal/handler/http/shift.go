package http

import (
	"encoding/json"
	"net/http"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/compliance-hris/attendance-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService attendance.ShiftAttendanceService
}

func NewShiftHandler(shiftService attendance.ShiftAttendanceService) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

// List implements ShiftHandler.
func (h *shiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.shiftService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, shifts)
}

// Details implements ShiftHandler.
func (h *shiftHandlerImpl) Details(w http.ResponseWriter, r *http.Request) {
	var req attendance.ShiftDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := h.shiftService.Snapshot(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// History implements ShiftHandler.
func (h *shiftHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	var req attendance.ShiftRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := h.shiftService.History(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
