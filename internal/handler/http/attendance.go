package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/compliance-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
	Individual(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Detailed(w http.ResponseWriter, r *http.Request)
	Team(w http.ResponseWriter, r *http.Request)
	Section(w http.ResponseWriter, r *http.Request)
	SectionStatus(w http.ResponseWriter, r *http.Request)
	Current(w http.ResponseWriter, r *http.Request)
	ManualAdd(w http.ResponseWriter, r *http.Request)
	ManualUpdate(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.TodaySnapshot(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Overview implements AttendanceHandler.
func (h *attendanceHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	erpID, err := strconv.ParseInt(chi.URLParam(r, "erpID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid erp id", nil)
		return
	}

	snapshot, err := h.attendanceService.SectionSnapshot(r.Context(), erpID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, snapshot)
}

// Individual implements AttendanceHandler.
func (h *attendanceHandlerImpl) Individual(w http.ResponseWriter, r *http.Request) {
	var req attendance.IndividualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := h.attendanceService.IndividualHistory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	var req attendance.RangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := h.attendanceService.OrgHistory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Detailed implements AttendanceHandler.
func (h *attendanceHandlerImpl) Detailed(w http.ResponseWriter, r *http.Request) {
	var req attendance.RangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := h.attendanceService.DetailedHistory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Team implements AttendanceHandler.
func (h *attendanceHandlerImpl) Team(w http.ResponseWriter, r *http.Request) {
	var req attendance.TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := h.attendanceService.TeamHistory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Section implements AttendanceHandler.
func (h *attendanceHandlerImpl) Section(w http.ResponseWriter, r *http.Request) {
	var req attendance.SectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := h.attendanceService.SectionByDate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// SectionStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) SectionStatus(w http.ResponseWriter, r *http.Request) {
	var req attendance.SectionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	records, err := h.attendanceService.SectionByStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Current implements AttendanceHandler.
func (h *attendanceHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	var req attendance.CurrentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	current, err := h.attendanceService.CurrentDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, current)
}

// ManualAdd implements AttendanceHandler.
func (h *attendanceHandlerImpl) ManualAdd(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.AddManualPunch(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", nil)
}

// ManualUpdate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ManualUpdate(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.UpdateManualPunch(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", nil)
}
