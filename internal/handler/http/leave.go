package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/leave"
	"github.com/compliance-hris/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// LeaveHandler serves the same trio of routes for plain leave and for
// official work; the kind is fixed per route group.
type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListBySection(w http.ResponseWriter, r *http.Request)
	Act(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	kind         leave.Kind
	leaveService leave.LeaveService
}

func NewLeaveHandler(kind leave.Kind, leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		kind:         kind,
		leaveService: leaveService,
	}
}

// Create implements LeaveHandler.
func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.leaveService.Create(r.Context(), h.kind, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Request submitted", created)
}

// ListBySection implements LeaveHandler.
func (h *leaveHandlerImpl) ListBySection(w http.ResponseWriter, r *http.Request) {
	erpID, err := strconv.ParseInt(chi.URLParam(r, "erpID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid erp id", nil)
		return
	}

	requests, err := h.leaveService.ListBySection(r.Context(), h.kind, erpID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Act implements LeaveHandler.
func (h *leaveHandlerImpl) Act(w http.ResponseWriter, r *http.Request) {
	var req leave.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.leaveService.Act(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request processed", nil)
}
