package http

import (
	"net/http"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/compliance-hris/attendance-backend-go/internal/handler/http/response"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayRepo holiday.HolidayRepository
}

// NewHolidayHandler reads the holiday calendar straight from the repository;
// the endpoint is a plain reference-data listing.
func NewHolidayHandler(holidayRepo holiday.HolidayRepository) HolidayHandler {
	return &holidayHandlerImpl{
		holidayRepo: holidayRepo,
	}
}

type holidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// List implements HolidayHandler.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.holidayRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	holidays := make([]holidayResponse, 0, len(entries))
	for _, e := range entries {
		holidays = append(holidays, holidayResponse{
			Date: e.Date.Format("2006-01-02"),
			Name: e.Name,
		})
	}

	response.Success(w, holidays)
}
