package attendance

import (
	"time"

	"github.com/compliance-hris/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// REQUEST DTOs
// ========================================

type RangeRequest struct {
	FromDate string `json:"fromdate"`
	ToDate   string `json:"todate"`
}

func (r *RangeRequest) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(r.FromDate)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "fromdate",
			Message: "fromdate must be in YYYY-MM-DD format",
		})
	}

	to, okTo := validator.IsValidDate(r.ToDate)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "todate",
			Message: "todate must be in YYYY-MM-DD format",
		})
	}

	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "todate",
			Message: "todate must not be before fromdate",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Dates returns the parsed inclusive range. Call Validate first.
func (r *RangeRequest) Dates() (time.Time, time.Time) {
	from, _ := validator.IsValidDate(r.FromDate)
	to, _ := validator.IsValidDate(r.ToDate)
	return from, to
}

type IndividualRequest struct {
	ErpID int64 `json:"erpid"`
	RangeRequest
}

func (r *IndividualRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ErpID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "erpid",
			Message: "erpid is required",
		})
	}

	if err := r.RangeRequest.Validate(); err != nil {
		if rangeErrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, rangeErrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TeamRequest struct {
	ErpID int64 `json:"erp_id"`
	RangeRequest
}

func (r *TeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ErpID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "erp_id",
			Message: "erp_id is required",
		})
	}

	if err := r.RangeRequest.Validate(); err != nil {
		if rangeErrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, rangeErrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SectionRequest struct {
	SectionID string `json:"section"`
	Date      string `json:"date"`
}

func (r *SectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SectionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "section",
			Message: "section is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SectionStatusRequest struct {
	SectionID string `json:"section"`
	Status    string `json:"status"`
	Date      string `json:"date"`
}

func (r *SectionStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SectionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "section",
			Message: "section is required",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CurrentRequest struct {
	EmployeeKey int64  `json:"empid"`
	Date        string `json:"date"`
}

func (r *CurrentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeKey <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "empid",
			Message: "empid is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ManualPunchRequest struct {
	EmployeeKey int64  `json:"employeeId"`
	Date        string `json:"date"`
	CheckIn     string `json:"checkIn"`
	CheckOut    string `json:"checkOut"`
}

func (r *ManualPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeKey <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.CheckIn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "checkIn",
			Message: "checkIn must be in HH:MM or HH:MM:SS format",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.CheckOut); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "checkOut",
			Message: "checkOut must be in HH:MM or HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Times combines the request date with the two time-of-day fields. Call
// Validate first.
func (r *ManualPunchRequest) Times() (checkIn, checkOut time.Time) {
	date, _ := validator.IsValidDate(r.Date)
	in, _ := validator.IsValidTimeOfDay(r.CheckIn)
	out, _ := validator.IsValidTimeOfDay(r.CheckOut)
	checkIn = time.Date(date.Year(), date.Month(), date.Day(), in.Hour(), in.Minute(), in.Second(), 0, time.UTC)
	checkOut = time.Date(date.Year(), date.Month(), date.Day(), out.Hour(), out.Minute(), out.Second(), 0, time.UTC)
	return checkIn, checkOut
}

type ShiftDetailRequest struct {
	ShiftID int64  `json:"shiftid"`
	Date    string `json:"date"`
}

func (r *ShiftDetailRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ShiftID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "shiftid",
			Message: "shiftid is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftRangeRequest struct {
	ShiftID int64 `json:"shiftid"`
	RangeRequest
}

func (r *ShiftRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ShiftID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "shiftid",
			Message: "shiftid is required",
		})
	}

	if err := r.RangeRequest.Validate(); err != nil {
		if rangeErrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, rangeErrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSE DTOs
// ========================================

type DayRecordResponse struct {
	ErpID        int64  `json:"erp_id"`
	Name         string `json:"name"`
	Designation  string `json:"designation"`
	Grade        string `json:"grade"`
	Section      string `json:"section"`
	Date         string `json:"date"`
	CheckinTime  string `json:"checkin_time"`
	CheckoutTime string `json:"checkout_time"`
	Punches      string `json:"status"`
	Late         string `json:"late"`
	Flag         string `json:"flag"`
	ShiftID      int64  `json:"shift_id,omitempty"`
	ShiftName    string `json:"shiftname,omitempty"`
	ShiftType    string `json:"shifttype,omitempty"`
}

type SectionSnapshotResponse struct {
	SectionID string              `json:"section_id"`
	Section   string              `json:"section"`
	Records   []DayRecordResponse `json:"records"`
}

type CurrentDayResponse struct {
	EmployeeKey  int64  `json:"user_id"`
	CheckinTime  string `json:"checkin_time"`
	CheckoutTime string `json:"checkout_time"`
	Status       string `json:"status"`
}

type ShiftResponse struct {
	ID      string `json:"id"`
	ShiftID int64  `json:"shift_id"`
	Name    string `json:"name"`
}
