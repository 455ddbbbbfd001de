package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/employee"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/shift"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAttendanceService returns canned data; err, when set, wins everywhere.
type stubAttendanceService struct {
	records  []attendance.DayRecordResponse
	snapshot attendance.SectionSnapshotResponse
	current  attendance.CurrentDayResponse
	err      error
}

func (s *stubAttendanceService) TodaySnapshot(ctx context.Context) ([]attendance.DayRecordResponse, error) {
	return s.records, s.err
}

func (s *stubAttendanceService) SectionSnapshot(ctx context.Context, erpID int64) (attendance.SectionSnapshotResponse, error) {
	return s.snapshot, s.err
}

func (s *stubAttendanceService) IndividualHistory(ctx context.Context, req attendance.IndividualRequest) ([]attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.records, s.err
}

func (s *stubAttendanceService) OrgHistory(ctx context.Context, req attendance.RangeRequest) ([]attendance.DayRecordResponse, error) {
	return s.records, s.err
}

func (s *stubAttendanceService) DetailedHistory(ctx context.Context, req attendance.RangeRequest) ([]attendance.DayRecordResponse, error) {
	return s.records, s.err
}

func (s *stubAttendanceService) TeamHistory(ctx context.Context, req attendance.TeamRequest) ([]attendance.DayRecordResponse, error) {
	return s.records, s.err
}

func (s *stubAttendanceService) SectionByDate(ctx context.Context, req attendance.SectionRequest) ([]attendance.DayRecordResponse, error) {
	return s.records, s.err
}

func (s *stubAttendanceService) SectionByStatus(ctx context.Context, req attendance.SectionStatusRequest) ([]attendance.DayRecordResponse, error) {
	return s.records, s.err
}

func (s *stubAttendanceService) CurrentDay(ctx context.Context, req attendance.CurrentRequest) (attendance.CurrentDayResponse, error) {
	return s.current, s.err
}

func (s *stubAttendanceService) AddManualPunch(ctx context.Context, req attendance.ManualPunchRequest) error {
	return s.err
}

func (s *stubAttendanceService) UpdateManualPunch(ctx context.Context, req attendance.ManualPunchRequest) error {
	return s.err
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAttendanceHandler_Today(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{
		records: []attendance.DayRecordResponse{{ErpID: 1, Name: "A", Flag: "Present"}},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/today", nil)
	handler.Today(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestAttendanceHandler_History_BadBody(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/history", bytes.NewBufferString("{not json"))
	handler.History(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_Individual_ValidationError(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{})

	payload := bytes.NewBufferString(`{"erpid": 0, "fromdate": "2024-01-01", "todate": "2024-01-31"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/individual", payload)
	handler.Individual(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestAttendanceHandler_Overview_NotFound(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{err: employee.ErrEmployeeNotFound})

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("erpID", "99")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/overview/99", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	handler.Overview(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceHandler_Overview_BadID(t *testing.T) {
	handler := NewAttendanceHandler(&stubAttendanceService{})

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("erpID", "abc")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/overview/abc", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	handler.Overview(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShiftHandler_RosterDown(t *testing.T) {
	handler := NewShiftHandler(&stubShiftService{err: shift.ErrRosterUnavailable})

	payload := bytes.NewBufferString(`{"shiftid": 7, "date": "2024-01-01"}`)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shifts/details", payload)
	handler.Details(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decodeEnvelope(t, rec)
	errDetail, ok := body["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", errDetail["code"])
}

type stubShiftService struct {
	shifts  []attendance.ShiftResponse
	records []attendance.DayRecordResponse
	err     error
}

func (s *stubShiftService) ListShifts(ctx context.Context) ([]attendance.ShiftResponse, error) {
	return s.shifts, s.err
}

func (s *stubShiftService) Snapshot(ctx context.Context, req attendance.ShiftDetailRequest) ([]attendance.DayRecordResponse, error) {
	return s.records, s.err
}

func (s *stubShiftService) History(ctx context.Context, req attendance.ShiftRangeRequest) ([]attendance.DayRecordResponse, error) {
	return s.records, s.err
}
