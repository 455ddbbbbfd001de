package roster

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, 2*time.Second), server
}

func TestClient_GetShiftDetails_Success(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ShiftRoster/GetShiftDetails", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"User_Name": "jdoe", "Shift_Type": "Morning", "Start_Time": "09:00 AM", "End_Time": "05:00 PM"},
			{"User_Name": "asmith", "Shift_Type": "Morning", "Start_Time": "09:00 AM", "End_Time": "05:00 PM"}
		]`))
	})
	defer server.Close()

	entries, err := client.GetShiftDetails(context.Background(), 12, "2024-01-15")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "jdoe", entries[0].UserName)
	assert.Equal(t, "09:00 AM", entries[0].StartTime)
}

func TestClient_GetShiftDetails_Non200(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	_, err := client.GetShiftDetails(context.Background(), 12, "2024-01-15")
	assert.True(t, errors.Is(err, shift.ErrRosterUnavailable))
}

func TestClient_GetShiftDetails_NonListBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "something"}`))
	})
	defer server.Close()

	_, err := client.GetShiftDetails(context.Background(), 12, "2024-01-15")
	assert.True(t, errors.Is(err, shift.ErrRosterUnavailable))
}

func TestClient_GetShiftDetails_EmptyList(t *testing.T) {
	// An empty roster response is an upstream failure, not "zero shifts".
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	defer server.Close()

	_, err := client.GetShiftDetails(context.Background(), 12, "2024-01-15")
	assert.True(t, errors.Is(err, shift.ErrRosterUnavailable))
}

func TestClient_ShiftDetailed_Success(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ShiftRoster/ShiftDetailed", r.URL.Path)
		w.Write([]byte(`[{"User_Name": "jdoe", "Shift_Type": "Night", "Start_Time": "10:00 PM", "End_Time": "06:00 AM"}]`))
	})
	defer server.Close()

	entries, err := client.ShiftDetailed(context.Background(), 3, "2024-01-01", "2024-01-07")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Night", entries[0].ShiftType)
}

func TestClient_ShiftDetailed_ServerDown(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.ShiftDetailed(context.Background(), 3, "2024-01-01", "2024-01-07")
	assert.True(t, errors.Is(err, shift.ErrRosterUnavailable))
}
