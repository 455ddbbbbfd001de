package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RangeRequest
		wantErr bool
	}{
		{"valid", RangeRequest{FromDate: "2024-01-01", ToDate: "2024-01-31"}, false},
		{"single day", RangeRequest{FromDate: "2024-01-01", ToDate: "2024-01-01"}, false},
		{"reversed", RangeRequest{FromDate: "2024-01-31", ToDate: "2024-01-01"}, true},
		{"bad from", RangeRequest{FromDate: "01/01/2024", ToDate: "2024-01-31"}, true},
		{"missing to", RangeRequest{FromDate: "2024-01-01"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIndividualRequest_Validate(t *testing.T) {
	req := IndividualRequest{
		RangeRequest: RangeRequest{FromDate: "2024-01-01", ToDate: "2024-01-31"},
	}
	assert.Error(t, req.Validate())

	req.ErpID = 42
	assert.NoError(t, req.Validate())
}

func TestManualPunchRequest_Times(t *testing.T) {
	req := ManualPunchRequest{
		EmployeeKey: 101,
		Date:        "2024-01-15",
		CheckIn:     "08:30",
		CheckOut:    "17:15:30",
	}
	require.NoError(t, req.Validate())

	checkIn, checkOut := req.Times()
	assert.Equal(t, time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC), checkIn)
	assert.Equal(t, time.Date(2024, 1, 15, 17, 15, 30, 0, time.UTC), checkOut)
}

func TestManualPunchRequest_Validate(t *testing.T) {
	req := ManualPunchRequest{
		EmployeeKey: 101,
		Date:        "2024-01-15",
		CheckIn:     "8:30 AM",
		CheckOut:    "17:00",
	}
	assert.Error(t, req.Validate())
}
