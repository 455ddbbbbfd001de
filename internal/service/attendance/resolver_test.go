package attendance

import (
	"testing"
	"time"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
)

func ts(hour, min int) time.Time {
	return time.Date(2024, 1, 15, hour, min, 0, 0, time.UTC)
}

func tsPtr(hour, min int) *time.Time {
	t := ts(hour, min)
	return &t
}

func TestResolveStatus_PunchWins(t *testing.T) {
	// A punch beats every other signal on the same day.
	assert.Equal(t, "Present", ResolveStatus(true, "Annual Leave", "Client Visit", "New Year"))
	assert.Equal(t, "Present", ResolveStatus(true, "", "", ""))
}

func TestResolveStatus_LeaveBeatsOfficialWorkAndHoliday(t *testing.T) {
	assert.Equal(t, "Annual Leave", ResolveStatus(false, "Annual Leave", "Client Visit", "New Year"))
}

func TestResolveStatus_OfficialWorkBeatsHoliday(t *testing.T) {
	assert.Equal(t, "Client Visit", ResolveStatus(false, "", "Client Visit", "New Year"))
}

func TestResolveStatus_Holiday(t *testing.T) {
	assert.Equal(t, "New Year", ResolveStatus(false, "", "", "New Year"))
}

func TestResolveStatus_Absent(t *testing.T) {
	assert.Equal(t, "Absent", ResolveStatus(false, "", "", ""))
}

func TestEffectiveTimes(t *testing.T) {
	events := []attendance.PunchEvent{
		{Timestamp: ts(9, 30), Direction: attendance.DirectionCheckIn},
		{Timestamp: ts(8, 45), Direction: attendance.DirectionCheckIn},
		{Timestamp: ts(13, 0), Direction: attendance.DirectionEarlyCheckOut},
		{Timestamp: ts(17, 5), Direction: attendance.DirectionCheckOut},
	}

	checkIn, checkOut := EffectiveTimes(events)
	assert.Equal(t, ts(8, 45), *checkIn)
	assert.Equal(t, ts(17, 5), *checkOut)
}

func TestEffectiveTimes_EarlyCheckOutCounts(t *testing.T) {
	events := []attendance.PunchEvent{
		{Timestamp: ts(9, 0), Direction: attendance.DirectionCheckIn},
		{Timestamp: ts(13, 0), Direction: attendance.DirectionEarlyCheckOut},
	}

	_, checkOut := EffectiveTimes(events)
	assert.Equal(t, ts(13, 0), *checkOut)
}

func TestEffectiveTimes_NoPunches(t *testing.T) {
	checkIn, checkOut := EffectiveTimes(nil)
	assert.Nil(t, checkIn)
	assert.Nil(t, checkOut)
}

func TestPunchLabels(t *testing.T) {
	events := []attendance.PunchEvent{
		{Timestamp: ts(9, 0), Direction: attendance.DirectionCheckIn},
		{Timestamp: ts(17, 0), Direction: attendance.DirectionCheckOut},
	}
	assert.Equal(t, "Checked In, Checked Out", PunchLabels(events))
	assert.Equal(t, "-", PunchLabels(nil))
}

func TestFixedLateness(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
		want     string
	}{
		{"check-in at 09:15 is late", tsPtr(9, 15), tsPtr(17, 0), "Late"},
		{"check-in at 09:00 exactly is on time", tsPtr(9, 0), tsPtr(17, 0), "On time"},
		{"check-in at 08:30 is on time", tsPtr(8, 30), tsPtr(15, 0), "On time"},
		{"check-out at 14:00 is early", tsPtr(8, 30), tsPtr(14, 0), "Early"},
		{"check-out at 14:30 exactly is on time", tsPtr(8, 30), tsPtr(14, 30), "On time"},
		{"late check-in wins over early check-out", tsPtr(10, 0), tsPtr(13, 0), "Late"},
		{"no punches reads early", nil, nil, "Early"},
		{"check-out only, early", nil, tsPtr(13, 0), "Early"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FixedLateness(tt.checkIn, tt.checkOut))
		})
	}
}

func TestFixedLateness_Idempotent(t *testing.T) {
	// Same inputs always produce the same label.
	first := FixedLateness(tsPtr(9, 15), tsPtr(17, 0))
	second := FixedLateness(tsPtr(9, 15), tsPtr(17, 0))
	assert.Equal(t, first, second)
}

func TestMaskAbsent(t *testing.T) {
	assert.Equal(t, "-", maskAbsent("Absent", "Early"))
	assert.Equal(t, "Late", maskAbsent("Present", "Late"))
	assert.Equal(t, "On time", maskAbsent("Annual Leave", "On time"))
}

func mustWindow(t *testing.T, start, end string) shift.Window {
	t.Helper()
	table := shift.NewWindowTable([]shift.RosterEntry{
		{UserName: "u", ShiftType: "Morning", StartTime: start, EndTime: end},
	})
	w, ok := table.Window("u")
	assert.True(t, ok)
	return w
}

func TestShiftLateness(t *testing.T) {
	window := mustWindow(t, "09:00 AM", "05:00 PM")

	tests := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
		want     string
	}{
		{"09:20 within tolerance", tsPtr(9, 20), nil, "On Time-In"},
		{"09:30 exactly at tolerance", tsPtr(9, 30), nil, "On Time-In"},
		{"09:45 past tolerance", tsPtr(9, 45), nil, "Late In"},
		{"checkout before window end", nil, tsPtr(16, 30), "Early Out"},
		{"checkout at window end", nil, tsPtr(17, 0), "On Time-Out"},
		{"both halves joined", tsPtr(9, 45), tsPtr(16, 30), "Late In, Early Out"},
		{"no punches", nil, nil, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShiftLateness(tt.checkIn, tt.checkOut, window))
		})
	}
}

func TestShiftLateness_InvalidWindow(t *testing.T) {
	assert.Equal(t, "-", ShiftLateness(tsPtr(9, 0), tsPtr(17, 0), shift.Window{}))
}
