package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssignmentRepo struct {
	shifts  []shift.Shift
	members []shift.Member
}

func (f *fakeAssignmentRepo) ListShifts(ctx context.Context) ([]shift.Shift, error) {
	return f.shifts, nil
}

func (f *fakeAssignmentRepo) ListMembers(ctx context.Context, shiftID int64) ([]shift.Member, error) {
	var out []shift.Member
	for _, m := range f.members {
		if m.ShiftID == shiftID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeRosterClient struct {
	entries []shift.RosterEntry
	err     error
}

func (f *fakeRosterClient) GetShiftDetails(ctx context.Context, shiftID int64, date string) ([]shift.RosterEntry, error) {
	return f.entries, f.err
}

func (f *fakeRosterClient) ShiftDetailed(ctx context.Context, shiftID int64, fromDate, toDate string) ([]shift.RosterEntry, error) {
	return f.entries, f.err
}

func newShiftTestService(t *testing.T, assignments *fakeAssignmentRepo, rosterClient *fakeRosterClient, punches *fakePunchRepo) attendance.ShiftAttendanceService {
	if punches == nil {
		punches = &fakePunchRepo{}
	}
	return NewShiftAttendanceService(assignments, rosterClient, punches, &fakeLeaveRepo{t: t}, &fakeHolidayRepo{})
}

func TestShiftSnapshot(t *testing.T) {
	assignments := &fakeAssignmentRepo{members: []shift.Member{
		{ErpID: 1, EmployeeKey: 101, Name: "A", ShiftID: 7, ShiftName: "Alpha", RosterUsername: "jdoe"},
		{ErpID: 2, EmployeeKey: 102, Name: "B", ShiftID: 7, ShiftName: "Alpha", RosterUsername: "ghost"},
	}}
	rosterClient := &fakeRosterClient{entries: []shift.RosterEntry{
		{UserName: "jdoe", ShiftType: "Morning", StartTime: "09:00 AM", EndTime: "05:00 PM"},
	}}
	punches := &fakePunchRepo{events: []attendance.PunchEvent{
		{EmployeeKey: 101, Timestamp: time.Date(2024, 1, 1, 9, 45, 0, 0, time.UTC), Direction: attendance.DirectionCheckIn},
		{EmployeeKey: 101, Timestamp: time.Date(2024, 1, 1, 16, 30, 0, 0, time.UTC), Direction: attendance.DirectionCheckOut},
		{EmployeeKey: 102, Timestamp: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), Direction: attendance.DirectionCheckIn},
	}}

	svc := newShiftTestService(t, assignments, rosterClient, punches)

	records, err := svc.Snapshot(context.Background(), attendance.ShiftDetailRequest{
		ShiftID: 7, Date: "2024-01-01",
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Member with a roster window is graded against it.
	assert.Equal(t, "Present", records[0].Flag)
	assert.Equal(t, "Late In, Early Out", records[0].Late)
	assert.Equal(t, "Morning", records[0].ShiftType)
	assert.Equal(t, int64(7), records[0].ShiftID)
	assert.Equal(t, "Alpha", records[0].ShiftName)

	// Member the roster does not know still classifies, lateness unknown.
	assert.Equal(t, "Present", records[1].Flag)
	assert.Equal(t, "-", records[1].Late)
	assert.Equal(t, "-", records[1].ShiftType)
}

func TestShiftSnapshot_RosterDown(t *testing.T) {
	assignments := &fakeAssignmentRepo{}
	rosterClient := &fakeRosterClient{err: shift.ErrRosterUnavailable}

	svc := newShiftTestService(t, assignments, rosterClient, nil)

	_, err := svc.Snapshot(context.Background(), attendance.ShiftDetailRequest{
		ShiftID: 7, Date: "2024-01-01",
	})
	assert.ErrorIs(t, err, shift.ErrRosterUnavailable)
}

func TestShiftHistory_RangeExpansion(t *testing.T) {
	assignments := &fakeAssignmentRepo{members: []shift.Member{
		{ErpID: 1, EmployeeKey: 101, Name: "A", ShiftID: 7, ShiftName: "Alpha", RosterUsername: "jdoe"},
	}}
	rosterClient := &fakeRosterClient{entries: []shift.RosterEntry{
		{UserName: "jdoe", ShiftType: "Morning", StartTime: "09:00 AM", EndTime: "05:00 PM"},
	}}

	svc := newShiftTestService(t, assignments, rosterClient, nil)

	records, err := svc.History(context.Background(), attendance.ShiftRangeRequest{
		ShiftID:      7,
		RangeRequest: attendance.RangeRequest{FromDate: "2024-01-01", ToDate: "2024-01-04"},
	})
	require.NoError(t, err)

	// 4 calendar days, no punches: Absent rows with lateness unknown.
	require.Len(t, records, 4)
	for _, r := range records {
		assert.Equal(t, "Absent", r.Flag)
		assert.Equal(t, "-", r.Late)
	}
}

func TestListShifts(t *testing.T) {
	assignments := &fakeAssignmentRepo{shifts: []shift.Shift{
		{ID: "a", ShiftID: 7, Name: "Alpha"},
		{ID: "b", ShiftID: 9, Name: "Bravo"},
	}}

	svc := newShiftTestService(t, assignments, &fakeRosterClient{}, nil)

	shifts, err := svc.ListShifts(context.Background())
	require.NoError(t, err)
	require.Len(t, shifts, 2)
	assert.Equal(t, int64(7), shifts[0].ShiftID)
	assert.Equal(t, "Bravo", shifts[1].Name)
}
