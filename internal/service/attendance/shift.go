package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/leave"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/shift"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

// ShiftAttendanceServiceImpl resolves the same classifications as the plain
// views but groups by roster shift and grades lateness against each member's
// roster window instead of the fixed deadlines.
type ShiftAttendanceServiceImpl struct {
	shift.AssignmentRepository
	roster shift.RosterClient
	attendance.PunchRepository
	leave.LeaveRequestRepository
	holiday.HolidayRepository
}

// ListShifts implements attendance.ShiftAttendanceService.
func (s *ShiftAttendanceServiceImpl) ListShifts(ctx context.Context) ([]attendance.ShiftResponse, error) {
	shifts, err := s.AssignmentRepository.ListShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]attendance.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, attendance.ShiftResponse{
			ID:      sh.ID,
			ShiftID: sh.ShiftID,
			Name:    sh.Name,
		})
	}
	return responses, nil
}

// Snapshot implements attendance.ShiftAttendanceService.
func (s *ShiftAttendanceServiceImpl) Snapshot(ctx context.Context, req attendance.ShiftDetailRequest) ([]attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, _ := validator.IsValidDate(req.Date)
	return s.resolveShiftRange(ctx, req.ShiftID, date, date, func(ctx context.Context) ([]shift.RosterEntry, error) {
		return s.roster.GetShiftDetails(ctx, req.ShiftID, req.Date)
	})
}

// History implements attendance.ShiftAttendanceService.
func (s *ShiftAttendanceServiceImpl) History(ctx context.Context, req attendance.ShiftRangeRequest) ([]attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	from, to := req.Dates()
	return s.resolveShiftRange(ctx, req.ShiftID, from, to, func(ctx context.Context) ([]shift.RosterEntry, error) {
		return s.roster.ShiftDetailed(ctx, req.ShiftID, req.FromDate, req.ToDate)
	})
}

// resolveShiftRange loads the roster window table, the shift membership, and
// the day signals concurrently, then resolves one record per (member, day).
func (s *ShiftAttendanceServiceImpl) resolveShiftRange(
	ctx context.Context,
	shiftID int64,
	from, to time.Time,
	fetchRoster func(context.Context) ([]shift.RosterEntry, error),
) ([]attendance.DayRecordResponse, error) {
	var (
		entries []shift.RosterEntry
		members []shift.Member
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		entries, err = fetchRoster(gctx)
		return err
	})
	g.Go(func() (err error) {
		members, err = s.AssignmentRepository.ListMembers(gctx, shiftID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := shift.NewWindowTable(entries)

	keys := make([]int64, 0, len(members))
	for _, m := range members {
		keys = append(keys, m.EmployeeKey)
	}

	signals, err := loadSignals(ctx, s.PunchRepository, s.LeaveRequestRepository, s.HolidayRepository, keys, from, to)
	if err != nil {
		return nil, err
	}

	var responses []attendance.DayRecordResponse
	for _, m := range members {
		for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
			responses = append(responses, toResponse(signals.resolveShiftDay(m, date, table)))
		}
	}
	return responses, nil
}

// resolveShiftDay mirrors resolveDay but grades lateness against the roster
// window and carries the shift columns.
func (s daySignals) resolveShiftDay(m shift.Member, date time.Time, table shift.WindowTable) attendance.DayRecord {
	events := s.punches[m.EmployeeKey][date.Format(dateLayout)]
	checkIn, checkOut := EffectiveTimes(events)

	status := ResolveStatus(
		len(events) > 0,
		coveringLabel(s.leaves[m.ErpID], date),
		coveringLabel(s.officials[m.ErpID], date),
		s.holidays[date.Format(dateLayout)],
	)

	window, _ := table.Window(m.RosterUsername)

	return attendance.DayRecord{
		ErpID:       m.ErpID,
		EmployeeKey: m.EmployeeKey,
		Name:        m.Name,
		Designation: m.Designation,
		Grade:       m.Grade,
		Section:     m.Section,
		Date:        date,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Punches:     PunchLabels(events),
		Status:      status,
		Lateness:    ShiftLateness(checkIn, checkOut, window),
		ShiftID:     m.ShiftID,
		ShiftName:   m.ShiftName,
		ShiftType:   table.ShiftType(m.RosterUsername),
	}
}

func NewShiftAttendanceService(
	assignmentRepo shift.AssignmentRepository,
	rosterClient shift.RosterClient,
	punchRepo attendance.PunchRepository,
	leaveRepo leave.LeaveRequestRepository,
	holidayRepo holiday.HolidayRepository,
) attendance.ShiftAttendanceService {
	return &ShiftAttendanceServiceImpl{
		AssignmentRepository:   assignmentRepo,
		roster:                 rosterClient,
		PunchRepository:        punchRepo,
		LeaveRequestRepository: leaveRepo,
		HolidayRepository:      holidayRepo,
	}
}
