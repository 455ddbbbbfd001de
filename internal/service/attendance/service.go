package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/employee"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/compliance-hris/attendance-backend-go/internal/domain/leave"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/database"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/compliance-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04:05"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.PunchRepository
	employee.EmployeeRepository
	leave.LeaveRequestRepository
	holiday.HolidayRepository
}

// daySignals holds everything the resolver needs for a date range, bulk
// loaded once per request.
type daySignals struct {
	punches   map[int64]map[string][]attendance.PunchEvent
	leaves    map[int64][]leave.Interval
	officials map[int64][]leave.Interval
	holidays  map[string]string
}

// loadSignals fetches the four independent inputs concurrently. Leave and
// official-work intervals are restricted to approved requests; pending or
// rejected ones never influence classification.
func loadSignals(
	ctx context.Context,
	punchRepo attendance.PunchRepository,
	leaveRepo leave.LeaveRequestRepository,
	holidayRepo holiday.HolidayRepository,
	employeeKeys []int64,
	from, to time.Time,
) (daySignals, error) {
	var (
		events    []attendance.PunchEvent
		leaves    []leave.Interval
		officials []leave.Interval
		holidays  []holiday.Entry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		events, err = punchRepo.ListByEmployeesAndRange(gctx, employeeKeys, from, to)
		return err
	})
	g.Go(func() (err error) {
		leaves, err = leaveRepo.ListOverlapping(gctx, leave.KindLeave, from, to, true)
		return err
	})
	g.Go(func() (err error) {
		officials, err = leaveRepo.ListOverlapping(gctx, leave.KindOfficialWork, from, to, true)
		return err
	})
	g.Go(func() (err error) {
		holidays, err = holidayRepo.ListRange(gctx, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("failed to load attendance signals",
			"error", err,
			"from", from.Format(dateLayout),
			"to", to.Format(dateLayout),
			"employees", len(employeeKeys),
		)
		return daySignals{}, fmt.Errorf("failed to load attendance signals: %w", err)
	}

	return newDaySignals(events, leaves, officials, holidays), nil
}

func newDaySignals(events []attendance.PunchEvent, leaves, officials []leave.Interval, holidays []holiday.Entry) daySignals {
	s := daySignals{
		punches:   make(map[int64]map[string][]attendance.PunchEvent),
		leaves:    make(map[int64][]leave.Interval),
		officials: make(map[int64][]leave.Interval),
		holidays:  make(map[string]string, len(holidays)),
	}
	for _, e := range events {
		day := e.Timestamp.Format(dateLayout)
		if s.punches[e.EmployeeKey] == nil {
			s.punches[e.EmployeeKey] = make(map[string][]attendance.PunchEvent)
		}
		s.punches[e.EmployeeKey][day] = append(s.punches[e.EmployeeKey][day], e)
	}
	for _, iv := range leaves {
		s.leaves[iv.ErpID] = append(s.leaves[iv.ErpID], iv)
	}
	for _, iv := range officials {
		s.officials[iv.ErpID] = append(s.officials[iv.ErpID], iv)
	}
	for _, h := range holidays {
		s.holidays[h.Date.Format(dateLayout)] = h.Name
	}
	return s
}

func coveringLabel(intervals []leave.Interval, date time.Time) string {
	for _, iv := range intervals {
		if iv.Covers(date) {
			return iv.LeaveType
		}
	}
	return ""
}

// resolveDay classifies one employee on one date from the preloaded signals.
func (s daySignals) resolveDay(emp employee.Employee, date time.Time) attendance.DayRecord {
	events := s.punches[emp.EmployeeKey][date.Format(dateLayout)]
	checkIn, checkOut := EffectiveTimes(events)

	status := ResolveStatus(
		len(events) > 0,
		coveringLabel(s.leaves[emp.ErpID], date),
		coveringLabel(s.officials[emp.ErpID], date),
		s.holidays[date.Format(dateLayout)],
	)

	return attendance.DayRecord{
		ErpID:       emp.ErpID,
		EmployeeKey: emp.EmployeeKey,
		Name:        emp.FullName,
		Designation: emp.Designation,
		Grade:       emp.Grade,
		Section:     emp.Section,
		Date:        date,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Punches:     PunchLabels(events),
		Status:      status,
		Lateness:    maskAbsent(status, FixedLateness(checkIn, checkOut)),
	}
}

// resolveRange produces one record per (employee, calendar day), both range
// endpoints included, days with no punches too. Employees arrive ordered by
// grade rank descending and the per-employee day loop keeps dates ascending.
func (a *AttendanceServiceImpl) resolveRange(ctx context.Context, employees []employee.Employee, from, to time.Time) ([]attendance.DayRecord, error) {
	if len(employees) == 0 {
		return nil, nil
	}

	keys := make([]int64, 0, len(employees))
	for _, emp := range employees {
		keys = append(keys, emp.EmployeeKey)
	}

	signals, err := loadSignals(ctx, a.PunchRepository, a.LeaveRequestRepository, a.HolidayRepository, keys, from, to)
	if err != nil {
		return nil, err
	}

	var records []attendance.DayRecord
	for _, emp := range employees {
		for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
			records = append(records, signals.resolveDay(emp, date))
		}
	}
	return records, nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(datetimeLayout)
}

func toResponse(r attendance.DayRecord) attendance.DayRecordResponse {
	return attendance.DayRecordResponse{
		ErpID:        r.ErpID,
		Name:         r.Name,
		Designation:  r.Designation,
		Grade:        r.Grade,
		Section:      r.Section,
		Date:         r.Date.Format(dateLayout),
		CheckinTime:  formatTime(r.CheckIn),
		CheckoutTime: formatTime(r.CheckOut),
		Punches:      r.Punches,
		Late:         r.Lateness,
		Flag:         r.Status,
		ShiftID:      r.ShiftID,
		ShiftName:    r.ShiftName,
		ShiftType:    r.ShiftType,
	}
}

func toResponses(records []attendance.DayRecord) []attendance.DayRecordResponse {
	responses := make([]attendance.DayRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, toResponse(r))
	}
	return responses
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// TodaySnapshot implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TodaySnapshot(ctx context.Context) ([]attendance.DayRecordResponse, error) {
	employees, err := a.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	d := today()
	records, err := a.resolveRange(ctx, employees, d, d)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// SectionSnapshot implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SectionSnapshot(ctx context.Context, erpID int64) (attendance.SectionSnapshotResponse, error) {
	emp, err := a.EmployeeRepository.GetByErpID(ctx, erpID)
	if err != nil {
		return attendance.SectionSnapshotResponse{}, err
	}

	members, err := a.EmployeeRepository.ListSectionActive(ctx, emp.SectionID)
	if err != nil {
		return attendance.SectionSnapshotResponse{}, fmt.Errorf("failed to list section employees: %w", err)
	}

	d := today()
	records, err := a.resolveRange(ctx, members, d, d)
	if err != nil {
		return attendance.SectionSnapshotResponse{}, err
	}

	return attendance.SectionSnapshotResponse{
		SectionID: emp.SectionID,
		Section:   emp.Section,
		Records:   toResponses(records),
	}, nil
}

// IndividualHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) IndividualHistory(ctx context.Context, req attendance.IndividualRequest) ([]attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := a.EmployeeRepository.GetByErpID(ctx, req.ErpID)
	if err != nil {
		return nil, err
	}

	from, to := req.Dates()
	records, err := a.resolveRange(ctx, []employee.Employee{emp}, from, to)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// OrgHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) OrgHistory(ctx context.Context, req attendance.RangeRequest) ([]attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := a.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	from, to := req.Dates()
	records, err := a.resolveRange(ctx, employees, from, to)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// DetailedHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DetailedHistory(ctx context.Context, req attendance.RangeRequest) ([]attendance.DayRecordResponse, error) {
	responses, err := a.OrgHistory(ctx, req)
	if err != nil {
		return nil, err
	}

	// Effective times only; the raw punch trail stays out of this view.
	for i := range responses {
		responses[i].Punches = "-"
	}
	return responses, nil
}

// TeamHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TeamHistory(ctx context.Context, req attendance.TeamRequest) ([]attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	team, err := a.EmployeeRepository.ListTeam(ctx, req.ErpID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team: %w", err)
	}

	from, to := req.Dates()
	records, err := a.resolveRange(ctx, team, from, to)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// SectionByDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SectionByDate(ctx context.Context, req attendance.SectionRequest) ([]attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	members, err := a.EmployeeRepository.ListSectionActive(ctx, req.SectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list section employees: %w", err)
	}

	date, _ := validator.IsValidDate(req.Date)
	records, err := a.resolveRange(ctx, members, date, date)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// SectionByStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SectionByStatus(ctx context.Context, req attendance.SectionStatusRequest) ([]attendance.DayRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	responses, err := a.SectionByDate(ctx, attendance.SectionRequest{SectionID: req.SectionID, Date: req.Date})
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(req.Status) {
	case "present":
		return filterByFlag(responses, func(flag string) bool { return flag == statusPresent }), nil
	case "absent":
		return filterByFlag(responses, func(flag string) bool { return flag == statusAbsent }), nil
	default:
		return responses, nil
	}
}

func filterByFlag(responses []attendance.DayRecordResponse, keep func(string) bool) []attendance.DayRecordResponse {
	filtered := make([]attendance.DayRecordResponse, 0, len(responses))
	for _, r := range responses {
		if keep(r.Flag) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// CurrentDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CurrentDay(ctx context.Context, req attendance.CurrentRequest) (attendance.CurrentDayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CurrentDayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)
	events, err := a.PunchRepository.ListByEmployeeAndDate(ctx, req.EmployeeKey, date)
	if err != nil {
		slog.Error("failed to list punch events", "error", err, "employee", req.EmployeeKey, "date", req.Date)
		return attendance.CurrentDayResponse{}, fmt.Errorf("failed to list punch events: %w", err)
	}

	checkIn, checkOut := EffectiveTimes(events)

	status := statusAbsent
	if checkIn != nil || checkOut != nil {
		status = statusPresent
	}

	return attendance.CurrentDayResponse{
		EmployeeKey:  req.EmployeeKey,
		CheckinTime:  formatTime(checkIn),
		CheckoutTime: formatTime(checkOut),
		Status:       status,
	}, nil
}

// AddManualPunch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) AddManualPunch(ctx context.Context, req attendance.ManualPunchRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	checkIn, checkOut := req.Times()

	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		in := attendance.PunchEvent{
			ID:          uuid.New().String(),
			EmployeeKey: req.EmployeeKey,
			Timestamp:   checkIn,
			Direction:   attendance.DirectionCheckIn,
		}
		if err := a.PunchRepository.Create(txCtx, in); err != nil {
			return err
		}

		out := attendance.PunchEvent{
			ID:          uuid.New().String(),
			EmployeeKey: req.EmployeeKey,
			Timestamp:   checkOut,
			Direction:   attendance.DirectionCheckOut,
		}
		return a.PunchRepository.Create(txCtx, out)
	})
}

// UpdateManualPunch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateManualPunch(ctx context.Context, req attendance.ManualPunchRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	date, _ := validator.IsValidDate(req.Date)
	checkIn, checkOut := req.Times()

	return postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.upsertPunch(txCtx, req.EmployeeKey, date, checkIn, attendance.DirectionCheckIn); err != nil {
			return err
		}
		return a.upsertPunch(txCtx, req.EmployeeKey, date, checkOut, attendance.DirectionCheckOut)
	})
}

// upsertPunch rewrites the day's punch with the given direction, creating it
// when the day has none. Check-out updates also match early check-outs so a
// correction lands on whichever form the device recorded.
func (a *AttendanceServiceImpl) upsertPunch(ctx context.Context, employeeKey int64, date, ts time.Time, direction attendance.Direction) error {
	updated, err := a.PunchRepository.UpdateTimestamp(ctx, employeeKey, date, direction, ts)
	if err != nil {
		return err
	}
	if !updated && direction == attendance.DirectionCheckOut {
		updated, err = a.PunchRepository.UpdateTimestamp(ctx, employeeKey, date, attendance.DirectionEarlyCheckOut, ts)
		if err != nil {
			return err
		}
	}
	if updated {
		return nil
	}

	return a.PunchRepository.Create(ctx, attendance.PunchEvent{
		ID:          uuid.New().String(),
		EmployeeKey: employeeKey,
		Timestamp:   ts,
		Direction:   direction,
	})
}

func NewAttendanceService(
	db *database.DB,
	punchRepo attendance.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	holidayRepo holiday.HolidayRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                     db,
		PunchRepository:        punchRepo,
		EmployeeRepository:     employeeRepo,
		LeaveRequestRepository: leaveRepo,
		HolidayRepository:      holidayRepo,
	}
}
