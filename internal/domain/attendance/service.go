package attendance

import "context"

// AttendanceService resolves per-day attendance classifications and groups
// them for presentation. Every view recomputes from the raw signals; nothing
// here is cached.
type AttendanceService interface {
	// TodaySnapshot classifies every active employee for today.
	TodaySnapshot(ctx context.Context) ([]DayRecordResponse, error)

	// SectionSnapshot classifies today for the section the given employee
	// belongs to.
	SectionSnapshot(ctx context.Context, erpID int64) (SectionSnapshotResponse, error)

	// IndividualHistory classifies one employee over an inclusive date range,
	// one record per calendar day.
	IndividualHistory(ctx context.Context, req IndividualRequest) ([]DayRecordResponse, error)

	// OrgHistory classifies all active employees over an inclusive date range.
	OrgHistory(ctx context.Context, req RangeRequest) ([]DayRecordResponse, error)

	// DetailedHistory is OrgHistory reduced to effective check-in/check-out
	// times, without the raw punch labels.
	DetailedHistory(ctx context.Context, req RangeRequest) ([]DayRecordResponse, error)

	// TeamHistory classifies the requester's reporting line: same section,
	// grade rank not above the requester's.
	TeamHistory(ctx context.Context, req TeamRequest) ([]DayRecordResponse, error)

	// SectionByDate classifies one section on one date.
	SectionByDate(ctx context.Context, req SectionRequest) ([]DayRecordResponse, error)

	// SectionByStatus filters SectionByDate down to present or absent
	// employees; any other status value returns all.
	SectionByStatus(ctx context.Context, req SectionStatusRequest) ([]DayRecordResponse, error)

	// CurrentDay returns effective punch times for one employee on one date,
	// with a Present/Absent flag derived from them.
	CurrentDay(ctx context.Context, req CurrentRequest) (CurrentDayResponse, error)

	// AddManualPunch records an admin-entered check-in/check-out pair.
	AddManualPunch(ctx context.Context, req ManualPunchRequest) error

	// UpdateManualPunch rewrites the day's pair, creating whichever half is
	// missing.
	UpdateManualPunch(ctx context.Context, req ManualPunchRequest) error
}

// ShiftAttendanceService groups resolver output by roster shift, using the
// shift-aware lateness policy.
type ShiftAttendanceService interface {
	// ListShifts returns the shifts known to the local mapping.
	ListShifts(ctx context.Context) ([]ShiftResponse, error)

	// Snapshot classifies one shift's members on one date.
	Snapshot(ctx context.Context, req ShiftDetailRequest) ([]DayRecordResponse, error)

	// History classifies one shift's members over an inclusive date range.
	History(ctx context.Context, req ShiftRangeRequest) ([]DayRecordResponse, error)
}
