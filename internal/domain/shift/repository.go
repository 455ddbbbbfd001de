package shift

import "context"

// AssignmentRepository reads the locally stored shift membership mapping
// (erp id to roster username per shift).
type AssignmentRepository interface {
	// ListShifts returns the distinct shifts present in the mapping.
	ListShifts(ctx context.Context) ([]Shift, error)

	// ListMembers returns the active employees mapped to one shift, ordered by
	// grade rank descending.
	ListMembers(ctx context.Context, shiftID int64) ([]Member, error)
}

// RosterClient talks to the external shift roster service. Both calls fail
// with ErrRosterUnavailable on transport errors, non-200 responses, and empty
// or non-list bodies.
type RosterClient interface {
	// GetShiftDetails fetches roster entries for one shift on one date
	// (YYYY-MM-DD).
	GetShiftDetails(ctx context.Context, shiftID int64, date string) ([]RosterEntry, error)

	// ShiftDetailed fetches roster entries for one shift over an inclusive
	// date range.
	ShiftDetailed(ctx context.Context, shiftID int64, fromDate, toDate string) ([]RosterEntry, error)
}
