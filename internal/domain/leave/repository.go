package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)

	// ListBySection lists requests of the given kind filed by active employees
	// in the same section as erpID, newest first.
	ListBySection(ctx context.Context, kind Kind, erpID int64) ([]Request, error)

	// SetStatusIfPending transitions a pending request and reports whether a
	// pending row with that id existed. The current status comes back either way
	// so callers can tell not-found from already-processed.
	SetStatusIfPending(ctx context.Context, id string, status Status) (updated bool, current Status, err error)

	// ListOverlapping returns intervals of the given kind that overlap
	// [from, to]. With approvedOnly set, only approved requests count — the
	// attendance resolver always sets it.
	ListOverlapping(ctx context.Context, kind Kind, from, to time.Time, approvedOnly bool) ([]Interval, error)
}
