package leave

import "time"

type Kind string

const (
	KindLeave        Kind = "leave"
	KindOfficialWork Kind = "official_work"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is an employee's leave or official-work request. Status moves from
// pending to approved or rejected exactly once; both outcomes are terminal.
type Request struct {
	ID          string
	ErpID       int64
	EmployeeKey int64
	Kind        Kind
	LeaveType   string
	StartDate   time.Time
	EndDate     time.Time
	Reason      string
	Status      Status
	HeadErpID   int64
	CreatedAt   time.Time

	// Joined directory data for listings.
	EmployeeName string
	HeadName     *string
}

// Interval is the slice of a request the attendance resolver cares about.
type Interval struct {
	ErpID     int64
	LeaveType string
	StartDate time.Time
	EndDate   time.Time
}

// Covers reports whether date falls inside the interval, endpoints included.
func (i Interval) Covers(date time.Time) bool {
	return !date.Before(i.StartDate) && !date.After(i.EndDate)
}
