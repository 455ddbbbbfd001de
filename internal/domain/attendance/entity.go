package attendance

import "time"

// Direction is the punch type reported by the capture device. The labels are
// the device's own and flow through reports unchanged.
type Direction string

const (
	DirectionCheckIn       Direction = "Checked In"
	DirectionCheckOut      Direction = "Checked Out"
	DirectionEarlyCheckOut Direction = "Early Checked Out"
)

// PunchEvent is one raw check-in/check-out event. Read-only except for manual
// corrections entered by an admin.
type PunchEvent struct {
	ID          string
	EmployeeKey int64
	Timestamp   time.Time
	Direction   Direction
	DeviceTag   *string
}

// DayRecord is the resolver's output for one (employee, date) pair. It is
// derived on every query and never persisted.
type DayRecord struct {
	ErpID       int64
	EmployeeKey int64
	Name        string
	Designation string
	Grade       string
	Section     string
	Date        time.Time
	CheckIn     *time.Time
	CheckOut    *time.Time

	// Punches is the comma-joined list of raw punch labels for the day, "-"
	// when there are none.
	Punches string

	// Status is the resolved classification: "Present", a leave-type label, a
	// holiday name, or "Absent".
	Status string

	// Lateness is "Late"/"On time"/"Early" under the fixed-deadline policy or
	// the comma-joined shift sub-labels under the shift-aware policy; "-" when
	// the day resolved to Absent or no policy input was available.
	Lateness string

	// Shift views only.
	ShiftID   int64
	ShiftName string
	ShiftType string
}
