package shift

// Shift is one named shift known to the local roster mapping.
type Shift struct {
	ID      string
	ShiftID int64
	Name    string
}

// Member links a local employee to a roster account within one shift.
type Member struct {
	ErpID          int64
	EmployeeKey    int64
	Name           string
	Designation    string
	Grade          string
	GradeRank      int
	Section        string
	ShiftID        int64
	ShiftName      string
	RosterUsername string
}
