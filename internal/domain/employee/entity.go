package employee

// Employee is directory data owned by the employee/org service. This module
// only reads it; writes happen elsewhere.
type Employee struct {
	ID          string
	ErpID       int64
	EmployeeKey int64 // key used by the punch capture device (hris_id)
	FullName    string
	Designation string
	Grade       string
	GradeRank   int
	SectionID   string
	Section     string

	// Username on the external shift roster, when the employee is mapped.
	RosterUsername *string

	Active bool
}
