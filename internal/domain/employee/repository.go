package employee

import "context"

// EmployeeRepository reads the org directory. All listings return active
// employees only, ordered by grade rank descending the way the reports
// expect them.
type EmployeeRepository interface {
	// ListActive returns every active employee.
	ListActive(ctx context.Context) ([]Employee, error)

	// GetByErpID returns one employee, active or not.
	GetByErpID(ctx context.Context, erpID int64) (Employee, error)

	// ListSectionActive returns the active employees of one section.
	ListSectionActive(ctx context.Context, sectionID string) ([]Employee, error)

	// ListTeam returns the active employees in the requester's section whose
	// grade rank does not exceed the requester's.
	ListTeam(ctx context.Context, erpID int64) ([]Employee, error)
}
