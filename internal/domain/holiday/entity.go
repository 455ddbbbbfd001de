package holiday

import "time"

// Entry is one organization-wide non-working date. Reference data, shared by
// all employees.
type Entry struct {
	Date time.Time
	Name string
}
