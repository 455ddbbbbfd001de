package attendance

import (
	"context"
	"time"
)

type PunchRepository interface {
	// ListByEmployeeAndDate returns the day's punch events in timestamp order.
	ListByEmployeeAndDate(ctx context.Context, employeeKey int64, date time.Time) ([]PunchEvent, error)

	// ListByEmployeesAndRange returns all punch events for the given employees
	// with from <= date(timestamp) <= to, in timestamp order.
	ListByEmployeesAndRange(ctx context.Context, employeeKeys []int64, from, to time.Time) ([]PunchEvent, error)

	Create(ctx context.Context, event PunchEvent) error

	// UpdateTimestamp rewrites the timestamp of the day's event with the given
	// direction and reports whether such an event existed.
	UpdateTimestamp(ctx context.Context, employeeKey int64, date time.Time, direction Direction, ts time.Time) (bool, error)
}
