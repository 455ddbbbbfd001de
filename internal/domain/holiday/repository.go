package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// FindByDate returns nil when the date is not a holiday.
	FindByDate(ctx context.Context, date time.Time) (*Entry, error)

	// ListRange returns all holidays with from <= date <= to.
	ListRange(ctx context.Context, from, to time.Time) ([]Entry, error)

	List(ctx context.Context) ([]Entry, error)
}
