package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/compliance-hris/attendance-backend-go/internal/domain/holiday"
	"github.com/compliance-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepository struct {
	db *database.DB
}

// FindByDate implements holiday.HolidayRepository.
func (r *holidayRepository) FindByDate(ctx context.Context, date time.Time) (*holiday.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, name
		FROM public_holidays
		WHERE date = $1::date
	`

	var entry holiday.Entry
	if err := q.QueryRow(ctx, query, date).Scan(&entry.Date, &entry.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}

	return &entry, nil
}

// ListRange implements holiday.HolidayRepository.
func (r *holidayRepository) ListRange(ctx context.Context, from, to time.Time) ([]holiday.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, name
		FROM public_holidays
		WHERE date BETWEEN $1::date AND $2::date
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

// List implements holiday.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context) ([]holiday.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, name
		FROM public_holidays
		ORDER BY date
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func collectHolidays(rows pgx.Rows) ([]holiday.Entry, error) {
	var entries []holiday.Entry
	for rows.Next() {
		var entry holiday.Entry
		if err := rows.Scan(&entry.Date, &entry.Name); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays: %w", err)
	}
	return entries, nil
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}
