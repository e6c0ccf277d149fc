package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/calendar"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepository{db: db}
}

// ListByRange implements calendar.HolidayRepository.
func (h *holidayRepository) ListByRange(ctx context.Context, companyID string, from, to time.Time) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, company_id, date, name, created_at, updated_at
		FROM holidays
		WHERE company_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var holiday calendar.Holiday
		err := rows.Scan(
			&holiday.ID, &holiday.CompanyID, &holiday.Date, &holiday.Name,
			&holiday.CreatedAt, &holiday.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

// Create implements calendar.HolidayRepository.
func (h *holidayRepository) Create(ctx context.Context, holiday calendar.Holiday) (calendar.Holiday, error) {
	q := GetQuerier(ctx, h.db)

	if holiday.ID == "" {
		holiday.ID = uuid.New().String()
	}

	query := `
		INSERT INTO holidays (id, company_id, date, name)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		holiday.ID, holiday.CompanyID, holiday.Date, holiday.Name,
	).Scan(&holiday.CreatedAt, &holiday.UpdatedAt)
	if err != nil {
		return calendar.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday, nil
}
