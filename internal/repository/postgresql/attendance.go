package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, company_id, date,
	clock_in, clock_out, break_sessions,
	total_worked_minutes, total_break_minutes, work_mode,
	created_at, updated_at
`

// ListByEmployeeAndRange implements attendance.Repository.
func (a *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	// The date column is text because the capture subsystem writes it in
	// several historical formats. The range filter matches on the date
	// prefix, which sorts lexicographically for every format in use.
	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1
		  AND company_id = $2
		  AND left(date, 10) >= $3
		  AND left(date, 10) <= $4
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID,
		from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// scanAttendanceRecord maps one row into a Record. The raw date string is
// kept verbatim; parsing failures leave Date zero so the matcher can report
// the record as malformed instead of the whole query failing.
func scanAttendanceRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var breakSessions []byte

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.RawDate,
		&rec.ClockIn, &rec.ClockOut, &breakSessions,
		&rec.TotalWorkedMinutes, &rec.TotalBreakMinutes, &rec.WorkMode,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to scan attendance record: %w", err)
	}

	if parsed, err := attendance.ParseDate(rec.RawDate); err == nil {
		rec.Date = parsed
	}

	if len(breakSessions) > 0 {
		if err := json.Unmarshal(breakSessions, &rec.BreakSessions); err != nil {
			return attendance.Record{}, fmt.Errorf("failed to decode break sessions for record %s: %w", rec.ID, err)
		}
	}

	return rec, nil
}
