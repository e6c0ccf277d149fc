package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/calendar"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

type leaveIntervalRepository struct {
	db *database.DB
}

func NewLeaveIntervalRepository(db *database.DB) calendar.LeaveIntervalRepository {
	return &leaveIntervalRepository{db: db}
}

// ListApprovedByEmployee implements calendar.LeaveIntervalRepository. Only
// approved requests become intervals; pending and rejected requests are
// invisible to the classifier.
func (l *leaveIntervalRepository) ListApprovedByEmployee(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]calendar.LeaveInterval, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lr.employee_id, lr.start_date, lr.end_date, lt.name
		FROM leave_requests lr
		LEFT JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.employee_id = $1
		  AND lr.company_id = $2
		  AND lr.status = 'approved'
		  AND lr.start_date <= $3
		  AND lr.end_date >= $4
		ORDER BY lr.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave intervals: %w", err)
	}
	defer rows.Close()

	var intervals []calendar.LeaveInterval
	for rows.Next() {
		var interval calendar.LeaveInterval
		err := rows.Scan(
			&interval.EmployeeID, &interval.StartDate, &interval.EndDate,
			&interval.LeaveTypeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave interval: %w", err)
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave intervals: %w", err)
	}

	return intervals, nil
}
