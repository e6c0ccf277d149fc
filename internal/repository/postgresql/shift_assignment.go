package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/shift"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

type shiftAssignmentRepository struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &shiftAssignmentRepository{db: db}
}

// ListByEmployee implements shift.AssignmentRepository. Open ended
// assignments (NULL end_date) overlap every range that starts after their
// start date.
func (s *shiftAssignmentRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT sa.id, sa.employee_id, sa.rule_id, sa.start_date, sa.end_date,
			   sa.created_at, sa.updated_at
		FROM shift_assignments sa
		JOIN shift_rules sr ON sr.id = sa.rule_id
		WHERE sa.employee_id = $1
		  AND sr.company_id = $2
		  AND sa.start_date <= $3
		  AND (sa.end_date IS NULL OR sa.end_date >= $4)
		ORDER BY sa.start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.Assignment
	for rows.Next() {
		var assignment shift.Assignment
		err := rows.Scan(
			&assignment.ID, &assignment.EmployeeID, &assignment.RuleID,
			&assignment.StartDate, &assignment.EndDate,
			&assignment.CreatedAt, &assignment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift assignments: %w", err)
	}

	return assignments, nil
}
