package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/punch"
	"github.com/wagewise-hq/payweek-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

// ListForEmployeesInRange implements punch.PunchRepository. The range is
// half-open on the clock-in date: start <= clock_in < end.
func (p *punchRepository) ListForEmployeesInRange(ctx context.Context, companyID string, employeeIDs []string, start time.Time, end time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, company_id, clock_in, clock_out, created_at
		FROM punches
		WHERE company_id = $1
		  AND employee_id = ANY($2)
		  AND clock_in >= $3
		  AND clock_in < $4
		ORDER BY employee_id, clock_in, id
	`

	rows, err := q.Query(ctx, query, companyID, employeeIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var pn punch.Punch
		err := rows.Scan(
			&pn.ID, &pn.EmployeeID, &pn.CompanyID, &pn.ClockIn, &pn.ClockOut,
			&pn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, pn)
	}

	return punches, nil
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}
