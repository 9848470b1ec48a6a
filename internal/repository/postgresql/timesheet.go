package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/timesheet"
	"github.com/wagewise-hq/payweek-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

const upsertSnapshotQuery = `
	INSERT INTO daily_snapshots (
		employee_id, company_id, work_date, employee_type,
		raw_clock_in, raw_clock_out,
		lunch_deducted_minutes, paid_break_minutes, expected_minutes,
		paid_minutes, overtime_minutes, exceptions, ai_notes, status,
		created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
	ON CONFLICT (employee_id, work_date) DO UPDATE SET
		company_id = EXCLUDED.company_id,
		employee_type = EXCLUDED.employee_type,
		raw_clock_in = EXCLUDED.raw_clock_in,
		raw_clock_out = EXCLUDED.raw_clock_out,
		lunch_deducted_minutes = EXCLUDED.lunch_deducted_minutes,
		paid_break_minutes = EXCLUDED.paid_break_minutes,
		expected_minutes = EXCLUDED.expected_minutes,
		paid_minutes = EXCLUDED.paid_minutes,
		overtime_minutes = EXCLUDED.overtime_minutes,
		exceptions = EXCLUDED.exceptions,
		ai_notes = EXCLUDED.ai_notes,
		status = EXCLUDED.status,
		updated_at = NOW()
`

// UpsertDailySnapshots implements timesheet.TimesheetRepository. Rows are
// replaced wholesale so a rerun converges to the same state.
func (t *timesheetRepository) UpsertDailySnapshots(ctx context.Context, snapshots []timesheet.DailySnapshot) (int64, error) {
	if len(snapshots) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, t.db)

	batch := &pgx.Batch{}
	for _, snap := range snapshots {
		exceptions, err := json.Marshal(snap.Exceptions)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal exceptions: %w", err)
		}

		batch.Queue(upsertSnapshotQuery,
			snap.EmployeeID, snap.CompanyID, snap.WorkDate, snap.EmployeeType,
			snap.RawClockIn, snap.RawClockOut,
			snap.LunchDeductedMinutes, snap.PaidBreakMinutes, snap.ExpectedMinutes,
			snap.PaidMinutes, snap.OvertimeMinutes, exceptions, snap.AINotes, snap.Status,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var written int64
	for range snapshots {
		tag, err := results.Exec()
		if err != nil {
			return written, fmt.Errorf("failed to upsert daily snapshot: %w", err)
		}
		written += tag.RowsAffected()
	}

	return written, nil
}

const upsertSummaryQuery = `
	INSERT INTO weekly_summaries (
		employee_id, company_id, week_start, week_end, employee_type,
		total_paid_hours, regular_hours, overtime_hours,
		total_exceptions, status, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	ON CONFLICT (employee_id, week_start) DO UPDATE SET
		company_id = EXCLUDED.company_id,
		week_end = EXCLUDED.week_end,
		employee_type = EXCLUDED.employee_type,
		total_paid_hours = EXCLUDED.total_paid_hours,
		regular_hours = EXCLUDED.regular_hours,
		overtime_hours = EXCLUDED.overtime_hours,
		total_exceptions = EXCLUDED.total_exceptions,
		status = EXCLUDED.status,
		updated_at = NOW()
`

// UpsertWeeklySummaries implements timesheet.TimesheetRepository.
func (t *timesheetRepository) UpsertWeeklySummaries(ctx context.Context, summaries []timesheet.WeeklySummary) (int64, error) {
	if len(summaries) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, t.db)

	batch := &pgx.Batch{}
	for _, sum := range summaries {
		batch.Queue(upsertSummaryQuery,
			sum.EmployeeID, sum.CompanyID, sum.WeekStart, sum.WeekEnd, sum.EmployeeType,
			sum.TotalPaidHours, sum.RegularHours, sum.OvertimeHours,
			sum.TotalExceptions, sum.Status,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var written int64
	for range summaries {
		tag, err := results.Exec()
		if err != nil {
			return written, fmt.Errorf("failed to upsert weekly summary: %w", err)
		}
		written += tag.RowsAffected()
	}

	return written, nil
}

// UpdateSnapshotNotes implements timesheet.TimesheetRepository. Notes apply to
// every snapshot of the employee's week.
func (t *timesheetRepository) UpdateSnapshotNotes(ctx context.Context, companyID string, weekStart time.Time, notes map[string]string) (int64, error) {
	if len(notes) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, t.db)

	employeeIDs := make([]string, 0, len(notes))
	noteValues := make([]string, 0, len(notes))
	for id, note := range notes {
		employeeIDs = append(employeeIDs, id)
		noteValues = append(noteValues, note)
	}

	query := `
		UPDATE daily_snapshots AS ds
		SET ai_notes = n.note,
			updated_at = NOW()
		FROM unnest($1::text[], $2::text[]) AS n(employee_id, note)
		WHERE ds.employee_id = n.employee_id
		  AND ds.company_id = $3
		  AND ds.work_date >= $4
		  AND ds.work_date < $5
	`

	tag, err := q.Exec(ctx, query, employeeIDs, noteValues, companyID, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return 0, fmt.Errorf("failed to update snapshot notes: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ListSnapshots implements timesheet.TimesheetRepository.
func (t *timesheetRepository) ListSnapshots(ctx context.Context, companyID string, weekStart time.Time, employeeID *string) ([]timesheet.DailySnapshot, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ds.employee_id, ds.company_id, ds.work_date, ds.employee_type,
			   ds.raw_clock_in, ds.raw_clock_out,
			   ds.lunch_deducted_minutes, ds.paid_break_minutes, ds.expected_minutes,
			   ds.paid_minutes, ds.overtime_minutes, ds.exceptions, ds.ai_notes, ds.status,
			   ds.created_at, ds.updated_at,
			   e.full_name
		FROM daily_snapshots ds
		JOIN employees e ON e.id = ds.employee_id
		WHERE ds.company_id = $1
		  AND ds.work_date >= $2
		  AND ds.work_date < $3
		  AND ($4::text IS NULL OR ds.employee_id = $4)
		ORDER BY ds.employee_id, ds.work_date
	`

	rows, err := q.Query(ctx, query, companyID, weekStart, weekStart.AddDate(0, 0, 7), employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []timesheet.DailySnapshot
	for rows.Next() {
		var snap timesheet.DailySnapshot
		var exceptions []byte
		err := rows.Scan(
			&snap.EmployeeID, &snap.CompanyID, &snap.WorkDate, &snap.EmployeeType,
			&snap.RawClockIn, &snap.RawClockOut,
			&snap.LunchDeductedMinutes, &snap.PaidBreakMinutes, &snap.ExpectedMinutes,
			&snap.PaidMinutes, &snap.OvertimeMinutes, &exceptions, &snap.AINotes, &snap.Status,
			&snap.CreatedAt, &snap.UpdatedAt,
			&snap.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily snapshot: %w", err)
		}
		if len(exceptions) > 0 {
			if err := json.Unmarshal(exceptions, &snap.Exceptions); err != nil {
				return nil, fmt.Errorf("failed to unmarshal exceptions: %w", err)
			}
		}
		snapshots = append(snapshots, snap)
	}

	return snapshots, nil
}

// ListSummaries implements timesheet.TimesheetRepository.
func (t *timesheetRepository) ListSummaries(ctx context.Context, companyID string, weekStart time.Time) ([]timesheet.WeeklySummary, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT ws.employee_id, ws.company_id, ws.week_start, ws.week_end, ws.employee_type,
			   ws.total_paid_hours, ws.regular_hours, ws.overtime_hours,
			   ws.total_exceptions, ws.status, ws.created_at, ws.updated_at,
			   e.full_name
		FROM weekly_summaries ws
		JOIN employees e ON e.id = ws.employee_id
		WHERE ws.company_id = $1
		  AND ws.week_start = $2
		ORDER BY ws.employee_id
	`

	rows, err := q.Query(ctx, query, companyID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly summaries: %w", err)
	}
	defer rows.Close()

	var summaries []timesheet.WeeklySummary
	for rows.Next() {
		var sum timesheet.WeeklySummary
		err := rows.Scan(
			&sum.EmployeeID, &sum.CompanyID, &sum.WeekStart, &sum.WeekEnd, &sum.EmployeeType,
			&sum.TotalPaidHours, &sum.RegularHours, &sum.OvertimeHours,
			&sum.TotalExceptions, &sum.Status, &sum.CreatedAt, &sum.UpdatedAt,
			&sum.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weekly summary: %w", err)
		}
		summaries = append(summaries, sum)
	}

	return summaries, nil
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}
