package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository is the snapshot/summary store. Upserts are idempotent
// and keyed by (employee_id, work_date) and (employee_id, week_start);
// atomicity of each batch is the store's responsibility.
type TimesheetRepository interface {
	// UpsertDailySnapshots writes a batch of snapshots, replacing existing
	// rows for the same key wholesale. Returns the number of rows written.
	UpsertDailySnapshots(ctx context.Context, snapshots []DailySnapshot) (int64, error)

	// UpsertWeeklySummaries writes a batch of summaries, replacing existing
	// rows for the same key wholesale.
	UpsertWeeklySummaries(ctx context.Context, summaries []WeeklySummary) (int64, error)

	// UpdateSnapshotNotes merges generated audit notes into already-persisted
	// snapshots for one week. Employees absent from notes keep ai_notes null.
	UpdateSnapshotNotes(ctx context.Context, companyID string, weekStart time.Time, notes map[string]string) (int64, error)

	// ListSnapshots retrieves the snapshots of one week, optionally filtered
	// to a single employee, ordered by employee then work_date.
	ListSnapshots(ctx context.Context, companyID string, weekStart time.Time, employeeID *string) ([]DailySnapshot, error)

	// ListSummaries retrieves the weekly summaries of one week ordered by
	// employee.
	ListSummaries(ctx context.Context, companyID string, weekStart time.Time) ([]WeeklySummary, error)
}
