package timesheet

import (
	"context"
	"time"
)

// TimesheetService defines business logic for pay-week computation
type TimesheetService interface {
	// GenerateWeek recomputes one company's pay week from raw punches. The
	// company is resolved from the authenticated context.
	GenerateWeek(ctx context.Context, req GenerateWeekRequest) (GenerateWeekResponse, error)

	// GenerateWeekForCompany is the tenancy-explicit variant used by
	// background jobs.
	GenerateWeekForCompany(ctx context.Context, companyID string, weekStart time.Time) (GenerateWeekResponse, error)

	// ListSnapshots retrieves persisted daily snapshots for one week
	ListSnapshots(ctx context.Context, filter SnapshotFilter) (ListSnapshotsResponse, error)

	// ListSummaries retrieves persisted weekly summaries for one week
	ListSummaries(ctx context.Context, weekStart string) (ListSummariesResponse, error)
}
