package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/employee"
	"github.com/wagewise-hq/payweek-backend-go/internal/domain/timesheet"
	"github.com/wagewise-hq/payweek-backend-go/internal/pkg/database"
	"github.com/wagewise-hq/payweek-backend-go/internal/repository/postgresql"
)

var testDB *database.DB

// testDatabase connects once per process and skips the caller when no test
// database is configured.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository tests")
	}

	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
	}
	return testDB
}

func truncateTimesheetTables(t *testing.T, ctx context.Context, db *database.DB) {
	for _, table := range []string{"daily_snapshots", "weekly_summaries", "punches", "employees"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, id string, companyID string) {
	_, err := db.Exec(ctx, `
		INSERT INTO employees (id, company_id, full_name, department, employment_status, created_at, updated_at)
		VALUES ($1, $2, 'Test Employee', 'Fabrication', 'active', NOW(), NOW())
	`, id, companyID)
	require.NoError(t, err)
}

func sampleSnapshot(employeeID string, companyID string, workDate time.Time, paid int) timesheet.DailySnapshot {
	return timesheet.DailySnapshot{
		EmployeeID:      employeeID,
		CompanyID:       companyID,
		WorkDate:        workDate,
		EmployeeType:    employee.TypeWorkshop,
		ExpectedMinutes: 510,
		PaidMinutes:     paid,
		Exceptions:      []timesheet.Exception{},
		Status:          timesheet.SnapshotStatusAuto,
	}
}

func TestTimesheetRepository_UpsertSnapshotsIdempotent(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	truncateTimesheetTables(t, ctx, db)

	companyID := "co-repo-test"
	createTestEmployee(t, ctx, db, "emp-repo-1", companyID)

	repo := postgresql.NewTimesheetRepository(db)
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	snapshots := []timesheet.DailySnapshot{
		sampleSnapshot("emp-repo-1", companyID, weekStart, 510),
		sampleSnapshot("emp-repo-1", companyID, weekStart.AddDate(0, 0, 1), 480),
	}

	written, err := repo.UpsertDailySnapshots(ctx, snapshots)
	require.NoError(t, err)
	assert.Equal(t, int64(2), written)

	// Rerun with changed values replaces rather than duplicates
	snapshots[1].PaidMinutes = 540
	written, err = repo.UpsertDailySnapshots(ctx, snapshots)
	require.NoError(t, err)
	assert.Equal(t, int64(2), written)

	stored, err := repo.ListSnapshots(ctx, companyID, weekStart, nil)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, 540, stored[1].PaidMinutes)
}

func TestTimesheetRepository_NotesMerge(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	truncateTimesheetTables(t, ctx, db)

	companyID := "co-repo-test"
	createTestEmployee(t, ctx, db, "emp-repo-1", companyID)
	createTestEmployee(t, ctx, db, "emp-repo-2", companyID)

	repo := postgresql.NewTimesheetRepository(db)
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	_, err := repo.UpsertDailySnapshots(ctx, []timesheet.DailySnapshot{
		sampleSnapshot("emp-repo-1", companyID, weekStart, 510),
		sampleSnapshot("emp-repo-2", companyID, weekStart, 480),
	})
	require.NoError(t, err)

	updated, err := repo.UpdateSnapshotNotes(ctx, companyID, weekStart, map[string]string{
		"emp-repo-1": "clean week",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	stored, err := repo.ListSnapshots(ctx, companyID, weekStart, nil)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	require.NotNil(t, stored[0].AINotes)
	assert.Equal(t, "clean week", *stored[0].AINotes)
	assert.Nil(t, stored[1].AINotes)
}

func TestTimesheetRepository_UpsertSummaries(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	truncateTimesheetTables(t, ctx, db)

	companyID := "co-repo-test"
	createTestEmployee(t, ctx, db, "emp-repo-1", companyID)

	repo := postgresql.NewTimesheetRepository(db)
	weekStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	summary := timesheet.WeeklySummary{
		EmployeeID:     "emp-repo-1",
		CompanyID:      companyID,
		WeekStart:      weekStart,
		WeekEnd:        weekStart.AddDate(0, 0, 6),
		EmployeeType:   employee.TypeWorkshop,
		TotalPaidHours: decimal.RequireFromString("45"),
		RegularHours:   decimal.RequireFromString("44"),
		OvertimeHours:  decimal.RequireFromString("1"),
		Status:         timesheet.SummaryStatusDraft,
	}

	_, err := repo.UpsertWeeklySummaries(ctx, []timesheet.WeeklySummary{summary})
	require.NoError(t, err)

	summary.OvertimeHours = decimal.RequireFromString("2")
	summary.RegularHours = decimal.RequireFromString("43")
	_, err = repo.UpsertWeeklySummaries(ctx, []timesheet.WeeklySummary{summary})
	require.NoError(t, err)

	stored, err := repo.ListSummaries(ctx, companyID, weekStart)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].OvertimeHours.Equal(decimal.RequireFromString("2")))
	require.NotNil(t, stored[0].EmployeeName)
}
