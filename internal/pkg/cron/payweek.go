package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/company"
	"github.com/wagewise-hq/payweek-backend-go/internal/domain/timesheet"
)

// PayweekJobs recomputes the closed pay week for every tenant shortly after
// it ends, so Monday morning reviews see fresh numbers.
type PayweekJobs struct {
	companyRepo      company.CompanyRepository
	timesheetService timesheet.TimesheetService
}

func NewPayweekJobs(companyRepo company.CompanyRepository, timesheetService timesheet.TimesheetService) *PayweekJobs {
	return &PayweekJobs{
		companyRepo:      companyRepo,
		timesheetService: timesheetService,
	}
}

func (j *PayweekJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("recompute_previous_payweek", 1*time.Hour, j.RecomputePreviousWeek)
}

// RecomputePreviousWeek regenerates last week's snapshots and summaries for
// every active company. Gated to Monday 02:00-02:59 UTC.
func (j *PayweekJobs) RecomputePreviousWeek(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Weekday() != time.Monday || now.Hour() != 2 {
		return nil
	}

	weekStart := PreviousWeekStart(now)
	slog.Info("Cron: Starting pay-week recompute", "week_start", weekStart.Format("2006-01-02"))

	companyIDs, err := j.companyRepo.ListActiveIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	recomputed := 0
	for _, companyID := range companyIDs {
		result, err := j.timesheetService.GenerateWeekForCompany(ctx, companyID, weekStart)
		if err != nil {
			slog.Error("Cron: Failed to recompute pay week",
				"company_id", companyID,
				"week_start", weekStart.Format("2006-01-02"),
				"error", err)
			continue
		}

		slog.Info("Cron: Recomputed pay week",
			"company_id", companyID,
			"employees", result.EmployeesProcessed,
			"snapshots", result.SnapshotsCreated)
		recomputed++
	}

	slog.Info("Cron: Pay-week recompute finished", "companies", recomputed)
	return nil
}

// PreviousWeekStart returns the Monday of the week before the one containing t.
func PreviousWeekStart(t time.Time) time.Time {
	t = t.UTC()
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	thisMonday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, -daysSinceMonday)
	return thisMonday.AddDate(0, 0, -7)
}
