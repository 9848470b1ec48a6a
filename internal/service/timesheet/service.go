package timesheet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/go-chi/jwtauth/v5"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/annotation"
	"github.com/wagewise-hq/payweek-backend-go/internal/domain/employee"
	"github.com/wagewise-hq/payweek-backend-go/internal/domain/punch"
	"github.com/wagewise-hq/payweek-backend-go/internal/domain/timesheet"
	"github.com/wagewise-hq/payweek-backend-go/internal/pkg/database"
	"github.com/wagewise-hq/payweek-backend-go/internal/repository/postgresql"
)

// weekdaysProcessed is the Mon..Fri slice of the pay week.
const weekdaysProcessed = 5

type TimesheetServiceImpl struct {
	db            *database.DB
	employeeRepo  employee.EmployeeRepository
	punchRepo     punch.PunchRepository
	timesheetRepo timesheet.TimesheetRepository

	// annotator is optional; nil disables enrichment entirely.
	annotator         annotation.Service
	annotationTimeout time.Duration

	builder    *SnapshotBuilder
	aggregator *WeeklyAggregator
	workers    int
}

func NewTimesheetService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	punchRepo punch.PunchRepository,
	timesheetRepo timesheet.TimesheetRepository,
	annotator annotation.Service,
	policy timesheet.WeekPolicy,
	overtime timesheet.OvertimePolicy,
	workers int,
	annotationTimeout time.Duration,
) timesheet.TimesheetService {
	if workers < 1 {
		workers = 1
	}
	return &TimesheetServiceImpl{
		db:                db,
		employeeRepo:      employeeRepo,
		punchRepo:         punchRepo,
		timesheetRepo:     timesheetRepo,
		annotator:         annotator,
		annotationTimeout: annotationTimeout,
		builder:           NewSnapshotBuilder(policy),
		aggregator:        NewWeeklyAggregator(overtime),
		workers:           workers,
	}
}

// Helper to get company_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// GenerateWeek implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GenerateWeek(ctx context.Context, req timesheet.GenerateWeekRequest) (timesheet.GenerateWeekResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.GenerateWeekResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timesheet.GenerateWeekResponse{}, err
	}

	return s.GenerateWeekForCompany(ctx, companyID, req.WeekStartDate())
}

// weekResult carries one employee's computed week out of the worker pool.
type weekResult struct {
	snapshots []timesheet.DailySnapshot
	summary   timesheet.WeeklySummary
}

// GenerateWeekForCompany implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GenerateWeekForCompany(ctx context.Context, companyID string, weekStart time.Time) (timesheet.GenerateWeekResponse, error) {
	if weekStart.Weekday() != time.Monday {
		return timesheet.GenerateWeekResponse{}, timesheet.ErrWeekStartNotMonday
	}
	weekStart = truncateToDate(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)

	response := timesheet.GenerateWeekResponse{
		RunID: uuid.NewString(),
		Week: timesheet.WeekWindow{
			Start: weekStart.Format("2006-01-02"),
			End:   weekEnd.Format("2006-01-02"),
		},
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return timesheet.GenerateWeekResponse{}, fmt.Errorf("failed to load employees: %w", err)
	}
	if len(employees) == 0 {
		return response, nil
	}

	employeeIDs := make([]string, 0, len(employees))
	for _, emp := range employees {
		employeeIDs = append(employeeIDs, emp.ID)
	}

	punches, err := s.punchRepo.ListForEmployeesInRange(ctx, companyID, employeeIDs, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return timesheet.GenerateWeekResponse{}, fmt.Errorf("failed to load punches: %w", err)
	}
	punchesByEmployee := groupPunches(punches)

	// Per-employee work is independent; results land in fixed slots so the
	// output is identical regardless of completion order.
	results := make([]weekResult, len(employees))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, emp := range employees {
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}
			results[i] = s.computeWeek(emp, weekStart, punchesByEmployee[emp.ID])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return timesheet.GenerateWeekResponse{}, fmt.Errorf("failed to compute week: %w", err)
	}

	snapshots := make([]timesheet.DailySnapshot, 0, len(employees)*weekdaysProcessed)
	summaries := make([]timesheet.WeeklySummary, 0, len(employees))
	for _, r := range results {
		snapshots = append(snapshots, r.snapshots...)
		summaries = append(summaries, r.summary)
	}

	var written int64
	persist := func(persistCtx context.Context) error {
		var err error
		written, err = s.timesheetRepo.UpsertDailySnapshots(persistCtx, snapshots)
		if err != nil {
			return fmt.Errorf("failed to upsert daily snapshots: %w", err)
		}
		if _, err := s.timesheetRepo.UpsertWeeklySummaries(persistCtx, summaries); err != nil {
			return fmt.Errorf("failed to upsert weekly summaries: %w", err)
		}
		return nil
	}

	// Snapshots and summaries commit together. Stores without a pool attached
	// manage their own atomicity.
	if s.db != nil {
		err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			return persist(context.WithValue(ctx, "tx", tx))
		})
	} else {
		err = persist(ctx)
	}
	if err != nil {
		return timesheet.GenerateWeekResponse{}, err
	}

	// Enrichment runs after persistence and never fails the run.
	s.enrichWeek(ctx, companyID, weekStart, employees, results)

	response.EmployeesProcessed = len(employees)
	response.SnapshotsCreated = int(written)
	return response, nil
}

// computeWeek builds the five weekday snapshots and folds them into a summary.
func (s *TimesheetServiceImpl) computeWeek(emp employee.Employee, weekStart time.Time, punchesByDate map[time.Time][]punch.Punch) weekResult {
	snapshots := make([]timesheet.DailySnapshot, weekdaysProcessed)
	days := make([]*timesheet.DailySnapshot, weekdaysProcessed)
	for d := 0; d < weekdaysProcessed; d++ {
		workDate := weekStart.AddDate(0, 0, d)
		snapshots[d] = s.builder.Build(emp, workDate, punchesByDate[workDate])
		days[d] = &snapshots[d]
	}

	summary := s.aggregator.Aggregate(emp, weekStart, days)
	return weekResult{snapshots: snapshots, summary: summary}
}

// enrichWeek asks the annotation collaborator for audit notes and merges them
// into the persisted snapshots. Best-effort: failures are logged and leave
// ai_notes null.
func (s *TimesheetServiceImpl) enrichWeek(ctx context.Context, companyID string, weekStart time.Time, employees []employee.Employee, results []weekResult) {
	if s.annotator == nil {
		return
	}

	digests := make([]annotation.EmployeeDigest, 0, len(employees))
	for i, emp := range employees {
		digests = append(digests, annotation.EmployeeDigest{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			Summary:      digestSummary(results[i]),
		})
	}

	annotateCtx, cancel := context.WithTimeout(ctx, s.annotationTimeout)
	defer cancel()

	notes, err := s.annotator.EnrichWeek(annotateCtx, digests)
	if err != nil {
		slog.Warn("annotation enrichment skipped", "company_id", companyID, "week_start", weekStart.Format("2006-01-02"), "error", err)
		return
	}
	if len(notes) == 0 {
		return
	}

	if _, err := s.timesheetRepo.UpdateSnapshotNotes(ctx, companyID, weekStart, notes); err != nil {
		slog.Warn("failed to merge annotation notes", "company_id", companyID, "week_start", weekStart.Format("2006-01-02"), "error", err)
	}
}

// digestSummary renders one employee's week as the free-text line handed to
// the note generator.
func digestSummary(r weekResult) string {
	flagged := 0
	missing := 0
	for _, snap := range r.snapshots {
		if len(snap.Exceptions) > 0 {
			flagged++
		}
		for _, exc := range snap.Exceptions {
			if exc.Type == timesheet.ExceptionMissingPunch {
				missing++
			}
		}
	}
	return fmt.Sprintf(
		"paid %sh (regular %sh, overtime %sh), %d exception(s) across %d flagged day(s), %d missing punch(es)",
		r.summary.TotalPaidHours, r.summary.RegularHours, r.summary.OvertimeHours,
		r.summary.TotalExceptions, flagged, missing,
	)
}

// ListSnapshots implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListSnapshots(ctx context.Context, filter timesheet.SnapshotFilter) (timesheet.ListSnapshotsResponse, error) {
	if err := filter.Validate(); err != nil {
		return timesheet.ListSnapshotsResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timesheet.ListSnapshotsResponse{}, err
	}

	weekStart, _ := time.Parse("2006-01-02", filter.WeekStart)
	snapshots, err := s.timesheetRepo.ListSnapshots(ctx, companyID, weekStart, filter.EmployeeID)
	if err != nil {
		return timesheet.ListSnapshotsResponse{}, fmt.Errorf("failed to list snapshots: %w", err)
	}

	responses := make([]timesheet.SnapshotResponse, 0, len(snapshots))
	for _, snap := range snapshots {
		responses = append(responses, mapSnapshotToResponse(snap))
	}

	return timesheet.ListSnapshotsResponse{
		Week: timesheet.WeekWindow{
			Start: weekStart.Format("2006-01-02"),
			End:   weekStart.AddDate(0, 0, 6).Format("2006-01-02"),
		},
		Snapshots: responses,
	}, nil
}

// ListSummaries implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListSummaries(ctx context.Context, weekStartStr string) (timesheet.ListSummariesResponse, error) {
	filter := timesheet.SnapshotFilter{WeekStart: weekStartStr}
	if err := filter.Validate(); err != nil {
		return timesheet.ListSummariesResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return timesheet.ListSummariesResponse{}, err
	}

	weekStart, _ := time.Parse("2006-01-02", weekStartStr)
	summaries, err := s.timesheetRepo.ListSummaries(ctx, companyID, weekStart)
	if err != nil {
		return timesheet.ListSummariesResponse{}, fmt.Errorf("failed to list summaries: %w", err)
	}

	responses := make([]timesheet.SummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		responses = append(responses, mapSummaryToResponse(sum))
	}

	return timesheet.ListSummariesResponse{
		Week: timesheet.WeekWindow{
			Start: weekStart.Format("2006-01-02"),
			End:   weekStart.AddDate(0, 0, 6).Format("2006-01-02"),
		},
		Summaries: responses,
	}, nil
}

// ========== HELPERS ==========

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// groupPunches indexes punches by employee and work date, preserving the
// store's clock-in ordering within each day.
func groupPunches(punches []punch.Punch) map[string]map[time.Time][]punch.Punch {
	grouped := make(map[string]map[time.Time][]punch.Punch)
	for _, p := range punches {
		byDate, ok := grouped[p.EmployeeID]
		if !ok {
			byDate = make(map[time.Time][]punch.Punch)
			grouped[p.EmployeeID] = byDate
		}
		date := p.WorkDate()
		byDate[date] = append(byDate[date], p)
	}
	return grouped
}

func mapSnapshotToResponse(snap timesheet.DailySnapshot) timesheet.SnapshotResponse {
	exceptions := make([]timesheet.ExceptionResponse, 0, len(snap.Exceptions))
	for _, exc := range snap.Exceptions {
		exceptions = append(exceptions, timesheet.ExceptionResponse{
			Type:       string(exc.Type),
			Message:    exc.Message,
			Confidence: exc.Confidence,
		})
	}

	return timesheet.SnapshotResponse{
		EmployeeID:           snap.EmployeeID,
		EmployeeName:         snap.EmployeeName,
		WorkDate:             snap.WorkDate.Format("2006-01-02"),
		EmployeeType:         string(snap.EmployeeType),
		RawClockIn:           timePtrToString(snap.RawClockIn),
		RawClockOut:          timePtrToString(snap.RawClockOut),
		LunchDeductedMinutes: snap.LunchDeductedMinutes,
		PaidBreakMinutes:     snap.PaidBreakMinutes,
		ExpectedMinutes:      snap.ExpectedMinutes,
		PaidMinutes:          snap.PaidMinutes,
		OvertimeMinutes:      snap.OvertimeMinutes,
		Exceptions:           exceptions,
		AINotes:              snap.AINotes,
		Status:               snap.Status,
	}
}

func mapSummaryToResponse(sum timesheet.WeeklySummary) timesheet.SummaryResponse {
	return timesheet.SummaryResponse{
		EmployeeID:      sum.EmployeeID,
		EmployeeName:    sum.EmployeeName,
		WeekStart:       sum.WeekStart.Format("2006-01-02"),
		WeekEnd:         sum.WeekEnd.Format("2006-01-02"),
		EmployeeType:    string(sum.EmployeeType),
		TotalPaidHours:  sum.TotalPaidHours,
		RegularHours:    sum.RegularHours,
		OvertimeHours:   sum.OvertimeHours,
		TotalExceptions: sum.TotalExceptions,
		Status:          sum.Status,
	}
}
