package timesheet

import (
	"time"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/employee"
	"github.com/wagewise-hq/payweek-backend-go/internal/domain/timesheet"
)

// WeeklyAggregator folds the five weekday snapshots of one employee into a
// WeeklySummary, mutating per-day overtime fields through the injected
// overtime policy.
type WeeklyAggregator struct {
	overtime timesheet.OvertimePolicy
}

func NewWeeklyAggregator(overtime timesheet.OvertimePolicy) *WeeklyAggregator {
	return &WeeklyAggregator{overtime: overtime}
}

// Aggregate expects days in chronological order (Mon..Fri). The exception
// total is counted after overtime allocation has appended its exceptions.
func (a *WeeklyAggregator) Aggregate(emp employee.Employee, weekStart time.Time, days []*timesheet.DailySnapshot) timesheet.WeeklySummary {
	weeklyPaid := 0
	for _, day := range days {
		weeklyPaid += day.PaidMinutes
	}

	overtimeWeek := weeklyPaid - a.overtime.ThresholdMinutes()
	if overtimeWeek < 0 {
		overtimeWeek = 0
	}
	regularWeek := weeklyPaid - overtimeWeek

	if overtimeWeek > 0 {
		a.overtime.Allocate(days, overtimeWeek)
	}

	totalExceptions := 0
	for _, day := range days {
		totalExceptions += len(day.Exceptions)
	}

	return timesheet.WeeklySummary{
		EmployeeID:      emp.ID,
		CompanyID:       emp.CompanyID,
		WeekStart:       weekStart,
		WeekEnd:         weekStart.AddDate(0, 0, 6),
		EmployeeType:    emp.ResolvedType(),
		TotalPaidHours:  timesheet.MinutesToHours(weeklyPaid),
		RegularHours:    timesheet.MinutesToHours(regularWeek),
		OvertimeHours:   timesheet.MinutesToHours(overtimeWeek),
		TotalExceptions: totalExceptions,
		Status:          timesheet.SummaryStatusDraft,
	}
}
