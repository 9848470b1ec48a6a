package timesheet

import (
	"fmt"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/timesheet"
)

// LatestFirstOvertimePolicy is the default overtime rule set: a fixed weekly
// threshold with excess minutes back-distributed from the most recent weekday
// toward Monday.
type LatestFirstOvertimePolicy struct {
	Threshold int
}

func NewLatestFirstOvertimePolicy(thresholdMinutes int) *LatestFirstOvertimePolicy {
	return &LatestFirstOvertimePolicy{Threshold: thresholdMinutes}
}

func (p *LatestFirstOvertimePolicy) ThresholdMinutes() int {
	return p.Threshold
}

// Allocate walks the week in reverse chronological order, assigning each day
// at most its own paid minutes until the overtime is exhausted. Days visited
// after the remainder hits zero keep zero overtime.
func (p *LatestFirstOvertimePolicy) Allocate(days []*timesheet.DailySnapshot, overtimeMinutes int) {
	remaining := overtimeMinutes
	for i := len(days) - 1; i >= 0 && remaining > 0; i-- {
		day := days[i]
		ot := day.PaidMinutes
		if remaining < ot {
			ot = remaining
		}
		if ot == 0 {
			continue
		}
		day.OvertimeMinutes = ot
		remaining -= ot
		day.Exceptions = append(day.Exceptions, timesheet.Exception{
			Type:       timesheet.ExceptionOvertimeThreshold,
			Message:    fmt.Sprintf("%s overtime hours allocated to this day by the weekly threshold", timesheet.MinutesToHours(ot)),
			Confidence: confidenceOvertimeAlloc,
		})
	}
}
