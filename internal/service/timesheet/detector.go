package timesheet

import (
	"fmt"
	"time"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/timesheet"
)

// Exception detection rules. Each rule is a pure predicate over one day's
// resolved inputs; rules are independent and may co-fire on the same day.
// The overtime_threshold exception is the weekly aggregator's to assign, not
// the per-day detector's.

const (
	confidenceNoPunches     = 95
	confidenceOpenPunch     = 90
	confidenceMismatch      = 85
	confidenceEarlyLate     = 70
	confidenceOvertimeAlloc = 100
)

func exceptionNoPunches() timesheet.Exception {
	return timesheet.Exception{
		Type:       timesheet.ExceptionMissingPunch,
		Message:    "no punches recorded for this date",
		Confidence: confidenceNoPunches,
	}
}

func exceptionOpenPunch() timesheet.Exception {
	return timesheet.Exception{
		Type:       timesheet.ExceptionMissingPunch,
		Message:    "clock-in recorded without a matching clock-out",
		Confidence: confidenceOpenPunch,
	}
}

// detectHoursMismatch fires when a completed day's paid minutes land outside
// the tolerance band around the expected shift length.
func detectHoursMismatch(paidMinutes, expectedMinutes, toleranceMinutes int) *timesheet.Exception {
	diff := paidMinutes - expectedMinutes
	if diff < 0 {
		diff = -diff
	}
	if diff <= toleranceMinutes {
		return nil
	}
	return &timesheet.Exception{
		Type:       timesheet.ExceptionHoursMismatch,
		Message:    fmt.Sprintf("paid %d minutes against an expected %d", paidMinutes, expectedMinutes),
		Confidence: confidenceMismatch,
	}
}

// detectEarlyLate fires when the clock-in hour falls outside the normal
// arrival window.
func detectEarlyLate(clockIn time.Time, earliestHour, latestHour int) *timesheet.Exception {
	hour := clockIn.Hour()
	if hour >= earliestHour && hour <= latestHour {
		return nil
	}
	return &timesheet.Exception{
		Type:       timesheet.ExceptionEarlyLate,
		Message:    fmt.Sprintf("clock-in at %s is outside the %02d:00-%02d:59 window", clockIn.Format("15:04"), earliestHour, latestHour),
		Confidence: confidenceEarlyLate,
	}
}
