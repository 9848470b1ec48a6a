package timesheet

// WeekPolicy carries the deduction and detection rules applied while building
// daily snapshots. Values are injected from configuration so companies with
// different contracts do not require a rebuild.
type WeekPolicy struct {
	ExpectedDailyMinutes     int
	LunchDeductionMinutes    int
	ShortShiftCutoffMinutes  int
	PaidBreakMinutes         int
	MismatchToleranceMinutes int
	EarliestNormalClockHour  int
	LatestNormalClockHour    int
}

// DefaultWeekPolicy is the standard 8.5h-shift rule set.
func DefaultWeekPolicy() WeekPolicy {
	return WeekPolicy{
		ExpectedDailyMinutes:     510,
		LunchDeductionMinutes:    30,
		ShortShiftCutoffMinutes:  300,
		PaidBreakMinutes:         30,
		MismatchToleranceMinutes: 15,
		EarliestNormalClockHour:  5,
		LatestNormalClockHour:    10,
	}
}

// OvertimePolicy decides how many weekly paid minutes count as overtime and
// which days they land on. Jurisdiction-specific rule sets implement this
// interface; the aggregation core never hardcodes either choice.
type OvertimePolicy interface {
	// ThresholdMinutes is the weekly paid-minutes boundary above which the
	// excess is overtime.
	ThresholdMinutes() int

	// Allocate distributes overtimeMinutes across the week's snapshots,
	// setting OvertimeMinutes and appending an overtime_threshold exception
	// on each day that receives a share. Days are passed in chronological
	// order (Mon..Fri). No day may receive more than its own paid minutes.
	Allocate(days []*DailySnapshot, overtimeMinutes int)
}
