package timesheet

import (
	"math"
	"time"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/employee"
	"github.com/wagewise-hq/payweek-backend-go/internal/domain/punch"
	"github.com/wagewise-hq/payweek-backend-go/internal/domain/timesheet"
)

// SnapshotBuilder turns one employee's punches for one date into a
// DailySnapshot, applying the deduction rules and exception detection of the
// injected policy.
type SnapshotBuilder struct {
	policy timesheet.WeekPolicy
}

func NewSnapshotBuilder(policy timesheet.WeekPolicy) *SnapshotBuilder {
	return &SnapshotBuilder{policy: policy}
}

// Build computes the snapshot for workDate from the punches whose clock-in
// falls on that date. Only the first punch pair of a date is authoritative;
// additional pairs on the same day are not supported and are ignored.
func (b *SnapshotBuilder) Build(emp employee.Employee, workDate time.Time, punches []punch.Punch) timesheet.DailySnapshot {
	snap := timesheet.DailySnapshot{
		EmployeeID:      emp.ID,
		CompanyID:       emp.CompanyID,
		WorkDate:        workDate,
		EmployeeType:    emp.ResolvedType(),
		ExpectedMinutes: b.policy.ExpectedDailyMinutes,
		Exceptions:      make([]timesheet.Exception, 0, 2),
		Status:          timesheet.SnapshotStatusAuto,
	}

	if snap.EmployeeType == employee.TypeWorkshop {
		snap.PaidBreakMinutes = b.policy.PaidBreakMinutes
	}

	if len(punches) == 0 {
		snap.Exceptions = append(snap.Exceptions, exceptionNoPunches())
		return snap
	}

	first := punches[0]
	clockIn := first.ClockIn
	snap.RawClockIn = &clockIn

	if first.ClockOut == nil {
		snap.Exceptions = append(snap.Exceptions, exceptionOpenPunch())
		return snap
	}

	clockOut := *first.ClockOut
	snap.RawClockOut = &clockOut

	grossMinutes := int(math.Round(clockOut.Sub(clockIn).Minutes()))

	// Shifts under the cutoff carry no unpaid lunch
	if grossMinutes < b.policy.ShortShiftCutoffMinutes {
		snap.PaidMinutes = grossMinutes
	} else {
		snap.LunchDeductedMinutes = b.policy.LunchDeductionMinutes
		snap.PaidMinutes = grossMinutes - snap.LunchDeductedMinutes
	}
	if snap.PaidMinutes < 0 {
		snap.PaidMinutes = 0
	}

	if exc := detectHoursMismatch(snap.PaidMinutes, snap.ExpectedMinutes, b.policy.MismatchToleranceMinutes); exc != nil {
		snap.Exceptions = append(snap.Exceptions, *exc)
	}
	if exc := detectEarlyLate(clockIn, b.policy.EarliestNormalClockHour, b.policy.LatestNormalClockHour); exc != nil {
		snap.Exceptions = append(snap.Exceptions, *exc)
	}

	return snap
}
