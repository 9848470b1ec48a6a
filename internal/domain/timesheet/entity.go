package timesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/employee"
)

// ExceptionType identifies a flagged attendance anomaly.
type ExceptionType string

const (
	ExceptionMissingPunch      ExceptionType = "missing_punch"
	ExceptionHoursMismatch     ExceptionType = "hours_mismatch"
	ExceptionEarlyLate         ExceptionType = "early_late"
	ExceptionOvertimeThreshold ExceptionType = "overtime_threshold"
)

// Exception is a flagged anomaly on one day's attendance. Confidence is a
// heuristic severity score 0-100, not a statistical probability.
type Exception struct {
	Type       ExceptionType `json:"type"`
	Message    string        `json:"message"`
	Confidence int           `json:"confidence"`
}

// Snapshot status denotes the computation mode, not cleanliness: an "auto"
// day may still carry exceptions.
const (
	SnapshotStatusAuto   = "auto"
	SnapshotStatusManual = "manual"
)

const SummaryStatusDraft = "draft"

// DailySnapshot is the computed per-day attendance record for one employee.
// Key is (EmployeeID, WorkDate); rows are fully recomputed and overwritten on
// each engine run.
type DailySnapshot struct {
	EmployeeID           string
	CompanyID            string
	WorkDate             time.Time
	EmployeeType         employee.Type
	RawClockIn           *time.Time
	RawClockOut          *time.Time
	LunchDeductedMinutes int
	PaidBreakMinutes     int
	ExpectedMinutes      int
	PaidMinutes          int
	OvertimeMinutes      int
	Exceptions           []Exception
	AINotes              *string
	Status               string
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// DTO
	EmployeeName *string
}

// WeeklySummary is derived from the five weekday snapshots. Key is
// (EmployeeID, WeekStart); never hand-edited by this engine.
type WeeklySummary struct {
	EmployeeID      string
	CompanyID       string
	WeekStart       time.Time
	WeekEnd         time.Time
	EmployeeType    employee.Type
	TotalPaidHours  decimal.Decimal
	RegularHours    decimal.Decimal
	OvertimeHours   decimal.Decimal
	TotalExceptions int
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName *string
}

// MinutesToHours converts paid minutes to the decimal hour representation
// stored on weekly summaries. Two decimal places keep reruns byte-identical.
func MinutesToHours(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60)).Round(2)
}
