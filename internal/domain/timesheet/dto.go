package timesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wagewise-hq/payweek-backend-go/internal/pkg/validator"
)

// ========================================
// PAY-WEEK GENERATION DTOs
// ========================================

type GenerateWeekRequest struct {
	WeekStart string `json:"week_start"` // YYYY-MM-DD, must be a Monday
}

func (r *GenerateWeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WeekStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start is required",
		})
	} else if _, valid := validator.IsValidDate(r.WeekStart); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		})
	} else if !validator.IsMonday(r.WeekStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a Monday",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WeekStartDate returns the parsed week start. Call Validate first.
func (r *GenerateWeekRequest) WeekStartDate() time.Time {
	d, _ := validator.IsValidDate(r.WeekStart)
	return d
}

type WeekWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type GenerateWeekResponse struct {
	RunID              string     `json:"run_id"`
	EmployeesProcessed int        `json:"employees_processed"`
	SnapshotsCreated   int        `json:"snapshots_created"`
	Week               WeekWindow `json:"week"`
}

// ========================================
// LISTING DTOs
// ========================================

type SnapshotFilter struct {
	WeekStart  string  `json:"week_start"`
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (f *SnapshotFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.WeekStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start is required",
		})
	} else if !validator.IsMonday(f.WeekStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be a Monday in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExceptionResponse struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Confidence int    `json:"confidence"`
}

type SnapshotResponse struct {
	EmployeeID           string              `json:"employee_id"`
	EmployeeName         *string             `json:"employee_name,omitempty"`
	WorkDate             string              `json:"work_date"`
	EmployeeType         string              `json:"employee_type"`
	RawClockIn           *string             `json:"raw_clock_in,omitempty"`
	RawClockOut          *string             `json:"raw_clock_out,omitempty"`
	LunchDeductedMinutes int                 `json:"lunch_deducted_minutes"`
	PaidBreakMinutes     int                 `json:"paid_break_minutes"`
	ExpectedMinutes      int                 `json:"expected_minutes"`
	PaidMinutes          int                 `json:"paid_minutes"`
	OvertimeMinutes      int                 `json:"overtime_minutes"`
	Exceptions           []ExceptionResponse `json:"exceptions"`
	AINotes              *string             `json:"ai_notes,omitempty"`
	Status               string              `json:"status"`
}

type SummaryResponse struct {
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    *string         `json:"employee_name,omitempty"`
	WeekStart       string          `json:"week_start"`
	WeekEnd         string          `json:"week_end"`
	EmployeeType    string          `json:"employee_type"`
	TotalPaidHours  decimal.Decimal `json:"total_paid_hours"`
	RegularHours    decimal.Decimal `json:"regular_hours"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	TotalExceptions int             `json:"total_exceptions"`
	Status          string          `json:"status"`
}

type ListSnapshotsResponse struct {
	Week      WeekWindow         `json:"week"`
	Snapshots []SnapshotResponse `json:"snapshots"`
}

type ListSummariesResponse struct {
	Week      WeekWindow        `json:"week"`
	Summaries []SummaryResponse `json:"summaries"`
}
