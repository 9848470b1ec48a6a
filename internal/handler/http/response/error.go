package response

import (
	"errors"
	"net/http"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/employee"
	"github.com/wagewise-hq/payweek-backend-go/internal/domain/timesheet"
	"github.com/wagewise-hq/payweek-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrWeekStartNotMonday):
		BadRequest(w, "Week start must be a Monday", nil)
	case errors.Is(err, timesheet.ErrSnapshotNotFound):
		NotFound(w, "Daily snapshot not found")
	case errors.Is(err, timesheet.ErrSummaryNotFound):
		NotFound(w, "Weekly summary not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
