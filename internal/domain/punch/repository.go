package punch

import (
	"context"
	"time"
)

// PunchRepository is the punch-store collaborator.
type PunchRepository interface {
	// ListForEmployeesInRange retrieves every punch whose clock_in falls
	// within [start, end] for the given employees, in a single bulk read,
	// ordered by employee then clock_in ascending.
	ListForEmployeesInRange(ctx context.Context, companyID string, employeeIDs []string, start, end time.Time) ([]Punch, error)
}
