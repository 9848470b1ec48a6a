package punch

import (
	"time"
)

// Punch is one clock-in/clock-out pair recorded for an employee. ClockOut is
// nil while the session is still open or when the employee forgot to clock
// out.
type Punch struct {
	ID         string
	EmployeeID string
	CompanyID  string
	ClockIn    time.Time
	ClockOut   *time.Time
	CreatedAt  time.Time
}

// WorkDate returns the calendar date the punch belongs to, derived from the
// clock-in timestamp.
func (p Punch) WorkDate() time.Time {
	y, m, d := p.ClockIn.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
