package annotation

import "context"

// EmployeeDigest is the per-employee weekly text summary handed to the
// audit-note generator.
type EmployeeDigest struct {
	EmployeeID   string
	EmployeeName string
	Summary      string
}

// Service produces one short audit note per employee from a batched prompt.
// Implementations must be best-effort: an error from EnrichWeek never blocks
// or fails the pay-week computation, it only leaves ai_notes null.
type Service interface {
	// EnrichWeek returns generated notes keyed by employee ID. Employees the
	// generator did not produce a parseable line for are absent from the map.
	EnrichWeek(ctx context.Context, digests []EmployeeDigest) (map[string]string, error)
}
