package company

import "context"

type CompanyRepository interface {
	// ListActiveIDs returns the IDs of all active companies, ordered by ID.
	// Used by the weekly recompute job to walk every tenant.
	ListActiveIDs(ctx context.Context) ([]string, error)
}
