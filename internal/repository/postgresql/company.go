package postgresql

import (
	"context"
	"fmt"

	"github.com/wagewise-hq/payweek-backend-go/internal/domain/company"
	"github.com/wagewise-hq/payweek-backend-go/internal/pkg/database"
)

type companyRepository struct {
	db *database.DB
}

// ListActiveIDs implements company.CompanyRepository.
func (c *companyRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id
		FROM companies
		WHERE is_active = true
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan company ID: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}
