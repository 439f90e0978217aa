package postgresql

import (
	"context"
	"fmt"

	"github.com/staffdesk/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk/payroll-backend-go/internal/pkg/database"
)

type incentiveProvider struct {
	db *database.DB
}

func NewIncentiveProvider(db *database.DB) payroll.IncentiveProvider {
	return &incentiveProvider{db: db}
}

func (p *incentiveProvider) GetIncentives(ctx context.Context, companyID, employeeID string, month, year int) ([]payroll.IncentiveDetail, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT title, type, amount
		FROM incentives
		WHERE company_id = $1 AND employee_id = $2
		  AND period_month = $3 AND period_year = $4
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, companyID, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list incentives: %w", err)
	}
	defer rows.Close()

	var incentives []payroll.IncentiveDetail
	for rows.Next() {
		var inc payroll.IncentiveDetail
		if err := rows.Scan(&inc.Title, &inc.Type, &inc.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan incentive: %w", err)
		}
		incentives = append(incentives, inc)
	}

	return incentives, rows.Err()
}
