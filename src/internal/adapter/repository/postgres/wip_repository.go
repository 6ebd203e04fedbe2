package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/logger"
)

type WIPRepository struct {
	db *sql.DB
}

func NewWIPRepository(db *sql.DB) *WIPRepository {
	return &WIPRepository{db: db}
}

func (r *WIPRepository) List(ctx context.Context, projectID string, from, to *time.Time) ([]domain.WIPLedgerRow, error) {
	const query = `
SELECT id, project_id, cost_head, journal_entry_id, entry_date, amount,
       cumulative_amount, capitalized, capitalized_at, capitalized_amount, created_at
FROM wip_ledger_rows
WHERE ($1 = '' OR project_id = $1)
  AND ($2::date IS NULL OR entry_date >= $2)
  AND ($3::date IS NULL OR entry_date <= $3)
ORDER BY entry_date, seq`

	rows, err := r.db.QueryContext(ctx, query, projectID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list wip rows: %w", err)
	}
	defer rows.Close()

	out := make([]domain.WIPLedgerRow, 0)
	for rows.Next() {
		var (
			row           domain.WIPLedgerRow
			capitalizedAt sql.NullTime
		)
		if err := rows.Scan(
			&row.ID,
			&row.ProjectID,
			&row.CostHead,
			&row.JournalEntryID,
			&row.Date,
			&row.Amount,
			&row.CumulativeAmount,
			&row.Capitalized,
			&capitalizedAt,
			&row.CapitalizedAmount,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan wip row: %w", err)
		}
		if capitalizedAt.Valid {
			value := capitalizedAt.Time
			row.CapitalizedAt = &value
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

func (r *WIPRepository) Capitalize(ctx context.Context, projectID string, costHead domain.CostHead, amount decimal.Decimal, at time.Time) error {
	logger.Info("wip repository capitalize", logger.Fields{
		"projectId": projectID,
		"costHead":  costHead,
		"amount":    amount.StringFixed(2),
	})

	const query = `
UPDATE wip_ledger_rows
SET capitalized = TRUE,
    capitalized_at = $4,
    capitalized_amount = $3
WHERE project_id = $1 AND cost_head = $2 AND NOT capitalized`

	result, err := r.db.ExecContext(ctx, query, projectID, costHead, amount, at)
	if err != nil {
		return fmt.Errorf("capitalize wip rows: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("capitalize wip rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
