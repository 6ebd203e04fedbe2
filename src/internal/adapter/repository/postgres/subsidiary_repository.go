package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
)

type SubsidiaryRepository struct {
	db *sql.DB
}

func NewSubsidiaryRepository(db *sql.DB) *SubsidiaryRepository {
	return &SubsidiaryRepository{db: db}
}

func (r *SubsidiaryRepository) ListOutstanding(ctx context.Context, partyType domain.PartyType, asOf time.Time) ([]domain.SubsidiaryEntry, error) {
	const query = `
SELECT id, party_type, party_id, account_id, journal_entry_id, entry_date,
       due_date, debit, credit, balance, created_at
FROM subsidiary_ledger
WHERE party_type = $1 AND entry_date <= $2 AND balance <> 0
ORDER BY due_date, party_id`

	rows, err := r.db.QueryContext(ctx, query, partyType, asOf)
	if err != nil {
		return nil, fmt.Errorf("list outstanding subsidiary rows: %w", err)
	}
	defer rows.Close()

	out := make([]domain.SubsidiaryEntry, 0)
	for rows.Next() {
		var entry domain.SubsidiaryEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.PartyType,
			&entry.PartyID,
			&entry.AccountID,
			&entry.JournalEntryID,
			&entry.Date,
			&entry.DueDate,
			&entry.Debit,
			&entry.Credit,
			&entry.Balance,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan subsidiary row: %w", err)
		}
		out = append(out, entry)
	}

	return out, rows.Err()
}
