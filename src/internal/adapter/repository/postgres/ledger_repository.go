package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/logger"
)

type LedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// AppendPosting runs the whole posting in one transaction. Accounts are
// locked FOR UPDATE in id order so two concurrent postings touching the same
// accounts cannot deadlock.
func (r *LedgerRepository) AppendPosting(ctx context.Context, posting domain.Posting) (domain.PostingResult, error) {
	logger.Info("ledger repository append posting", logger.Fields{
		"entryId":  posting.EntryID,
		"rowCount": len(posting.Rows),
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.PostingResult{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.JournalStatus
	if err := tx.QueryRowContext(ctx, `SELECT status FROM journal_entries WHERE id = $1 FOR UPDATE`, posting.EntryID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PostingResult{}, domain.ErrRecordNotFound
		}
		return domain.PostingResult{}, fmt.Errorf("lock journal entry: %w", err)
	}
	if status != domain.JournalStatusDraft {
		return domain.PostingResult{}, domain.ErrEntryPosted
	}

	if err := checkOpenYear(ctx, tx, posting); err != nil {
		return domain.PostingResult{}, err
	}

	balances, err := lockAccounts(ctx, tx, posting.Rows)
	if err != nil {
		return domain.PostingResult{}, err
	}

	const rowQuery = `
INSERT INTO ledger_rows (
	account_id, journal_entry_id, entry_date, reference, description,
	debit, credit, running_balance, cost_center_id, project_id
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, '')::uuid, $10
)`

	for _, row := range posting.Rows {
		balance := balances[row.AccountID].Add(row.Delta)
		balances[row.AccountID] = balance

		if _, err := tx.ExecContext(
			ctx,
			rowQuery,
			row.AccountID,
			posting.EntryID,
			posting.Date,
			row.Reference,
			row.Description,
			row.Debit,
			row.Credit,
			balance,
			row.CostCenterID,
			row.ProjectID,
		); err != nil {
			return domain.PostingResult{}, fmt.Errorf("insert ledger row: %w", err)
		}
	}

	for accountID, balance := range balances {
		if _, err := tx.ExecContext(ctx, `UPDATE accounts SET balance = $2, updated_at = NOW() WHERE id = $1`, accountID, balance); err != nil {
			return domain.PostingResult{}, fmt.Errorf("update account balance: %w", err)
		}
	}

	for _, delta := range posting.CostDeltas {
		result, err := tx.ExecContext(
			ctx,
			`UPDATE cost_centers SET actual_cost = GREATEST(actual_cost + $2, 0), updated_at = NOW() WHERE id = $1`,
			delta.CostCenterID,
			delta.Delta,
		)
		if err != nil {
			return domain.PostingResult{}, fmt.Errorf("allocate cost: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return domain.PostingResult{}, fmt.Errorf("allocate cost: %w", err)
		}
		if affected == 0 {
			return domain.PostingResult{}, domain.ErrRecordNotFound
		}
	}

	if err := insertWIPRows(ctx, tx, posting); err != nil {
		return domain.PostingResult{}, err
	}
	if err := insertSubsidiaryRows(ctx, tx, posting); err != nil {
		return domain.PostingResult{}, err
	}

	if _, err := tx.ExecContext(
		ctx,
		`UPDATE journal_entries SET status = $2, posted_by = $3, posted_at = NOW(), updated_at = NOW() WHERE id = $1`,
		posting.EntryID,
		domain.JournalStatusPosted,
		posting.PostedBy,
	); err != nil {
		return domain.PostingResult{}, fmt.Errorf("mark entry posted: %w", err)
	}

	if posting.MarkReverse != "" {
		result, err := tx.ExecContext(
			ctx,
			`UPDATE journal_entries SET status = $2, reversed_by = $3, reversal_entry_id = $4, updated_at = NOW() WHERE id = $1 AND status = $5`,
			posting.MarkReverse,
			domain.JournalStatusReversed,
			posting.PostedBy,
			posting.EntryID,
			domain.JournalStatusPosted,
		)
		if err != nil {
			return domain.PostingResult{}, fmt.Errorf("mark entry reversed: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return domain.PostingResult{}, fmt.Errorf("mark entry reversed: %w", err)
		}
		if affected == 0 {
			return domain.PostingResult{}, domain.ErrConflict
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.PostingResult{}, fmt.Errorf("commit posting: %w", err)
	}

	updated := make([]domain.AccountBalance, 0, len(balances))
	for accountID, balance := range balances {
		updated = append(updated, domain.AccountBalance{AccountID: accountID, Balance: balance})
	}
	sort.Slice(updated, func(i, j int) bool { return updated[i].AccountID < updated[j].AccountID })

	logger.Info("ledger repository append posting success", logger.Fields{
		"entryId":  posting.EntryID,
		"rowCount": len(posting.Rows),
	})

	return domain.PostingResult{
		PostedLineCount: len(posting.Rows),
		UpdatedBalances: updated,
	}, nil
}

func (r *LedgerRepository) Rows(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerRow, error) {
	const query = `
SELECT id, account_id, journal_entry_id, entry_date, reference, description,
       debit, credit, running_balance, seq, cost_center_id, project_id, created_at
FROM ledger_rows
WHERE ($1 = '' OR account_id = $1::uuid)
  AND ($2 = '' OR project_id = $2)
  AND ($3::date IS NULL OR entry_date >= $3)
  AND ($4::date IS NULL OR entry_date <= $4)
ORDER BY entry_date, seq`

	var accountID string
	if filter.AccountID != "" {
		accountID = filter.AccountID
	}

	rows, err := r.db.QueryContext(ctx, query, accountID, filter.ProjectID, filter.FromDate, filter.ToDate)
	if err != nil {
		return nil, fmt.Errorf("list ledger rows: %w", err)
	}
	defer rows.Close()

	out := make([]domain.LedgerRow, 0)
	for rows.Next() {
		var (
			row          domain.LedgerRow
			costCenterID sql.NullString
		)
		if err := rows.Scan(
			&row.ID,
			&row.AccountID,
			&row.JournalEntryID,
			&row.Date,
			&row.Reference,
			&row.Description,
			&row.Debit,
			&row.Credit,
			&row.RunningBalance,
			&row.Seq,
			&costCenterID,
			&row.ProjectID,
			&row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		row.CostCenterID = costCenterID.String
		out = append(out, row)
	}

	return out, rows.Err()
}

func checkOpenYear(ctx context.Context, tx *sql.Tx, posting domain.Posting) error {
	var status domain.FiscalYearStatus
	err := tx.QueryRowContext(
		ctx,
		`SELECT status FROM fiscal_years WHERE start_date <= $1 AND end_date >= $1`,
		posting.Date,
	).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNoOpenYear
	}
	if err != nil {
		return fmt.Errorf("find fiscal year: %w", err)
	}
	if status != domain.FiscalYearOpen {
		return domain.ErrYearClosed
	}
	return nil
}

func lockAccounts(ctx context.Context, tx *sql.Tx, rows []domain.PostingRow) (map[string]decimal.Decimal, error) {
	ids := make([]string, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if seen[row.AccountID] {
			continue
		}
		seen[row.AccountID] = true
		ids = append(ids, row.AccountID)
	}
	sort.Strings(ids)

	balances := make(map[string]decimal.Decimal, len(ids))
	for _, id := range ids {
		var (
			balance decimal.Decimal
			active  bool
		)
		err := tx.QueryRowContext(ctx, `SELECT balance, active FROM accounts WHERE id = $1 FOR UPDATE`, id).Scan(&balance, &active)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("lock account %s: %w", id, err)
		}
		if !active {
			return nil, domain.ErrRecordNotFound
		}
		balances[id] = balance
	}

	return balances, nil
}

func insertWIPRows(ctx context.Context, tx *sql.Tx, posting domain.Posting) error {
	const query = `
INSERT INTO wip_ledger_rows (
	project_id, cost_head, journal_entry_id, entry_date, amount, cumulative_amount
) VALUES (
	$1, $2, $3, $4, $5,
	COALESCE((
		SELECT cumulative_amount FROM wip_ledger_rows
		WHERE project_id = $1 AND cost_head = $2
		ORDER BY seq DESC LIMIT 1
	), 0) + $5
)`

	for _, item := range posting.WIPItems {
		if _, err := tx.ExecContext(ctx, query, item.ProjectID, item.CostHead, posting.EntryID, posting.Date, item.Amount); err != nil {
			return fmt.Errorf("insert wip row: %w", err)
		}
	}
	return nil
}

func insertSubsidiaryRows(ctx context.Context, tx *sql.Tx, posting domain.Posting) error {
	const query = `
INSERT INTO subsidiary_ledger (
	party_type, party_id, account_id, journal_entry_id, entry_date,
	due_date, debit, credit, balance
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9
)`

	for _, entry := range posting.Subsidiary {
		if _, err := tx.ExecContext(
			ctx,
			query,
			entry.PartyType,
			entry.PartyID,
			entry.AccountID,
			posting.EntryID,
			entry.Date,
			entry.DueDate,
			entry.Debit,
			entry.Credit,
			entry.Balance,
		); err != nil {
			return fmt.Errorf("insert subsidiary row: %w", err)
		}
	}
	return nil
}
