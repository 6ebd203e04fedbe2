package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/logger"
)

type JournalRepository struct {
	db *sql.DB
}

func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) Create(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error) {
	logger.Info("journal repository create", logger.Fields{
		"entryNumber": entry.EntryNumber,
		"lineCount":   len(entry.Lines),
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const entryQuery = `
INSERT INTO journal_entries (
	entry_number, entry_date, reference, description, status, project_id, created_by
) VALUES (
	$1, $2, $3, $4, $5, $6, $7
)
RETURNING id, created_at, updated_at`

	if err := tx.QueryRowContext(
		ctx,
		entryQuery,
		entry.EntryNumber,
		entry.Date,
		entry.Reference,
		entry.Description,
		entry.Status,
		entry.ProjectID,
		entry.CreatedBy,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
		logger.Error("journal repository create failed", err, logger.Fields{"entryNumber": entry.EntryNumber})
		return domain.JournalEntry{}, fmt.Errorf("create journal entry: %w", err)
	}

	if err := insertLines(ctx, tx, entry.ID, entry.Lines); err != nil {
		return domain.JournalEntry{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("commit create journal entry: %w", err)
	}

	return entry, nil
}

func (r *JournalRepository) Update(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error) {
	logger.Info("journal repository update", logger.Fields{"entryId": entry.ID})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.JournalStatus
	if err := tx.QueryRowContext(ctx, `SELECT status FROM journal_entries WHERE id = $1 FOR UPDATE`, entry.ID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.JournalEntry{}, domain.ErrRecordNotFound
		}
		return domain.JournalEntry{}, fmt.Errorf("lock journal entry: %w", err)
	}
	if status != domain.JournalStatusDraft {
		return domain.JournalEntry{}, domain.ErrEntryPosted
	}

	const entryQuery = `
UPDATE journal_entries
SET entry_date = $2,
    reference = $3,
    description = $4,
    project_id = $5,
    updated_at = NOW()
WHERE id = $1
RETURNING created_at, updated_at`

	if err := tx.QueryRowContext(
		ctx,
		entryQuery,
		entry.ID,
		entry.Date,
		entry.Reference,
		entry.Description,
		entry.ProjectID,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt); err != nil {
		logger.Error("journal repository update failed", err, logger.Fields{"entryId": entry.ID})
		return domain.JournalEntry{}, fmt.Errorf("update journal entry: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM journal_lines WHERE journal_entry_id = $1`, entry.ID); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("clear journal lines: %w", err)
	}
	if err := insertLines(ctx, tx, entry.ID, entry.Lines); err != nil {
		return domain.JournalEntry{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.JournalEntry{}, fmt.Errorf("commit update journal entry: %w", err)
	}

	return entry, nil
}

func (r *JournalRepository) GetByID(ctx context.Context, id string) (domain.JournalEntry, error) {
	const query = `
SELECT id, entry_number, entry_date, reference, description, status,
       project_id, created_by, posted_by, posted_at, reversed_by,
       reversal_entry_id, created_at, updated_at
FROM journal_entries
WHERE id = $1`

	entry, err := scanJournalEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return domain.JournalEntry{}, err
	}

	lines, err := r.loadLines(ctx, entry.ID)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	entry.Lines = lines

	return entry, nil
}

func (r *JournalRepository) List(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalEntry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	const query = `
SELECT id, entry_number, entry_date, reference, description, status,
       project_id, created_by, posted_by, posted_at, reversed_by,
       reversal_entry_id, created_at, updated_at
FROM journal_entries
WHERE ($1 = '' OR status = $1)
  AND ($2 = '' OR project_id = $2)
  AND ($3::date IS NULL OR entry_date >= $3)
  AND ($4::date IS NULL OR entry_date <= $4)
ORDER BY entry_date DESC, entry_number DESC
LIMIT $5 OFFSET $6`

	rows, err := r.db.QueryContext(
		ctx,
		query,
		string(filter.Status),
		filter.ProjectID,
		filter.FromDate,
		filter.ToDate,
		limit,
		filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	out := make([]domain.JournalEntry, 0)
	for rows.Next() {
		entry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		lines, err := r.loadLines(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Lines = lines
	}

	return out, nil
}

func (r *JournalRepository) Delete(ctx context.Context, id string) error {
	logger.Info("journal repository delete", logger.Fields{"entryId": id})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.JournalStatus
	if err := tx.QueryRowContext(ctx, `SELECT status FROM journal_entries WHERE id = $1 FOR UPDATE`, id).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRecordNotFound
		}
		return fmt.Errorf("lock journal entry: %w", err)
	}
	if status != domain.JournalStatusDraft {
		return domain.ErrEntryPosted
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM journal_lines WHERE journal_entry_id = $1`, id); err != nil {
		return fmt.Errorf("delete journal lines: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete journal entry: %w", err)
	}

	return tx.Commit()
}

func (r *JournalRepository) NextEntryNumber(ctx context.Context) (string, error) {
	var seq int64
	if err := r.db.QueryRowContext(ctx, `SELECT nextval('journal_entry_number_seq')`).Scan(&seq); err != nil {
		return "", fmt.Errorf("next entry number: %w", err)
	}
	return fmt.Sprintf("JE%06d", seq), nil
}

func (r *JournalRepository) loadLines(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	const query = `
SELECT account_id, debit, credit, description, cost_center_id, project_id,
       cost_head, party_type, party_id, due_date
FROM journal_lines
WHERE journal_entry_id = $1
ORDER BY line_no`

	rows, err := r.db.QueryContext(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("load journal lines: %w", err)
	}
	defer rows.Close()

	out := make([]domain.JournalLine, 0)
	for rows.Next() {
		var (
			line         domain.JournalLine
			costCenterID sql.NullString
			dueDate      sql.NullTime
		)
		if err := rows.Scan(
			&line.AccountID,
			&line.Debit,
			&line.Credit,
			&line.Description,
			&costCenterID,
			&line.ProjectID,
			&line.CostHead,
			&line.PartyType,
			&line.PartyID,
			&dueDate,
		); err != nil {
			return nil, fmt.Errorf("scan journal line: %w", err)
		}
		line.CostCenterID = costCenterID.String
		if dueDate.Valid {
			value := dueDate.Time
			line.DueDate = &value
		}
		out = append(out, line)
	}

	return out, rows.Err()
}

func insertLines(ctx context.Context, tx *sql.Tx, entryID string, lines []domain.JournalLine) error {
	const query = `
INSERT INTO journal_lines (
	journal_entry_id, line_no, account_id, debit, credit, description,
	cost_center_id, project_id, cost_head, party_type, party_id, due_date
) VALUES (
	$1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, $9, $10, $11, $12
)`

	for i, line := range lines {
		if _, err := tx.ExecContext(
			ctx,
			query,
			entryID,
			i+1,
			line.AccountID,
			line.Debit,
			line.Credit,
			line.Description,
			line.CostCenterID,
			line.ProjectID,
			line.CostHead,
			line.PartyType,
			line.PartyID,
			line.DueDate,
		); err != nil {
			return fmt.Errorf("insert journal line %d: %w", i+1, err)
		}
	}

	return nil
}

func scanJournalEntry(row rowScanner) (domain.JournalEntry, error) {
	var (
		entry           domain.JournalEntry
		postedAt        sql.NullTime
		postedBy        sql.NullString
		reversedBy      sql.NullString
		reversalEntryID sql.NullString
	)
	if err := row.Scan(
		&entry.ID,
		&entry.EntryNumber,
		&entry.Date,
		&entry.Reference,
		&entry.Description,
		&entry.Status,
		&entry.ProjectID,
		&entry.CreatedBy,
		&postedBy,
		&postedAt,
		&reversedBy,
		&reversalEntryID,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.JournalEntry{}, domain.ErrRecordNotFound
		}
		return domain.JournalEntry{}, fmt.Errorf("scan journal entry: %w", err)
	}

	entry.PostedBy = postedBy.String
	entry.ReversedBy = reversedBy.String
	entry.ReversalEntryID = reversalEntryID.String
	if postedAt.Valid {
		value := postedAt.Time
		entry.PostedAt = &value
	}

	return entry, nil
}
