package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/logger"
)

type FiscalYearRepository struct {
	db *sql.DB
}

func NewFiscalYearRepository(db *sql.DB) *FiscalYearRepository {
	return &FiscalYearRepository{db: db}
}

func (r *FiscalYearRepository) Create(ctx context.Context, year domain.FiscalYear) (domain.FiscalYear, error) {
	logger.Info("fiscal year repository create", logger.Fields{"year": year.Year})

	var overlaps int
	if err := r.db.QueryRowContext(
		ctx,
		`SELECT COUNT(1) FROM fiscal_years WHERE start_date <= $2 AND end_date >= $1`,
		year.StartDate,
		year.EndDate,
	).Scan(&overlaps); err != nil {
		return domain.FiscalYear{}, fmt.Errorf("check fiscal year overlap: %w", err)
	}
	if overlaps > 0 {
		return domain.FiscalYear{}, domain.ErrConflict
	}

	const query = `
INSERT INTO fiscal_years (year, start_date, end_date, status)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		year.Year,
		year.StartDate,
		year.EndDate,
		year.Status,
	).Scan(&year.ID, &year.CreatedAt, &year.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.FiscalYear{}, domain.ErrDuplicateCode
		}
		logger.Error("fiscal year repository create failed", err, logger.Fields{"year": year.Year})
		return domain.FiscalYear{}, fmt.Errorf("create fiscal year: %w", err)
	}

	return year, nil
}

func (r *FiscalYearRepository) GetByID(ctx context.Context, id string) (domain.FiscalYear, error) {
	const query = `
SELECT id, year, start_date, end_date, status, closed_by, closed_at, created_at, updated_at
FROM fiscal_years
WHERE id = $1`

	year, err := scanFiscalYear(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return domain.FiscalYear{}, err
	}

	balances, err := r.loadOpeningBalances(ctx, year.ID)
	if err != nil {
		return domain.FiscalYear{}, err
	}
	year.OpeningBalances = balances

	return year, nil
}

func (r *FiscalYearRepository) List(ctx context.Context) ([]domain.FiscalYear, error) {
	const query = `
SELECT id, year, start_date, end_date, status, closed_by, closed_at, created_at, updated_at
FROM fiscal_years
ORDER BY start_date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list fiscal years: %w", err)
	}
	defer rows.Close()

	out := make([]domain.FiscalYear, 0)
	for rows.Next() {
		year, err := scanFiscalYear(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, year)
	}

	return out, rows.Err()
}

func (r *FiscalYearRepository) FindByDate(ctx context.Context, date time.Time) (domain.FiscalYear, error) {
	const query = `
SELECT id, year, start_date, end_date, status, closed_by, closed_at, created_at, updated_at
FROM fiscal_years
WHERE start_date <= $1 AND end_date >= $1`

	return scanFiscalYear(r.db.QueryRowContext(ctx, query, date))
}

// Close runs the whole year close in one transaction: flip the status first,
// fold the year's ledger movements into carry-forward balances, then open the
// following year with those balances.
func (r *FiscalYearRepository) Close(ctx context.Context, yearID, closedBy string) (domain.FiscalYear, domain.FiscalYear, error) {
	logger.Info("fiscal year repository close", logger.Fields{"fiscalYearId": yearID})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.FiscalYear{}, domain.FiscalYear{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const lockQuery = `
SELECT id, year, start_date, end_date, status, closed_by, closed_at, created_at, updated_at
FROM fiscal_years
WHERE id = $1
FOR UPDATE`

	year, err := scanFiscalYear(tx.QueryRowContext(ctx, lockQuery, yearID))
	if err != nil {
		return domain.FiscalYear{}, domain.FiscalYear{}, err
	}
	if year.Status == domain.FiscalYearClosed {
		return domain.FiscalYear{}, domain.FiscalYear{}, domain.ErrConflict
	}

	now := time.Now().UTC()
	if _, err := tx.ExecContext(
		ctx,
		`UPDATE fiscal_years SET status = $2, closed_by = $3, closed_at = $4, updated_at = $4 WHERE id = $1`,
		year.ID,
		domain.FiscalYearClosed,
		closedBy,
		now,
	); err != nil {
		return domain.FiscalYear{}, domain.FiscalYear{}, fmt.Errorf("close fiscal year: %w", err)
	}
	year.Status = domain.FiscalYearClosed
	year.ClosedBy = closedBy
	year.ClosedAt = &now

	// Net movement per account, signed by the account's natural side.
	const movementQuery = `
SELECT l.account_id,
       SUM(CASE WHEN a.type IN ('asset', 'expense')
                THEN l.debit - l.credit
                ELSE l.credit - l.debit END) AS balance
FROM ledger_rows l
JOIN accounts a ON a.id = l.account_id
WHERE l.entry_date >= $1 AND l.entry_date <= $2
GROUP BY l.account_id
HAVING SUM(CASE WHEN a.type IN ('asset', 'expense')
                THEN l.debit - l.credit
                ELSE l.credit - l.debit END) <> 0
ORDER BY l.account_id`

	rows, err := tx.QueryContext(ctx, movementQuery, year.StartDate, year.EndDate)
	if err != nil {
		return domain.FiscalYear{}, domain.FiscalYear{}, fmt.Errorf("fold year movements: %w", err)
	}
	balances := make([]domain.AccountBalance, 0)
	for rows.Next() {
		var balance domain.AccountBalance
		if err := rows.Scan(&balance.AccountID, &balance.Balance); err != nil {
			rows.Close()
			return domain.FiscalYear{}, domain.FiscalYear{}, fmt.Errorf("scan year movement: %w", err)
		}
		balances = append(balances, balance)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return domain.FiscalYear{}, domain.FiscalYear{}, err
	}
	rows.Close()
	year.OpeningBalances = balances

	nextStart, nextEnd := year.NextYearBounds()
	next := domain.FiscalYear{
		Year:            fmt.Sprintf("%d-%02d", nextStart.Year(), (nextStart.Year()+1)%100),
		StartDate:       nextStart,
		EndDate:         nextEnd,
		Status:          domain.FiscalYearOpen,
		OpeningBalances: balances,
	}

	if err := tx.QueryRowContext(
		ctx,
		`INSERT INTO fiscal_years (year, start_date, end_date, status) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`,
		next.Year,
		next.StartDate,
		next.EndDate,
		next.Status,
	).Scan(&next.ID, &next.CreatedAt, &next.UpdatedAt); err != nil {
		return domain.FiscalYear{}, domain.FiscalYear{}, fmt.Errorf("create next fiscal year: %w", err)
	}

	const balanceQuery = `
INSERT INTO fiscal_year_opening_balances (fiscal_year_id, account_id, balance)
VALUES ($1, $2, $3)`

	for _, balance := range balances {
		if _, err := tx.ExecContext(ctx, balanceQuery, year.ID, balance.AccountID, balance.Balance); err != nil {
			return domain.FiscalYear{}, domain.FiscalYear{}, fmt.Errorf("store carry-forward balance: %w", err)
		}
		if _, err := tx.ExecContext(ctx, balanceQuery, next.ID, balance.AccountID, balance.Balance); err != nil {
			return domain.FiscalYear{}, domain.FiscalYear{}, fmt.Errorf("store opening balance: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.FiscalYear{}, domain.FiscalYear{}, fmt.Errorf("commit fiscal year close: %w", err)
	}

	logger.Info("fiscal year repository close success", logger.Fields{
		"fiscalYearId":   year.ID,
		"nextYearId":     next.ID,
		"carriedForward": len(balances),
	})

	return year, next, nil
}

func (r *FiscalYearRepository) loadOpeningBalances(ctx context.Context, yearID string) ([]domain.AccountBalance, error) {
	const query = `
SELECT account_id, balance
FROM fiscal_year_opening_balances
WHERE fiscal_year_id = $1
ORDER BY account_id`

	rows, err := r.db.QueryContext(ctx, query, yearID)
	if err != nil {
		return nil, fmt.Errorf("load opening balances: %w", err)
	}
	defer rows.Close()

	out := make([]domain.AccountBalance, 0)
	for rows.Next() {
		var balance domain.AccountBalance
		if err := rows.Scan(&balance.AccountID, &balance.Balance); err != nil {
			return nil, fmt.Errorf("scan opening balance: %w", err)
		}
		out = append(out, balance)
	}

	return out, rows.Err()
}

func scanFiscalYear(row rowScanner) (domain.FiscalYear, error) {
	var (
		year     domain.FiscalYear
		closedBy sql.NullString
		closedAt sql.NullTime
	)
	if err := row.Scan(
		&year.ID,
		&year.Year,
		&year.StartDate,
		&year.EndDate,
		&year.Status,
		&closedBy,
		&closedAt,
		&year.CreatedAt,
		&year.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.FiscalYear{}, domain.ErrRecordNotFound
		}
		return domain.FiscalYear{}, fmt.Errorf("scan fiscal year: %w", err)
	}

	year.ClosedBy = closedBy.String
	if closedAt.Valid {
		value := closedAt.Time
		year.ClosedAt = &value
	}

	return year, nil
}
