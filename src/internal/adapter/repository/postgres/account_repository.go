package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/logger"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `
	id, code, name, type, sub_type, category, parent_id, level,
	opening_balance, balance, currency, tax_code, project_codes,
	description, active, created_at, updated_at`

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	logger.Info("account repository create", logger.Fields{
		"code": account.Code,
		"type": account.Type,
	})

	const query = `
INSERT INTO accounts (
	code, name, type, sub_type, category, parent_id, level,
	opening_balance, balance, currency, tax_code, project_codes,
	description, active
) VALUES (
	$1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11, $12, $13, $14
)
RETURNING id, created_at, updated_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.Code,
		account.Name,
		account.Type,
		account.SubType,
		account.Category,
		account.ParentID,
		account.Level,
		account.OpeningBalance,
		account.Balance,
		account.Currency,
		account.TaxCode,
		pq.Array(account.ProjectCodes),
		account.Description,
		account.Active,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.Account{}, domain.ErrDuplicateCode
		}
		logger.Error("account repository create failed", err, logger.Fields{"code": account.Code})
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) Update(ctx context.Context, account domain.Account) (domain.Account, error) {
	logger.Info("account repository update", logger.Fields{"accountId": account.ID})

	const query = `
UPDATE accounts
SET name = $2,
    sub_type = $3,
    category = $4,
    tax_code = $5,
    project_codes = $6,
    description = $7,
    active = $8,
    updated_at = NOW()
WHERE id = $1
RETURNING created_at, updated_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.ID,
		account.Name,
		account.SubType,
		account.Category,
		account.TaxCode,
		pq.Array(account.ProjectCodes),
		account.Description,
		account.Active,
	).Scan(&account.CreatedAt, &account.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrRecordNotFound
		}
		logger.Error("account repository update failed", err, logger.Fields{"accountId": account.ID})
		return domain.Account{}, fmt.Errorf("update account: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *AccountRepository) GetByCode(ctx context.Context, code string) (domain.Account, error) {
	const query = `SELECT ` + accountColumns + ` FROM accounts WHERE code = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, code))
}

func (r *AccountRepository) List(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	const query = `
SELECT ` + accountColumns + `
FROM accounts
WHERE active OR $1
ORDER BY code`

	rows, err := r.db.QueryContext(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	return r.scanMany(rows)
}

func (r *AccountRepository) ListByProjectCode(ctx context.Context, projectCode string) ([]domain.Account, error) {
	const query = `
SELECT ` + accountColumns + `
FROM accounts
WHERE $1 = ANY(project_codes) AND active
ORDER BY code`

	rows, err := r.db.QueryContext(ctx, query, projectCode)
	if err != nil {
		return nil, fmt.Errorf("list accounts by project code: %w", err)
	}
	defer rows.Close()

	return r.scanMany(rows)
}

func (r *AccountRepository) scanOne(row *sql.Row) (domain.Account, error) {
	var (
		account      domain.Account
		parentID     sql.NullString
		projectCodes pq.StringArray
	)
	if err := row.Scan(
		&account.ID,
		&account.Code,
		&account.Name,
		&account.Type,
		&account.SubType,
		&account.Category,
		&parentID,
		&account.Level,
		&account.OpeningBalance,
		&account.Balance,
		&account.Currency,
		&account.TaxCode,
		&projectCodes,
		&account.Description,
		&account.Active,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrRecordNotFound
		}
		return domain.Account{}, fmt.Errorf("scan account: %w", err)
	}

	account.ParentID = parentID.String
	account.ProjectCodes = projectCodes
	return account, nil
}

func (r *AccountRepository) scanMany(rows *sql.Rows) ([]domain.Account, error) {
	out := make([]domain.Account, 0)
	for rows.Next() {
		var (
			account      domain.Account
			parentID     sql.NullString
			projectCodes pq.StringArray
		)
		if err := rows.Scan(
			&account.ID,
			&account.Code,
			&account.Name,
			&account.Type,
			&account.SubType,
			&account.Category,
			&parentID,
			&account.Level,
			&account.OpeningBalance,
			&account.Balance,
			&account.Currency,
			&account.TaxCode,
			&projectCodes,
			&account.Description,
			&account.Active,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		account.ParentID = parentID.String
		account.ProjectCodes = projectCodes
		out = append(out, account)
	}

	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
