package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
	"github.com/PrinceDayani/RayERP-sub004/src/internal/logger"
)

type CostCenterRepository struct {
	db *sql.DB
}

func NewCostCenterRepository(db *sql.DB) *CostCenterRepository {
	return &CostCenterRepository{db: db}
}

const costCenterColumns = `
	id, code, name, type, parent_id, project_id, level, budget,
	actual_cost, committed_cost, description, active, created_at, updated_at`

func (r *CostCenterRepository) Create(ctx context.Context, center domain.CostCenter) (domain.CostCenter, error) {
	logger.Info("cost center repository create", logger.Fields{"code": center.Code})

	const query = `
INSERT INTO cost_centers (
	code, name, type, parent_id, project_id, level, budget,
	actual_cost, committed_cost, description, active
) VALUES (
	$1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11
)
RETURNING id, created_at, updated_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		center.Code,
		center.Name,
		center.Type,
		center.ParentID,
		center.ProjectID,
		center.Level,
		center.Budget,
		center.ActualCost,
		center.CommittedCost,
		center.Description,
		center.Active,
	).Scan(&center.ID, &center.CreatedAt, &center.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.CostCenter{}, domain.ErrDuplicateCode
		}
		logger.Error("cost center repository create failed", err, logger.Fields{"code": center.Code})
		return domain.CostCenter{}, fmt.Errorf("create cost center: %w", err)
	}

	return center, nil
}

func (r *CostCenterRepository) Update(ctx context.Context, center domain.CostCenter) (domain.CostCenter, error) {
	logger.Info("cost center repository update", logger.Fields{"costCenterId": center.ID})

	const query = `
UPDATE cost_centers
SET name = $2,
    type = $3,
    budget = $4,
    committed_cost = $5,
    description = $6,
    active = $7,
    updated_at = NOW()
WHERE id = $1
RETURNING created_at, updated_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		center.ID,
		center.Name,
		center.Type,
		center.Budget,
		center.CommittedCost,
		center.Description,
		center.Active,
	).Scan(&center.CreatedAt, &center.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CostCenter{}, domain.ErrRecordNotFound
		}
		logger.Error("cost center repository update failed", err, logger.Fields{"costCenterId": center.ID})
		return domain.CostCenter{}, fmt.Errorf("update cost center: %w", err)
	}

	return center, nil
}

func (r *CostCenterRepository) GetByID(ctx context.Context, id string) (domain.CostCenter, error) {
	const query = `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *CostCenterRepository) GetByCode(ctx context.Context, code string) (domain.CostCenter, error) {
	const query = `SELECT ` + costCenterColumns + ` FROM cost_centers WHERE code = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, code))
}

func (r *CostCenterRepository) List(ctx context.Context, includeInactive bool) ([]domain.CostCenter, error) {
	const query = `
SELECT ` + costCenterColumns + `
FROM cost_centers
WHERE active OR $1
ORDER BY code`

	rows, err := r.db.QueryContext(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list cost centers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CostCenter, 0)
	for rows.Next() {
		center, err := scanCostCenter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, center)
	}

	return out, rows.Err()
}

func (r *CostCenterRepository) AdjustActualCost(ctx context.Context, id string, delta decimal.Decimal) (domain.CostCenter, error) {
	logger.Info("cost center repository adjust actual cost", logger.Fields{
		"costCenterId": id,
		"delta":        delta.StringFixed(2),
	})

	const query = `
UPDATE cost_centers
SET actual_cost = GREATEST(actual_cost + $2, 0),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + costCenterColumns

	return r.scanOne(r.db.QueryRowContext(ctx, query, id, delta))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *CostCenterRepository) scanOne(row *sql.Row) (domain.CostCenter, error) {
	center, err := scanCostCenter(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CostCenter{}, domain.ErrRecordNotFound
		}
		return domain.CostCenter{}, err
	}
	return center, nil
}

func scanCostCenter(row rowScanner) (domain.CostCenter, error) {
	var (
		center   domain.CostCenter
		parentID sql.NullString
	)
	if err := row.Scan(
		&center.ID,
		&center.Code,
		&center.Name,
		&center.Type,
		&parentID,
		&center.ProjectID,
		&center.Level,
		&center.Budget,
		&center.ActualCost,
		&center.CommittedCost,
		&center.Description,
		&center.Active,
		&center.CreatedAt,
		&center.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CostCenter{}, err
		}
		return domain.CostCenter{}, fmt.Errorf("scan cost center: %w", err)
	}

	center.ParentID = parentID.String
	return center, nil
}
