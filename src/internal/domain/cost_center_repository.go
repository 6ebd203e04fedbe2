package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type CostCenterRepository interface {
	Create(ctx context.Context, center CostCenter) (CostCenter, error)
	Update(ctx context.Context, center CostCenter) (CostCenter, error)
	GetByID(ctx context.Context, id string) (CostCenter, error)
	GetByCode(ctx context.Context, code string) (CostCenter, error)
	List(ctx context.Context, includeInactive bool) ([]CostCenter, error)
	// AdjustActualCost applies a signed delta to actualCost, clamping the
	// result at zero.
	AdjustActualCost(ctx context.Context, id string, delta decimal.Decimal) (CostCenter, error)
}
