package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
)

type CostCenterRepository struct {
	store *Store
}

func (r *CostCenterRepository) Create(ctx context.Context, center domain.CostCenter) (domain.CostCenter, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.costCenters {
		if existing.Code == center.Code {
			return domain.CostCenter{}, domain.ErrDuplicateCode
		}
	}

	now := r.store.now()
	center.ID = newID()
	center.CreatedAt = now
	center.UpdatedAt = now
	r.store.costCenters[center.ID] = center

	return center, nil
}

func (r *CostCenterRepository) Update(ctx context.Context, center domain.CostCenter) (domain.CostCenter, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.costCenters[center.ID]
	if !ok {
		return domain.CostCenter{}, domain.ErrRecordNotFound
	}

	center.CreatedAt = current.CreatedAt
	center.UpdatedAt = r.store.now()
	r.store.costCenters[center.ID] = center

	return center, nil
}

func (r *CostCenterRepository) GetByID(ctx context.Context, id string) (domain.CostCenter, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	center, ok := r.store.costCenters[id]
	if !ok {
		return domain.CostCenter{}, domain.ErrRecordNotFound
	}
	return center, nil
}

func (r *CostCenterRepository) GetByCode(ctx context.Context, code string) (domain.CostCenter, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, center := range r.store.costCenters {
		if center.Code == code {
			return center, nil
		}
	}
	return domain.CostCenter{}, domain.ErrRecordNotFound
}

func (r *CostCenterRepository) List(ctx context.Context, includeInactive bool) ([]domain.CostCenter, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.CostCenter, 0, len(r.store.costCenters))
	for _, center := range r.store.costCenters {
		if !includeInactive && !center.Active {
			continue
		}
		out = append(out, center)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})

	return out, nil
}

func (r *CostCenterRepository) AdjustActualCost(ctx context.Context, id string, delta decimal.Decimal) (domain.CostCenter, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	center, ok := r.store.costCenters[id]
	if !ok {
		return domain.CostCenter{}, domain.ErrRecordNotFound
	}

	center.ActualCost = clampZero(center.ActualCost.Add(delta))
	center.UpdatedAt = r.store.now()
	r.store.costCenters[id] = center

	return center, nil
}

func clampZero(value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		return decimal.Zero
	}
	return value
}
