package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
)

type WIPRepository struct {
	store *Store
}

func (r *WIPRepository) List(ctx context.Context, projectID string, from, to *time.Time) ([]domain.WIPLedgerRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.WIPLedgerRow, 0)
	for _, row := range r.store.wipRows {
		if projectID != "" && row.ProjectID != projectID {
			continue
		}
		if from != nil && row.Date.Before(*from) {
			continue
		}
		if to != nil && row.Date.After(*to) {
			continue
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *WIPRepository) Capitalize(ctx context.Context, projectID string, costHead domain.CostHead, amount decimal.Decimal, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	found := false
	for i := range r.store.wipRows {
		row := &r.store.wipRows[i]
		if row.ProjectID != projectID || row.CostHead != costHead || row.Capitalized {
			continue
		}
		row.Capitalized = true
		capturedAt := at
		row.CapitalizedAt = &capturedAt
		row.CapitalizedAmount = amount
		found = true
	}

	if !found {
		return domain.ErrRecordNotFound
	}
	return nil
}
