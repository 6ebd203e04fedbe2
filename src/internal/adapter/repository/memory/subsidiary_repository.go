package memory

import (
	"context"
	"sort"
	"time"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
)

type SubsidiaryRepository struct {
	store *Store
}

func (r *SubsidiaryRepository) ListOutstanding(ctx context.Context, partyType domain.PartyType, asOf time.Time) ([]domain.SubsidiaryEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.SubsidiaryEntry, 0)
	for _, entry := range r.store.subsidiary {
		if entry.PartyType != partyType {
			continue
		}
		if entry.Date.After(asOf) {
			continue
		}
		if entry.Balance.IsZero() {
			continue
		}
		out = append(out, entry)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})

	return out, nil
}
