package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
)

type FiscalYearRepository struct {
	store *Store
}

func (r *FiscalYearRepository) Create(ctx context.Context, year domain.FiscalYear) (domain.FiscalYear, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.fiscalYears {
		if existing.Year == year.Year {
			return domain.FiscalYear{}, domain.ErrDuplicateCode
		}
		if !year.StartDate.After(existing.EndDate) && !year.EndDate.Before(existing.StartDate) {
			return domain.FiscalYear{}, domain.ErrConflict
		}
	}

	now := r.store.now()
	year.ID = newID()
	year.CreatedAt = now
	year.UpdatedAt = now
	r.store.fiscalYears[year.ID] = year

	return year, nil
}

func (r *FiscalYearRepository) GetByID(ctx context.Context, id string) (domain.FiscalYear, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	year, ok := r.store.fiscalYears[id]
	if !ok {
		return domain.FiscalYear{}, domain.ErrRecordNotFound
	}
	return year, nil
}

func (r *FiscalYearRepository) List(ctx context.Context) ([]domain.FiscalYear, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.FiscalYear, 0, len(r.store.fiscalYears))
	for _, year := range r.store.fiscalYears {
		out = append(out, year)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.After(out[j].StartDate)
	})

	return out, nil
}

func (r *FiscalYearRepository) FindByDate(ctx context.Context, date time.Time) (domain.FiscalYear, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, year := range r.store.fiscalYears {
		if year.Covers(date) {
			return year, nil
		}
	}
	return domain.FiscalYear{}, domain.ErrRecordNotFound
}

// Close flips the year before reading the ledger, all under the write lock,
// so postings racing the close either land before the flip or are rejected.
func (r *FiscalYearRepository) Close(ctx context.Context, yearID, closedBy string) (domain.FiscalYear, domain.FiscalYear, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	year, ok := r.store.fiscalYears[yearID]
	if !ok {
		return domain.FiscalYear{}, domain.FiscalYear{}, domain.ErrRecordNotFound
	}
	if year.Status == domain.FiscalYearClosed {
		return domain.FiscalYear{}, domain.FiscalYear{}, domain.ErrConflict
	}

	now := r.store.now()
	year.Status = domain.FiscalYearClosed
	year.ClosedBy = closedBy
	year.ClosedAt = &now
	year.UpdatedAt = now

	movements := make(map[string]domain.AccountBalance)
	for _, row := range r.store.ledgerRows {
		if row.Date.Before(year.StartDate) || row.Date.After(year.EndDate) {
			continue
		}
		account, ok := r.store.accounts[row.AccountID]
		if !ok {
			continue
		}
		delta := account.Type.SignedDelta(row.Debit, row.Credit)
		entry := movements[row.AccountID]
		entry.AccountID = row.AccountID
		entry.Balance = entry.Balance.Add(delta)
		movements[row.AccountID] = entry
	}

	balances := make([]domain.AccountBalance, 0, len(movements))
	for _, balance := range movements {
		if balance.Balance.IsZero() {
			continue
		}
		balances = append(balances, balance)
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].AccountID < balances[j].AccountID
	})

	year.OpeningBalances = balances
	r.store.fiscalYears[year.ID] = year

	nextStart, nextEnd := year.NextYearBounds()
	next := domain.FiscalYear{
		ID:              newID(),
		Year:            fmt.Sprintf("%d-%02d", nextStart.Year(), (nextStart.Year()+1)%100),
		StartDate:       nextStart,
		EndDate:         nextEnd,
		Status:          domain.FiscalYearOpen,
		OpeningBalances: balances,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.store.fiscalYears[next.ID] = next

	return year, next, nil
}
