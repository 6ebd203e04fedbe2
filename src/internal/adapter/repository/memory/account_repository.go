package memory

import (
	"context"
	"sort"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
)

type AccountRepository struct {
	store *Store
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.accounts {
		if existing.Code == account.Code {
			return domain.Account{}, domain.ErrDuplicateCode
		}
	}

	now := r.store.now()
	account.ID = newID()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.store.accounts[account.ID] = account

	return account, nil
}

func (r *AccountRepository) Update(ctx context.Context, account domain.Account) (domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.accounts[account.ID]
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}

	account.CreatedAt = current.CreatedAt
	account.UpdatedAt = r.store.now()
	r.store.accounts[account.ID] = account

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	account, ok := r.store.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}
	return account, nil
}

func (r *AccountRepository) GetByCode(ctx context.Context, code string) (domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, account := range r.store.accounts {
		if account.Code == code {
			return account, nil
		}
	}
	return domain.Account{}, domain.ErrRecordNotFound
}

func (r *AccountRepository) List(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.store.accounts))
	for _, account := range r.store.accounts {
		if !includeInactive && !account.Active {
			continue
		}
		out = append(out, account)
	}
	sortAccountsByCode(out)

	return out, nil
}

func (r *AccountRepository) ListByProjectCode(ctx context.Context, projectCode string) ([]domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Account, 0)
	for _, account := range r.store.accounts {
		for _, code := range account.ProjectCodes {
			if code == projectCode {
				out = append(out, account)
				break
			}
		}
	}
	sortAccountsByCode(out)

	return out, nil
}

func sortAccountsByCode(accounts []domain.Account) {
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Code < accounts[j].Code
	})
}
