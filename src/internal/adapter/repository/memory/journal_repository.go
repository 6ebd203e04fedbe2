package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
)

type JournalRepository struct {
	store *Store
}

func (r *JournalRepository) Create(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.now()
	entry.ID = newID()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.store.entries[entry.ID] = entry

	return entry, nil
}

func (r *JournalRepository) Update(ctx context.Context, entry domain.JournalEntry) (domain.JournalEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.entries[entry.ID]
	if !ok {
		return domain.JournalEntry{}, domain.ErrRecordNotFound
	}
	if current.Status != domain.JournalStatusDraft {
		return domain.JournalEntry{}, domain.ErrEntryPosted
	}

	entry.CreatedAt = current.CreatedAt
	entry.UpdatedAt = r.store.now()
	r.store.entries[entry.ID] = entry

	return entry, nil
}

func (r *JournalRepository) GetByID(ctx context.Context, id string) (domain.JournalEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entry, ok := r.store.entries[id]
	if !ok {
		return domain.JournalEntry{}, domain.ErrRecordNotFound
	}
	return entry, nil
}

func (r *JournalRepository) List(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.JournalEntry, 0)
	for _, entry := range r.store.entries {
		if filter.Status != "" && entry.Status != filter.Status {
			continue
		}
		if filter.ProjectID != "" && entry.ProjectID != filter.ProjectID {
			continue
		}
		if filter.FromDate != nil && entry.Date.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && entry.Date.After(*filter.ToDate) {
			continue
		}
		out = append(out, entry)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].EntryNumber > out[j].EntryNumber
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []domain.JournalEntry{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (r *JournalRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entry, ok := r.store.entries[id]
	if !ok {
		return domain.ErrRecordNotFound
	}
	if entry.Status != domain.JournalStatusDraft {
		return domain.ErrEntryPosted
	}

	delete(r.store.entries, id)
	return nil
}

func (r *JournalRepository) NextEntryNumber(ctx context.Context) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.entrySeq++
	return fmt.Sprintf("JE%06d", r.store.entrySeq), nil
}
