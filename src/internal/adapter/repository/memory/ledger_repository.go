package memory

import (
	"context"
	"sort"
	"time"

	"github.com/PrinceDayani/RayERP-sub004/src/internal/domain"
)

type LedgerRepository struct {
	store *Store
}

// AppendPosting validates the whole posting under the write lock and only
// then mutates, so a failed posting leaves no trace.
func (r *LedgerRepository) AppendPosting(ctx context.Context, posting domain.Posting) (domain.PostingResult, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entry, ok := r.store.entries[posting.EntryID]
	if !ok {
		return domain.PostingResult{}, domain.ErrRecordNotFound
	}
	if entry.Status != domain.JournalStatusDraft {
		return domain.PostingResult{}, domain.ErrEntryPosted
	}

	if err := r.checkOpenYear(posting.Date); err != nil {
		return domain.PostingResult{}, err
	}

	for _, row := range posting.Rows {
		account, ok := r.store.accounts[row.AccountID]
		if !ok {
			return domain.PostingResult{}, domain.ErrRecordNotFound
		}
		if !account.Active {
			return domain.PostingResult{}, domain.ErrRecordNotFound
		}
	}
	for _, delta := range posting.CostDeltas {
		if _, ok := r.store.costCenters[delta.CostCenterID]; !ok {
			return domain.PostingResult{}, domain.ErrRecordNotFound
		}
	}

	var source domain.JournalEntry
	if posting.MarkReverse != "" {
		source, ok = r.store.entries[posting.MarkReverse]
		if !ok {
			return domain.PostingResult{}, domain.ErrRecordNotFound
		}
		if source.Status != domain.JournalStatusPosted {
			return domain.PostingResult{}, domain.ErrConflict
		}
	}

	now := r.store.now()
	touched := make(map[string]struct{})
	balances := make([]domain.AccountBalance, 0, len(posting.Rows))

	for _, row := range posting.Rows {
		account := r.store.accounts[row.AccountID]
		account.Balance = account.Balance.Add(row.Delta)
		account.UpdatedAt = now
		r.store.accounts[row.AccountID] = account

		r.store.ledgerSeq++
		r.store.ledgerRows = append(r.store.ledgerRows, domain.LedgerRow{
			ID:             newID(),
			AccountID:      row.AccountID,
			JournalEntryID: posting.EntryID,
			Date:           posting.Date,
			Reference:      row.Reference,
			Description:    row.Description,
			Debit:          row.Debit,
			Credit:         row.Credit,
			RunningBalance: account.Balance,
			Seq:            r.store.ledgerSeq,
			CostCenterID:   row.CostCenterID,
			ProjectID:      row.ProjectID,
			CreatedAt:      now,
		})

		if _, seen := touched[row.AccountID]; !seen {
			touched[row.AccountID] = struct{}{}
		}
	}

	for id := range touched {
		balances = append(balances, domain.AccountBalance{AccountID: id, Balance: r.store.accounts[id].Balance})
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].AccountID < balances[j].AccountID
	})

	for _, delta := range posting.CostDeltas {
		center := r.store.costCenters[delta.CostCenterID]
		center.ActualCost = clampZero(center.ActualCost.Add(delta.Delta))
		center.UpdatedAt = now
		r.store.costCenters[delta.CostCenterID] = center
	}

	for _, item := range posting.WIPItems {
		cumulative := item.Amount
		for i := len(r.store.wipRows) - 1; i >= 0; i-- {
			prev := r.store.wipRows[i]
			if prev.ProjectID == item.ProjectID && prev.CostHead == item.CostHead {
				cumulative = prev.CumulativeAmount.Add(item.Amount)
				break
			}
		}
		r.store.wipRows = append(r.store.wipRows, domain.WIPLedgerRow{
			ID:               newID(),
			ProjectID:        item.ProjectID,
			CostHead:         item.CostHead,
			JournalEntryID:   posting.EntryID,
			Date:             posting.Date,
			Amount:           item.Amount,
			CumulativeAmount: cumulative,
			CreatedAt:        now,
		})
	}

	for _, sub := range posting.Subsidiary {
		sub.ID = newID()
		sub.JournalEntryID = posting.EntryID
		sub.CreatedAt = now
		r.store.subsidiary = append(r.store.subsidiary, sub)
	}

	entry.Status = domain.JournalStatusPosted
	entry.PostedBy = posting.PostedBy
	postedAt := now
	entry.PostedAt = &postedAt
	entry.UpdatedAt = now
	r.store.entries[entry.ID] = entry

	if posting.MarkReverse != "" {
		source.Status = domain.JournalStatusReversed
		source.ReversalEntryID = posting.EntryID
		source.ReversedBy = posting.PostedBy
		source.UpdatedAt = now
		r.store.entries[source.ID] = source
	}

	return domain.PostingResult{
		PostedLineCount: len(posting.Rows),
		UpdatedBalances: balances,
	}, nil
}

func (r *LedgerRepository) Rows(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.LedgerRow, 0)
	for _, row := range r.store.ledgerRows {
		if filter.Matches(row) {
			out = append(out, row)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Seq < out[j].Seq
	})

	return out, nil
}

// checkOpenYear is called with the write lock held.
func (r *LedgerRepository) checkOpenYear(date time.Time) error {
	for _, year := range r.store.fiscalYears {
		if year.Covers(date) {
			if year.Status == domain.FiscalYearClosed {
				return domain.ErrYearClosed
			}
			return nil
		}
	}
	return domain.ErrNoOpenYear
}
