package domain

import "context"

type LedgerRepository interface {
	// AppendPosting commits one journal entry's posting as a single atomic
	// unit: ledger rows with running balances, account balance updates, cost
	// center allocations, WIP accumulation and subsidiary rows. It fails with
	// ErrEntryPosted when the entry is no longer DRAFT and with ErrNoOpenYear
	// when no OPEN fiscal year covers the posting date. On failure nothing is
	// written.
	AppendPosting(ctx context.Context, posting Posting) (PostingResult, error)
	Rows(ctx context.Context, filter LedgerFilter) ([]LedgerRow, error)
}
