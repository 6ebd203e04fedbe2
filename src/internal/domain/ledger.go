package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRow is one posted journal line in the general ledger. Rows are
// append-only; Seq is assigned by the store and orders rows within a date.
type LedgerRow struct {
	ID             string
	AccountID      string
	JournalEntryID string
	Date           time.Time
	Reference      string
	Description    string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	RunningBalance decimal.Decimal
	Seq            int64
	CostCenterID   string
	ProjectID      string
	CreatedAt      time.Time
}

// PostingRow is a ledger row about to be appended. The store fills in
// RunningBalance and Seq while it holds the account's balance.
type PostingRow struct {
	AccountID    string
	Delta        decimal.Decimal
	Debit        decimal.Decimal
	Credit       decimal.Decimal
	Description  string
	Reference    string
	CostCenterID string
	ProjectID    string
}

// CostCenterDelta adjusts a cost center's actual cost within the posting.
type CostCenterDelta struct {
	CostCenterID string
	Delta        decimal.Decimal
}

// WIPItem accumulates unbilled project cost under one cost head.
type WIPItem struct {
	ProjectID string
	CostHead  CostHead
	Amount    decimal.Decimal
}

// Posting is the atomic unit committed for one journal entry: all ledger
// rows, balance updates, cost allocations, WIP accumulation and subsidiary
// rows become visible together or not at all.
type Posting struct {
	EntryID     string
	PostedBy    string
	Date        time.Time
	Rows        []PostingRow
	CostDeltas  []CostCenterDelta
	WIPItems    []WIPItem
	Subsidiary  []SubsidiaryEntry
	MarkReverse string
}

type PostingResult struct {
	PostedLineCount int
	UpdatedBalances []AccountBalance
}

type LedgerFilter struct {
	AccountID string
	ProjectID string
	FromDate  *time.Time
	ToDate    *time.Time
}

func (f LedgerFilter) Matches(row LedgerRow) bool {
	if f.AccountID != "" && row.AccountID != f.AccountID {
		return false
	}
	if f.ProjectID != "" && row.ProjectID != f.ProjectID {
		return false
	}
	if f.FromDate != nil && row.Date.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && row.Date.After(*f.ToDate) {
		return false
	}
	return true
}
