package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubsidiaryEntry is one vendor/customer/employee sub-ledger row. Balance is
// the outstanding amount used by the aging report.
type SubsidiaryEntry struct {
	ID             string
	PartyType      PartyType
	PartyID        string
	AccountID      string
	JournalEntryID string
	Date           time.Time
	DueDate        time.Time
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	Balance        decimal.Decimal
	CreatedAt      time.Time
}
