package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WIPLedgerRow tracks unbilled project cost per cost head. CumulativeAmount
// carries the running total for the (project, cost head) pair.
type WIPLedgerRow struct {
	ID                string
	ProjectID         string
	CostHead          CostHead
	JournalEntryID    string
	Date              time.Time
	Amount            decimal.Decimal
	CumulativeAmount  decimal.Decimal
	Capitalized       bool
	CapitalizedAt     *time.Time
	CapitalizedAmount decimal.Decimal
	CreatedAt         time.Time
}
