package domain

import (
	"context"
	"time"
)

type FiscalYearRepository interface {
	Create(ctx context.Context, year FiscalYear) (FiscalYear, error)
	GetByID(ctx context.Context, id string) (FiscalYear, error)
	List(ctx context.Context) ([]FiscalYear, error)
	FindByDate(ctx context.Context, date time.Time) (FiscalYear, error)
	// Close flips the year to CLOSED, computes each account's net movement
	// within the year from the ledger, stores the non-zero balances as the
	// carry-forward list and creates the following OPEN year, all as one
	// atomic unit. Closing an already-CLOSED year fails with ErrConflict and
	// leaves both records untouched.
	Close(ctx context.Context, yearID, closedBy string) (closed FiscalYear, next FiscalYear, err error)
}
