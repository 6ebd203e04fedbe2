package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type WIPRepository interface {
	List(ctx context.Context, projectID string, from, to *time.Time) ([]WIPLedgerRow, error)
	// Capitalize marks every open row for the (project, cost head) pair as
	// capitalized at the given time, recording the capitalized amount.
	Capitalize(ctx context.Context, projectID string, costHead CostHead, amount decimal.Decimal, at time.Time) error
}
