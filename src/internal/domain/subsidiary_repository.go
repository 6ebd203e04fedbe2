package domain

import (
	"context"
	"time"
)

type SubsidiaryRepository interface {
	// ListOutstanding returns rows with a non-zero balance dated at or before
	// asOf for the given party type.
	ListOutstanding(ctx context.Context, partyType PartyType, asOf time.Time) ([]SubsidiaryEntry, error)
}
