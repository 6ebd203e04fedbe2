package domain

import "context"

type JournalRepository interface {
	Create(ctx context.Context, entry JournalEntry) (JournalEntry, error)
	Update(ctx context.Context, entry JournalEntry) (JournalEntry, error)
	GetByID(ctx context.Context, id string) (JournalEntry, error)
	List(ctx context.Context, filter JournalFilter) ([]JournalEntry, error)
	Delete(ctx context.Context, id string) error
	NextEntryNumber(ctx context.Context) (string, error)
}
