package domain

import "context"

type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	Update(ctx context.Context, account Account) (Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	GetByCode(ctx context.Context, code string) (Account, error)
	List(ctx context.Context, includeInactive bool) ([]Account, error)
	ListByProjectCode(ctx context.Context, projectCode string) ([]Account, error)
}
