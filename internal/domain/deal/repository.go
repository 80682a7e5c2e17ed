package deal

import "context"

type Repository interface {
	Create(ctx context.Context, d *Deal) error
	GetByDealID(ctx context.Context, dealID string) (*Deal, error)
	// GetByDealIDForUpdate takes a row lock; only valid inside a transaction.
	GetByDealIDForUpdate(ctx context.Context, dealID string) (*Deal, error)
	GetByID(ctx context.Context, id uint64) (*Deal, error)
	// GetByIDForUpdate is the numeric-key variant used when only the FK is known.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Deal, error)
	Save(ctx context.Context, d *Deal) error
}
