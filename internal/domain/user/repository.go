package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// GetByUserIDForUpdate takes a row lock; only valid inside a transaction.
	GetByUserIDForUpdate(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, u *User) error
}

type PartnerRepository interface {
	Create(ctx context.Context, p *Partner) error
	GetByUserID(ctx context.Context, userNumericID uint64) (*Partner, error)
}
