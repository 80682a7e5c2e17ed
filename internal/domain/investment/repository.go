package investment

import "context"

type Repository interface {
	Create(ctx context.Context, i *Investment) error
	GetByInvestmentID(ctx context.Context, investmentID string) (*Investment, error)
	ListByInvestor(ctx context.Context, investorNumericID uint64) ([]Investment, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, t *Transaction) error
	ListByUser(ctx context.Context, userNumericID uint64) ([]Transaction, error)
}
