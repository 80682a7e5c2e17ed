package investmentmock

import (
	"context"

	domain "invest-platform-backend/internal/domain/investment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, i *domain.Investment) error
	GetByInvestmentIDFn func(ctx context.Context, investmentID string) (*domain.Investment, error)
	ListByInvestorFn    func(ctx context.Context, investorNumericID uint64) ([]domain.Investment, error)
}

func (m *Repo) Create(ctx context.Context, i *domain.Investment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, i)
	}
	return nil
}

func (m *Repo) GetByInvestmentID(ctx context.Context, investmentID string) (*domain.Investment, error) {
	if m.GetByInvestmentIDFn != nil {
		return m.GetByInvestmentIDFn(ctx, investmentID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByInvestor(ctx context.Context, investorNumericID uint64) ([]domain.Investment, error) {
	if m.ListByInvestorFn != nil {
		return m.ListByInvestorFn(ctx, investorNumericID)
	}
	return nil, nil
}

// TxRepo is a function-backed mock that satisfies domain.TransactionRepository.
type TxRepo struct {
	CreateFn     func(ctx context.Context, t *domain.Transaction) error
	ListByUserFn func(ctx context.Context, userNumericID uint64) ([]domain.Transaction, error)
}

func (m *TxRepo) Create(ctx context.Context, t *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *TxRepo) ListByUser(ctx context.Context, userNumericID uint64) ([]domain.Transaction, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userNumericID)
	}
	return nil, nil
}
