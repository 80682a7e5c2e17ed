package mysql

import (
	"context"

	"gorm.io/gorm"

	invDomain "invest-platform-backend/internal/domain/investment"
)

type InvestmentRepository struct{ db *gorm.DB }

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, i *invDomain.Investment) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *InvestmentRepository) GetByInvestmentID(ctx context.Context, investmentID string) (*invDomain.Investment, error) {
	var out invDomain.Investment
	res := r.db.WithContext(ctx).Where("investment_id = ?", investmentID).First(&out)
	return &out, res.Error
}

func (r *InvestmentRepository) ListByInvestor(ctx context.Context, investorNumericID uint64) ([]invDomain.Investment, error) {
	var out []invDomain.Investment
	res := r.db.WithContext(ctx).
		Where("investor_id = ?", investorNumericID).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}

type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *invDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userNumericID uint64) ([]invDomain.Transaction, error) {
	var out []invDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userNumericID).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}
