package mysql

import (
	"context"

	"gorm.io/gorm"

	"invest-platform-backend/internal/domain/deal"
	"invest-platform-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Deals:        &DealRepository{db: tx},
		Updates:      &UpdateRequestRepository{db: tx},
		Users:        &UserRepository{db: tx},
		Partners:     &PartnerRepository{db: tx},
		Investments:  &InvestmentRepository{db: tx},
		Transactions: &TransactionRepository{db: tx},
		Applications: &ApplicationRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinDealTx(ctx context.Context, dealID string, fn func(r uow.Repos, d *deal.Deal) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the deal row up-front to prevent races on funding totals
		d, err := r.Deals.GetByDealIDForUpdate(ctx, dealID)
		if err != nil {
			return err
		}
		return fn(r, d)
	})
}
