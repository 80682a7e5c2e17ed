package uow

import (
	"context"

	"invest-platform-backend/internal/domain/application"
	"invest-platform-backend/internal/domain/deal"
	"invest-platform-backend/internal/domain/dealupdate"
	"invest-platform-backend/internal/domain/investment"
	"invest-platform-backend/internal/domain/user"
)

type Repos struct {
	Deals        deal.Repository
	Updates      dealupdate.Repository
	Users        user.Repository
	Partners     user.PartnerRepository
	Investments  investment.Repository
	Transactions investment.TransactionRepository
	Applications application.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the deal row first, then pass it in. Guard-then-act
	// flows on funding totals must go through this.
	WithinDealTx(ctx context.Context, dealID string, fn func(r Repos, d *deal.Deal) error) error
}
