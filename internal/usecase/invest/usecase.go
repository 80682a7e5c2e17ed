package invest

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"invest-platform-backend/internal/auth"
	dealDomain "invest-platform-backend/internal/domain/deal"
	investDomain "invest-platform-backend/internal/domain/investment"
	userDomain "invest-platform-backend/internal/domain/user"
	"invest-platform-backend/internal/domain/uow"
	"invest-platform-backend/internal/infrastructure/mailer"
	"invest-platform-backend/pkg/id"
	"invest-platform-backend/pkg/logger"
)

type Usecase struct {
	uow    uow.UnitOfWork
	mailer mailer.Mailer
}

func NewUsecase(tx uow.UnitOfWork, m mailer.Mailer) *Usecase {
	return &Usecase{uow: tx, mailer: m}
}

// Commit places an investment. The guard is re-evaluated against the locked
// deal and wallet rows, so the read and the writes form one atomic unit and
// current funding can never exceed the goal, even under concurrent requests.
// Wallet decrement, funding increment and the investment + ledger rows all
// commit together or not at all.
func (u *Usecase) Commit(ctx context.Context, in CommitInput) (*InvestmentDTO, error) {
	if err := auth.Require(in.InvestorRole, auth.PermInvest); err != nil {
		return nil, err
	}
	if in.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var (
		dto           *InvestmentDTO
		investorEmail string
	)

	err := u.uow.WithinDealTx(ctx, in.DealID, func(r uow.Repos, d *dealDomain.Deal) error {
		if d.Status != dealDomain.StatusActive {
			return dealDomain.ErrNotActive
		}

		investor, err := r.Users.GetByUserIDForUpdate(ctx, in.InvestorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userDomain.ErrNotFound
			}
			return err
		}

		out := Evaluate(in.Amount, d.MinInvestment, investor.WalletBalance, d.FundingGoal, d.CurrentFunding)
		if err := out.Err(); err != nil {
			return err
		}

		now := time.Now().UTC()
		investor.WalletBalance -= in.Amount
		investor.TotalInvested += in.Amount
		d.CurrentFunding += in.Amount
		if d.CurrentFunding >= d.FundingGoal {
			d.Status = dealDomain.StatusCompleted
			d.StatusUpdatedAt = now
		}

		inv := &investDomain.Investment{
			InvestmentID:   id.NewID32(),
			InvestorID:     investor.ID,
			DealID:         d.ID,
			Amount:         in.Amount,
			Status:         investDomain.StatusActive,
			ExpectedReturn: in.Amount * d.ExpectedReturn,
		}
		if err := r.Investments.Create(ctx, inv); err != nil {
			return err
		}
		tx := &investDomain.Transaction{
			TransactionID: id.NewID32(),
			UserID:        investor.ID,
			Type:          investDomain.TxInvestment,
			Amount:        in.Amount,
			Reference:     inv.InvestmentID,
		}
		if err := r.Transactions.Create(ctx, tx); err != nil {
			return err
		}
		if err := r.Users.Save(ctx, investor); err != nil {
			return err
		}
		if err := r.Deals.Save(ctx, d); err != nil {
			return err
		}

		investorEmail = investor.Email
		dto = &InvestmentDTO{
			InvestmentID:   inv.InvestmentID,
			DealID:         d.DealID,
			Amount:         inv.Amount,
			ExpectedReturn: inv.ExpectedReturn,
			WalletBalance:  investor.WalletBalance,
			DealStatus:     string(d.Status),
			CreatedAt:      now,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dealDomain.ErrNotFound
		}
		return nil, err
	}

	// best-effort; never fails the committed investment
	if err := u.mailer.Send(ctx, mailer.TemplateInvestmentConfirmed, investorEmail, map[string]string{
		"deal_id": dto.DealID,
		"amount":  strconv.FormatFloat(dto.Amount, 'f', 2, 64),
	}); err != nil {
		logger.Errorf("invest: send %s to %s: %v", mailer.TemplateInvestmentConfirmed, investorEmail, err)
	}
	return dto, nil
}

// Preview runs the guard against current deal and wallet state without
// mutating anything, for the "adjust to max available" UI affordance.
func (u *Usecase) Preview(ctx context.Context, in CommitInput) (Outcome, error) {
	var out Outcome
	err := u.uow.WithinDealTx(ctx, in.DealID, func(r uow.Repos, d *dealDomain.Deal) error {
		investor, err := r.Users.GetByUserID(ctx, in.InvestorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userDomain.ErrNotFound
			}
			return err
		}
		out = Evaluate(in.Amount, d.MinInvestment, investor.WalletBalance, d.FundingGoal, d.CurrentFunding)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Outcome{}, dealDomain.ErrNotFound
		}
		return Outcome{}, fmt.Errorf("preview: %w", err)
	}
	return out, nil
}
