package deal

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"invest-platform-backend/internal/auth"
	dealDomain "invest-platform-backend/internal/domain/deal"
	updateDomain "invest-platform-backend/internal/domain/dealupdate"
	"invest-platform-backend/internal/domain/uow"
	"invest-platform-backend/pkg/id"
)

type Usecase struct {
	deals dealDomain.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(deals dealDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{deals: deals, uow: tx}
}

func toDTO(d *dealDomain.Deal) *DealDTO {
	return &DealDTO{
		DealID:         d.DealID,
		OwnerID:        d.OwnerID,
		Title:          d.Title,
		Description:    d.Description,
		FundingGoal:    d.FundingGoal,
		CurrentFunding: d.CurrentFunding,
		MinInvestment:  d.MinInvestment,
		ExpectedReturn: d.ExpectedReturn,
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateDealInput) (*DealDTO, error) {
	if err := auth.Require(in.OwnerRole, auth.PermManageDeals); err != nil {
		return nil, err
	}
	if in.Title == "" || in.FundingGoal <= 0 || in.MinInvestment <= 0 || in.MinInvestment > in.FundingGoal {
		return nil, dealDomain.ErrInvalidInput
	}

	d := &dealDomain.Deal{
		DealID:          id.NewID32(),
		OwnerID:         in.OwnerID,
		Title:           in.Title,
		Description:     in.Description,
		FundingGoal:     in.FundingGoal,
		MinInvestment:   in.MinInvestment,
		ExpectedReturn:  in.ExpectedReturn,
		Status:          dealDomain.StatusPending,
		StatusUpdatedAt: time.Now().UTC(),
	}
	if err := u.deals.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDTO(d), nil
}

func (u *Usecase) Get(ctx context.Context, dealID string) (*DealDTO, error) {
	d, err := u.deals.GetByDealID(ctx, dealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dealDomain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(d), nil
}

// SubmitUpdateRequest records a partner's proposal against their own
// published deal. At most one PENDING request per deal; the review workflow
// consumes it exactly once.
func (u *Usecase) SubmitUpdateRequest(ctx context.Context, in SubmitUpdateInput) (*UpdateRequestDTO, error) {
	if err := auth.Require(in.RequesterRole, auth.PermManageDeals); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(in.Changes)
	if err != nil {
		return nil, err
	}

	var dto *UpdateRequestDTO
	err = u.uow.WithinDealTx(ctx, in.DealID, func(r uow.Repos, d *dealDomain.Deal) error {
		if d.OwnerID != in.RequesterID {
			return auth.ErrForbidden
		}
		if d.Status == dealDomain.StatusDraft {
			return dealDomain.ErrNotActive
		}

		if _, err := r.Updates.GetPendingByDealID(ctx, d.ID); err == nil {
			return dealDomain.ErrPendingExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		req := &updateDomain.UpdateRequest{
			RequestID:   id.NewID32(),
			DealID:      d.ID,
			Changes:     payload,
			Status:      updateDomain.StatusPending,
			RequesterID: in.RequesterID,
		}
		if err := r.Updates.Create(ctx, req); err != nil {
			return err
		}
		dto = &UpdateRequestDTO{
			RequestID: req.RequestID,
			DealID:    d.DealID,
			Status:    string(req.Status),
			CreatedAt: req.CreatedAt,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dealDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}
