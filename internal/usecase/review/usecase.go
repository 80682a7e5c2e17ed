package review

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"invest-platform-backend/internal/auth"
	dealDomain "invest-platform-backend/internal/domain/deal"
	updateDomain "invest-platform-backend/internal/domain/dealupdate"
	userDomain "invest-platform-backend/internal/domain/user"
	"invest-platform-backend/internal/domain/uow"
	"invest-platform-backend/internal/infrastructure/mailer"
	"invest-platform-backend/pkg/logger"
)

type Usecase struct {
	users  userDomain.Repository
	uow    uow.UnitOfWork
	mailer mailer.Mailer
}

func NewUsecase(users userDomain.Repository, tx uow.UnitOfWork, m mailer.Mailer) *Usecase {
	return &Usecase{users: users, uow: tx, mailer: m}
}

// Review drives the update-request state machine: PENDING → APPROVED applies
// the proposed changes and activates the deal; PENDING → REJECTED records the
// reason and flips the deal to REJECTED so the owner can edit and resubmit.
// Both states are terminal. Exactly one request row and one deal row mutate,
// in a single transaction.
func (u *Usecase) Review(ctx context.Context, in ReviewInput) (*ReviewDTO, error) {
	if err := auth.Require(in.ReviewerRole, auth.PermReviewUpdates); err != nil {
		return nil, err
	}
	if in.Action != ActionApprove && in.Action != ActionReject {
		return nil, ErrInvalidAction
	}
	reason := strings.TrimSpace(in.Reason)
	if in.Action == ActionReject && reason == "" {
		return nil, updateDomain.ErrReasonRequired
	}

	var (
		dto       *ReviewDTO
		ownerID   string
		dealTitle string
	)

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Updates.GetByRequestID(ctx, in.RequestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return updateDomain.ErrNotFound
			}
			return err
		}

		// Terminal-state guard: a processed request never re-opens.
		if req.Status != updateDomain.StatusPending {
			return updateDomain.ErrAlreadyReviewed
		}

		d, err := r.Deals.GetByIDForUpdate(ctx, req.DealID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return dealDomain.ErrNotFound
			}
			return err
		}

		now := time.Now().UTC()
		req.ReviewerID = &in.ReviewerID
		req.ReviewedAt = &now

		switch in.Action {
		case ActionApprove:
			changes, err := req.DecodeChanges()
			if err != nil {
				return err
			}
			changes.Apply(d)
			// Approval always activates the deal, whatever the payload asked for.
			d.Status = dealDomain.StatusActive
			req.Status = updateDomain.StatusApproved
		case ActionReject:
			req.Status = updateDomain.StatusRejected
			req.RejectionReason = &reason
			d.Status = dealDomain.StatusRejected
		}
		d.StatusUpdatedAt = now

		if err := r.Deals.Save(ctx, d); err != nil {
			return err
		}
		if err := r.Updates.Save(ctx, req); err != nil {
			return err
		}

		ownerID = d.OwnerID
		dealTitle = d.Title
		dto = &ReviewDTO{
			RequestID:     req.RequestID,
			DealID:        d.DealID,
			RequestStatus: string(req.Status),
			DealStatus:    string(d.Status),
			ReviewedAt:    now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notifyOwner(ctx, in.Action, ownerID, dealTitle, reason)
	return dto, nil
}

// notifyOwner is best-effort: dispatch failures are logged, never surfaced.
// Runs after the transaction commits so a rollback cannot leak a sent mail.
func (u *Usecase) notifyOwner(ctx context.Context, action Action, ownerID, dealTitle, reason string) {
	owner, err := u.users.GetByUserID(ctx, ownerID)
	if err != nil {
		logger.Errorf("review: lookup deal owner %s for notification: %v", ownerID, err)
		return
	}

	template := mailer.TemplateDealUpdateApproved
	params := map[string]string{"deal_title": dealTitle}
	if action == ActionReject {
		template = mailer.TemplateDealUpdateRejected
		params["reason"] = reason
	}
	if err := u.mailer.Send(ctx, template, owner.Email, params); err != nil {
		logger.Errorf("review: send %s to %s: %v", template, owner.Email, err)
	}
}
