package onboarding

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"invest-platform-backend/internal/auth"
	appDomain "invest-platform-backend/internal/domain/application"
	userDomain "invest-platform-backend/internal/domain/user"
	"invest-platform-backend/internal/domain/uow"
	"invest-platform-backend/internal/infrastructure/mailer"
	"invest-platform-backend/pkg/id"
	"invest-platform-backend/pkg/logger"
	"invest-platform-backend/pkg/password"
)

type Usecase struct {
	partners userDomain.PartnerRepository
	uow      uow.UnitOfWork
	mailer   mailer.Mailer
}

func NewUsecase(partners userDomain.PartnerRepository, tx uow.UnitOfWork, m mailer.Mailer) *Usecase {
	return &Usecase{partners: partners, uow: tx, mailer: m}
}

// IssueAccount converts an approved application into a live user account: a
// one-time credential is generated, only its bcrypt hash is stored, and the
// application flips to APPROVED in the same transaction. The welcome mail
// carries the plaintext exactly once and never rolls back the account; a
// failed partner-profile insert is logged, not rolled back either.
func (u *Usecase) IssueAccount(ctx context.Context, in IssueInput) (*IssuedDTO, error) {
	if err := auth.Require(in.ReviewerRole, auth.PermReviewApplications); err != nil {
		return nil, err
	}

	var (
		app     *appDomain.Application
		newUser *userDomain.User
		plain   string
	)

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		app, err = r.Applications.GetByApplicationID(ctx, in.ApplicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return appDomain.ErrNotFound
			}
			return err
		}
		if !app.Reviewable() {
			return appDomain.ErrAlreadyProcessed
		}

		// Emails are matched case-insensitively: lower-cased once here, for
		// both the duplicate check and the stored row.
		email := strings.ToLower(strings.TrimSpace(app.Email))
		if _, err := r.Users.GetByEmail(ctx, email); err == nil {
			return userDomain.ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		plain = password.NewTemporary()
		hash, err := password.Hash(plain)
		if err != nil {
			return err
		}

		role := userDomain.RoleInvestor
		if app.Kind == appDomain.KindPartner {
			role = userDomain.RolePartner
		}
		newUser = &userDomain.User{
			UserID:              id.NewID32(),
			Email:               email,
			Name:                app.Name,
			Role:                role,
			PasswordHash:        hash,
			NeedsPasswordChange: true,
		}
		if err := r.Users.Create(ctx, newUser); err != nil {
			return err
		}

		now := time.Now().UTC()
		app.Status = appDomain.StatusApproved
		app.ReviewerID = &in.ReviewerID
		app.ReviewedAt = &now
		return r.Applications.Save(ctx, app)
	})
	if err != nil {
		return nil, err
	}

	// Secondary effects favor availability: the account stands even if the
	// partner profile or the welcome mail fails.
	if app.Kind == appDomain.KindPartner {
		p := &userDomain.Partner{
			PartnerID:   id.NewID32(),
			UserID:      newUser.ID,
			CompanyName: app.CompanyName,
			Status:      userDomain.PartnerPending,
			Tier:        userDomain.TierBronze,
		}
		if err := u.partners.Create(ctx, p); err != nil {
			logger.Errorf("onboarding: create partner profile for user %s: %v", newUser.UserID, err)
		}
	}

	if err := u.mailer.Send(ctx, mailer.TemplateWelcome, newUser.Email, map[string]string{
		"name":               newUser.Name,
		"temporary_password": plain,
	}); err != nil {
		logger.Errorf("onboarding: send %s to %s: %v", mailer.TemplateWelcome, newUser.Email, err)
	}

	return &IssuedDTO{
		UserID:              newUser.UserID,
		Email:               newUser.Email,
		Name:                newUser.Name,
		Role:                string(newUser.Role),
		NeedsPasswordChange: newUser.NeedsPasswordChange,
		ApplicationID:       app.ApplicationID,
		CreatedAt:           newUser.CreatedAt,
	}, nil
}

// RejectApplication marks the application REJECTED with a mandatory reason.
func (u *Usecase) RejectApplication(ctx context.Context, in RejectInput) (*RejectedDTO, error) {
	if err := auth.Require(in.ReviewerRole, auth.PermReviewApplications); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, appDomain.ErrReasonRequired
	}

	var (
		dto   *RejectedDTO
		email string
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		app, err := r.Applications.GetByApplicationID(ctx, in.ApplicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return appDomain.ErrNotFound
			}
			return err
		}
		if !app.Reviewable() {
			return appDomain.ErrAlreadyProcessed
		}

		now := time.Now().UTC()
		app.Status = appDomain.StatusRejected
		app.RejectionReason = &reason
		app.ReviewerID = &in.ReviewerID
		app.ReviewedAt = &now
		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}

		email = app.Email
		dto = &RejectedDTO{ApplicationID: app.ApplicationID, Status: string(app.Status), ReviewedAt: now}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := u.mailer.Send(ctx, mailer.TemplateApplicationRejected, email, map[string]string{
		"reason": reason,
	}); err != nil {
		logger.Errorf("onboarding: send %s to %s: %v", mailer.TemplateApplicationRejected, email, err)
	}
	return dto, nil
}
