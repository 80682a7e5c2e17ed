package onboarding

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"invest-platform-backend/internal/auth"
	appDomain "invest-platform-backend/internal/domain/application"
	userDomain "invest-platform-backend/internal/domain/user"
	"invest-platform-backend/internal/domain/uow"
	"invest-platform-backend/internal/infrastructure/mailer"
	"invest-platform-backend/internal/testutil/applicationmock"
	"invest-platform-backend/internal/testutil/mailermock"
	"invest-platform-backend/internal/testutil/uowmock"
	"invest-platform-backend/internal/testutil/usermock"
	"invest-platform-backend/pkg/password"
)

const (
	reviewerID = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	appID      = "pppppppppppppppppppppppppppppppp"
)

func pendingApplication(kind appDomain.Kind) *appDomain.Application {
	return &appDomain.Application{
		ID:            3,
		ApplicationID: appID,
		Kind:          kind,
		Email:         "New.Investor@Example.COM",
		Name:          "New Investor",
		CompanyName:   "Acme Capital",
		Status:        appDomain.StatusPending,
	}
}

type fixture struct {
	app      *appDomain.Application
	created  *userDomain.User
	saved    *appDomain.Application
	partner  *userDomain.Partner
	partners *usermock.PartnerRepo
	uowMock  *uowmock.UoW
	mailMock *mailermock.Mailer
}

func newFixture(app *appDomain.Application, existing map[string]*userDomain.User) *fixture {
	f := &fixture{app: app, mailMock: &mailermock.Mailer{}}

	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*userDomain.User, error) {
			if u, ok := existing[email]; ok {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, u *userDomain.User) error {
			u.ID = 99
			f.created = u
			return nil
		},
	}
	apps := &applicationmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*appDomain.Application, error) {
			if id != app.ApplicationID {
				return nil, gorm.ErrRecordNotFound
			}
			return app, nil
		},
		SaveFn: func(ctx context.Context, a *appDomain.Application) error { f.saved = a; return nil },
	}
	f.partners = &usermock.PartnerRepo{
		CreateFn: func(ctx context.Context, p *userDomain.Partner) error { f.partner = p; return nil },
	}
	f.uowMock = &uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(uow.Repos{Users: users, Applications: apps})
		},
	}
	return f
}

func (f *fixture) usecase() *Usecase { return NewUsecase(f.partners, f.uowMock, f.mailMock) }

func adminIssue() IssueInput {
	return IssueInput{ApplicationID: appID, ReviewerID: reviewerID, ReviewerRole: userDomain.RoleAdmin}
}

func TestIssueAccount_UserApplication(t *testing.T) {
	f := newFixture(pendingApplication(appDomain.KindUser), nil)
	uc := f.usecase()

	dto, err := uc.IssueAccount(context.Background(), adminIssue())
	if err != nil {
		t.Fatalf("IssueAccount: %v", err)
	}

	if f.created == nil {
		t.Fatal("no user created")
	}
	// emails are stored lower-cased so the unique index is case-insensitive
	if f.created.Email != "new.investor@example.com" {
		t.Errorf("email = %q, want lower-cased", f.created.Email)
	}
	if f.created.Role != userDomain.RoleInvestor {
		t.Errorf("role = %s, want INVESTOR", f.created.Role)
	}
	if !f.created.NeedsPasswordChange {
		t.Error("needsPasswordChange not set")
	}
	if f.created.PasswordHash == "" {
		t.Fatal("password hash empty")
	}

	if f.saved == nil || f.saved.Status != appDomain.StatusApproved {
		t.Errorf("application not approved: %+v", f.saved)
	}
	if f.saved.ReviewerID == nil || *f.saved.ReviewerID != reviewerID || f.saved.ReviewedAt == nil {
		t.Errorf("reviewer not recorded: %+v", f.saved)
	}

	if f.partner != nil {
		t.Error("user application must not create a partner profile")
	}

	// welcome mail carries the plaintext exactly once, and it matches the hash
	if len(f.mailMock.Sent) != 1 || f.mailMock.Sent[0].Template != mailer.TemplateWelcome {
		t.Fatalf("mail = %+v", f.mailMock.Sent)
	}
	plain := f.mailMock.Sent[0].Params["temporary_password"]
	if len(plain) != password.TemporaryLength {
		t.Fatalf("temporary password %q has wrong length", plain)
	}
	if plain == f.created.PasswordHash {
		t.Fatal("plaintext stored instead of hash")
	}
	if !password.Verify(f.created.PasswordHash, plain) {
		t.Fatal("stored hash does not match mailed credential")
	}

	if dto.UserID != f.created.UserID || dto.Email != "new.investor@example.com" {
		t.Errorf("dto: %+v", dto)
	}
}

func TestIssueAccount_PartnerApplication(t *testing.T) {
	f := newFixture(pendingApplication(appDomain.KindPartner), nil)
	uc := f.usecase()

	if _, err := uc.IssueAccount(context.Background(), adminIssue()); err != nil {
		t.Fatalf("IssueAccount: %v", err)
	}

	if f.created.Role != userDomain.RolePartner {
		t.Errorf("role = %s, want PARTNER", f.created.Role)
	}
	if f.partner == nil {
		t.Fatal("partner profile not created")
	}
	if f.partner.UserID != 99 || f.partner.CompanyName != "Acme Capital" {
		t.Errorf("partner row: %+v", f.partner)
	}
	if f.partner.Status != userDomain.PartnerPending || f.partner.Tier != userDomain.TierBronze {
		t.Errorf("partner defaults: %+v", f.partner)
	}
}

func TestIssueAccount_PartnerProfileFailureKeepsAccount(t *testing.T) {
	f := newFixture(pendingApplication(appDomain.KindPartner), nil)
	f.partners.CreateFn = func(context.Context, *userDomain.Partner) error {
		return errors.New("partners table down")
	}
	uc := f.usecase()

	dto, err := uc.IssueAccount(context.Background(), adminIssue())
	if err != nil {
		t.Fatalf("profile failure must not roll back the account: %v", err)
	}
	if dto == nil || f.created == nil {
		t.Fatal("account missing")
	}
	// welcome mail still goes out
	if len(f.mailMock.Sent) != 1 {
		t.Fatalf("mail = %+v", f.mailMock.Sent)
	}
}

func TestIssueAccount_DuplicateEmail(t *testing.T) {
	existing := map[string]*userDomain.User{
		"new.investor@example.com": {ID: 1, Email: "new.investor@example.com"},
	}
	f := newFixture(pendingApplication(appDomain.KindUser), existing)
	uc := f.usecase()

	_, err := uc.IssueAccount(context.Background(), adminIssue())
	if !errors.Is(err, userDomain.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
	if f.created != nil {
		t.Fatal("no second user row may be created")
	}
	if f.saved != nil {
		t.Fatal("application must stay untouched")
	}
	if len(f.mailMock.Sent) != 0 {
		t.Fatal("no mail on failure")
	}
}

func TestIssueAccount_Failures(t *testing.T) {
	t.Run("terminal application", func(t *testing.T) {
		app := pendingApplication(appDomain.KindUser)
		app.Status = appDomain.StatusApproved
		f := newFixture(app, nil)
		uc := f.usecase()
		_, err := uc.IssueAccount(context.Background(), adminIssue())
		if !errors.Is(err, appDomain.ErrAlreadyProcessed) {
			t.Fatalf("want ErrAlreadyProcessed, got %v", err)
		}
	})

	t.Run("application not found", func(t *testing.T) {
		f := newFixture(pendingApplication(appDomain.KindUser), nil)
		uc := f.usecase()
		in := adminIssue()
		in.ApplicationID = "ffffffffffffffffffffffffffffffff"
		_, err := uc.IssueAccount(context.Background(), in)
		if !errors.Is(err, appDomain.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})

	t.Run("non-admin reviewer", func(t *testing.T) {
		f := newFixture(pendingApplication(appDomain.KindUser), nil)
		uc := f.usecase()
		in := adminIssue()
		in.ReviewerRole = userDomain.RoleDealManager
		_, err := uc.IssueAccount(context.Background(), in)
		if !errors.Is(err, auth.ErrForbidden) {
			t.Fatalf("want ErrForbidden, got %v", err)
		}
	})
}

func TestIssueAccount_MailFailureKeepsAccount(t *testing.T) {
	f := newFixture(pendingApplication(appDomain.KindUser), nil)
	f.mailMock.Err = errors.New("gateway down")
	uc := f.usecase()

	if _, err := uc.IssueAccount(context.Background(), adminIssue()); err != nil {
		t.Fatalf("mail failure must not surface: %v", err)
	}
	if f.created == nil {
		t.Fatal("account must exist despite mail failure")
	}
}

func TestRejectApplication(t *testing.T) {
	app := pendingApplication(appDomain.KindUser)
	f := newFixture(app, nil)
	uc := f.usecase()

	dto, err := uc.RejectApplication(context.Background(), RejectInput{
		ApplicationID: appID,
		ReviewerID:    reviewerID,
		ReviewerRole:  userDomain.RoleAdmin,
		Reason:        "incomplete documents",
	})
	if err != nil {
		t.Fatalf("RejectApplication: %v", err)
	}
	if f.saved == nil || f.saved.Status != appDomain.StatusRejected {
		t.Errorf("application not rejected: %+v", f.saved)
	}
	if f.saved.RejectionReason == nil || *f.saved.RejectionReason != "incomplete documents" {
		t.Errorf("reason not recorded: %+v", f.saved)
	}
	if dto.Status != "REJECTED" {
		t.Errorf("dto: %+v", dto)
	}
	if len(f.mailMock.Sent) != 1 || f.mailMock.Sent[0].Template != mailer.TemplateApplicationRejected {
		t.Fatalf("mail = %+v", f.mailMock.Sent)
	}
}

func TestRejectApplication_ReasonRequired(t *testing.T) {
	f := newFixture(pendingApplication(appDomain.KindUser), nil)
	uc := f.usecase()

	_, err := uc.RejectApplication(context.Background(), RejectInput{
		ApplicationID: appID,
		ReviewerID:    reviewerID,
		ReviewerRole:  userDomain.RoleAdmin,
		Reason:        "  ",
	})
	if !errors.Is(err, appDomain.ErrReasonRequired) {
		t.Fatalf("want ErrReasonRequired, got %v", err)
	}
	if f.saved != nil {
		t.Fatal("application must stay untouched")
	}
}
