package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"invest-platform-backend/internal/adapter/middleware"
	"invest-platform-backend/internal/auth"
	appDomain "invest-platform-backend/internal/domain/application"
	userDomain "invest-platform-backend/internal/domain/user"
	"invest-platform-backend/internal/domain/uow"
	"invest-platform-backend/internal/testutil/applicationmock"
	"invest-platform-backend/internal/testutil/mailermock"
	"invest-platform-backend/internal/testutil/uowmock"
	"invest-platform-backend/internal/testutil/usermock"
	onboardinguc "invest-platform-backend/internal/usecase/onboarding"
)

func adminActor() auth.Actor {
	return auth.Actor{
		UserID: strings.Repeat("c", 32),
		Email:  "admin@example.com",
		Role:   userDomain.RoleAdmin,
	}
}

func newApplicationHandler(status appDomain.Status) *ApplicationHandler {
	app := &appDomain.Application{
		ID:            3,
		ApplicationID: strings.Repeat("f", 32),
		Kind:          appDomain.KindUser,
		Email:         "applicant@example.com",
		Name:          "Applicant",
		Status:        status,
	}
	apps := &applicationmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*appDomain.Application, error) {
			return app, nil
		},
		SaveFn: func(ctx context.Context, a *appDomain.Application) error { return nil },
	}
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*userDomain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, u *userDomain.User) error { u.ID = 42; return nil },
	}
	tx := &uowmock.UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(uow.Repos{Users: users, Applications: apps})
		},
	}
	return NewApplicationHandler(onboardinguc.NewUsecase(&usermock.PartnerRepo{}, tx, &mailermock.Mailer{}))
}

func doApplication(t *testing.T, handler func(echo.Context) error, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	e := newEchoWithValidator()
	req := httptest.NewRequest(stdhttp.MethodPost, "/applications/x/review", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(strings.Repeat("f", 32))
	middleware.SetActor(c, adminActor())

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestApproveApplication(t *testing.T) {
	h := newApplicationHandler(appDomain.StatusPending)

	rec := doApplication(t, h.ApproveApplication, nil)
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var dto onboardinguc.IssuedDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.Email != "applicant@example.com" || dto.Role != "INVESTOR" || !dto.NeedsPasswordChange {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestApproveApplication_AlreadyProcessed(t *testing.T) {
	h := newApplicationHandler(appDomain.StatusRejected)

	rec := doApplication(t, h.ApproveApplication, nil)
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestRejectApplication_HTTP(t *testing.T) {
	h := newApplicationHandler(appDomain.StatusPending)

	rec := doApplication(t, h.RejectApplication, map[string]any{"reason": "incomplete documents"})
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var dto onboardinguc.RejectedDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if dto.Status != "REJECTED" {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestRejectApplication_MissingReason(t *testing.T) {
	h := newApplicationHandler(appDomain.StatusPending)

	rec := doApplication(t, h.RejectApplication, map[string]any{})
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !containsFieldMsg(er.Details, "Reason", "is required") {
		t.Fatalf("missing reason detail: %+v", er.Details)
	}
}
