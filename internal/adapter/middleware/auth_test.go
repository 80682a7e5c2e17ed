package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"invest-platform-backend/internal/auth"
	userDomain "invest-platform-backend/internal/domain/user"
)

func setupAuthEcho(t *testing.T) *echo.Echo {
	t.Helper()
	if err := auth.InitJWTSecret("test-secret"); err != nil {
		t.Fatal(err)
	}
	e := echo.New()
	e.HideBanner = true
	protected := e.Group("", RequireAuth())
	protected.GET("/me", func(c echo.Context) error {
		actor, ok := ActorFrom(c)
		if !ok {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "actor missing"})
		}
		return c.JSON(http.StatusOK, map[string]string{"user_id": actor.UserID, "role": string(actor.Role)})
	})
	return e
}

func TestRequireAuth_ValidToken(t *testing.T) {
	e := setupAuthEcho(t)

	token, err := auth.GenerateJWT(strings.Repeat("b", 32), "investor@example.com", userDomain.RoleInvestor)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), strings.Repeat("b", 32)) {
		t.Fatalf("actor not propagated: %s", rec.Body.String())
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	e := setupAuthEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	e := setupAuthEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
