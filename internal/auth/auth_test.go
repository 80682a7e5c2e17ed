package auth

import (
	"errors"
	"testing"

	"invest-platform-backend/internal/domain/user"
)

func TestJWTRoundTrip(t *testing.T) {
	if err := InitJWTSecret("test-secret"); err != nil {
		t.Fatalf("InitJWTSecret: %v", err)
	}

	tok, err := GenerateJWT("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "admin@example.com", user.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	actor, err := VerifyJWT(tok)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if actor.UserID != "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" || actor.Role != user.RoleAdmin {
		t.Fatalf("unexpected actor: %+v", actor)
	}
}

func TestVerifyJWT_Garbage(t *testing.T) {
	if err := InitJWTSecret("test-secret"); err != nil {
		t.Fatalf("InitJWTSecret: %v", err)
	}
	if _, err := VerifyJWT("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestInitJWTSecret_Empty(t *testing.T) {
	if err := InitJWTSecret(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestPermissions(t *testing.T) {
	cases := []struct {
		role user.Role
		perm Permission
		want bool
	}{
		{user.RoleAdmin, PermReviewUpdates, true},
		{user.RoleDealManager, PermReviewUpdates, true},
		{user.RolePartner, PermReviewUpdates, false},
		{user.RoleInvestor, PermInvest, true},
		{user.RoleInvestor, PermReviewApplications, false},
		{user.RoleAdmin, PermReviewApplications, true},
		{user.RoleFinancialOfficer, PermManageDeals, false},
	}
	for _, c := range cases {
		if got := Can(c.role, c.perm); got != c.want {
			t.Errorf("Can(%s, %s) = %v, want %v", c.role, c.perm, got, c.want)
		}
	}

	if err := Require(user.RoleInvestor, PermReviewUpdates); !errors.Is(err, ErrForbidden) {
		t.Fatalf("Require: want ErrForbidden, got %v", err)
	}
	if err := Require(user.RoleAdmin, PermReviewUpdates); err != nil {
		t.Fatalf("Require: unexpected %v", err)
	}
}
