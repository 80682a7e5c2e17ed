package http

import (
	stdhttp "net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"invest-platform-backend/internal/auth"
	userDomain "invest-platform-backend/internal/domain/user"
	"invest-platform-backend/pkg/password"
)

type AuthHandler struct{ users userDomain.Repository }

func NewAuthHandler(users userDomain.Repository) *AuthHandler {
	return &AuthHandler{users: users}
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	Token               string `json:"token"`
	UserID              string `json:"user_id"`
	Role                string `json:"role"`
	NeedsPasswordChange bool   `json:"needs_password_change"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(stdhttp.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	u, err := h.users.GetByEmail(c.Request().Context(), email)
	// Same response for unknown email and wrong password.
	if err != nil || !password.Verify(u.PasswordHash, req.Password) {
		return c.JSON(stdhttp.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	}

	token, err := auth.GenerateJWT(u.UserID, u.Email, u.Role)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(stdhttp.StatusOK, loginResp{
		Token:               token,
		UserID:              u.UserID,
		Role:                string(u.Role),
		NeedsPasswordChange: u.NeedsPasswordChange,
	})
}
