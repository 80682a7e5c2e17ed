package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"invest-platform-backend/internal/auth"
)

const actorContextKey = "auth.actor"

// RequireAuth rejects requests without a valid bearer token and stores the
// verified Actor on the echo context for handlers to pick up.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if !strings.HasPrefix(raw, prefix) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			actor, err := auth.VerifyJWT(strings.TrimSpace(strings.TrimPrefix(raw, prefix)))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}
			SetActor(c, actor)
			return next(c)
		}
	}
}

func SetActor(c echo.Context, a auth.Actor) { c.Set(actorContextKey, a) }

func ActorFrom(c echo.Context) (auth.Actor, bool) {
	a, ok := c.Get(actorContextKey).(auth.Actor)
	return a, ok
}
