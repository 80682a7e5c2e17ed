package http

import (
	"errors"
	"fmt"
	stdhttp "net/http"

	"github.com/labstack/echo/v4"

	"invest-platform-backend/internal/auth"
	dealDomain "invest-platform-backend/internal/domain/deal"
	appDomain "invest-platform-backend/internal/domain/application"
	updateDomain "invest-platform-backend/internal/domain/dealupdate"
	investDomain "invest-platform-backend/internal/domain/investment"
	userDomain "invest-platform-backend/internal/domain/user"
	investuc "invest-platform-backend/internal/usecase/invest"
	reviewuc "invest-platform-backend/internal/usecase/review"
	"invest-platform-backend/pkg/logger"
)

// writeDomainError maps usecase errors onto HTTP statuses. Unknown errors
// become an opaque 500 so internals never leak to clients.
func writeDomainError(c echo.Context, err error) error {
	var exceeds *investDomain.ExceedsRemainingError
	switch {
	case errors.Is(err, auth.ErrForbidden):
		return c.JSON(stdhttp.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, dealDomain.ErrNotFound),
		errors.Is(err, updateDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, appDomain.ErrNotFound),
		errors.Is(err, investDomain.ErrNotFound):
		return c.JSON(stdhttp.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, updateDomain.ErrAlreadyReviewed),
		errors.Is(err, appDomain.ErrAlreadyProcessed),
		errors.Is(err, dealDomain.ErrPendingExists),
		errors.Is(err, dealDomain.ErrNotActive),
		errors.Is(err, userDomain.ErrEmailTaken):
		return c.JSON(stdhttp.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.As(err, &exceeds):
		return c.JSON(stdhttp.StatusUnprocessableEntity, ErrorResponse{
			Error: err.Error(),
			Details: []FieldError{{
				Field:   "amount",
				Message: fmt.Sprintf("maximum investable amount is %.2f", exceeds.Cap),
			}},
		})
	case errors.Is(err, investDomain.ErrBelowMinimum),
		errors.Is(err, investDomain.ErrInsufficientBalance):
		return c.JSON(stdhttp.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, updateDomain.ErrReasonRequired),
		errors.Is(err, appDomain.ErrReasonRequired),
		errors.Is(err, reviewuc.ErrInvalidAction),
		errors.Is(err, investuc.ErrInvalidAmount),
		errors.Is(err, dealDomain.ErrInvalidInput):
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Errorf("http: unhandled error on %s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(stdhttp.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
