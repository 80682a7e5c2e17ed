package http

import (
	stdhttp "net/http"

	"github.com/labstack/echo/v4"

	"invest-platform-backend/internal/adapter/middleware"
	onboardinguc "invest-platform-backend/internal/usecase/onboarding"
)

type ApplicationHandler struct{ uc *onboardinguc.Usecase }

func NewApplicationHandler(uc *onboardinguc.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) ApproveApplication(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(stdhttp.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}

	dto, err := h.uc.IssueAccount(c.Request().Context(), onboardinguc.IssueInput{
		ApplicationID: applicationID,
		ReviewerID:    actor.UserID,
		ReviewerRole:  actor.Role,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(stdhttp.StatusCreated, dto)
}

type rejectApplicationReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *ApplicationHandler) RejectApplication(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(stdhttp.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	applicationID := c.Param("application_id")
	if applicationID == "" {
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "missing application_id path param"})
	}
	var req rejectApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(stdhttp.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.RejectApplication(c.Request().Context(), onboardinguc.RejectInput{
		ApplicationID: applicationID,
		ReviewerID:    actor.UserID,
		ReviewerRole:  actor.Role,
		Reason:        req.Reason,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(stdhttp.StatusOK, dto)
}
