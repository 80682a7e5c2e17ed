package http

import (
	stdhttp "net/http"

	"github.com/labstack/echo/v4"

	"invest-platform-backend/internal/adapter/middleware"
	reviewuc "invest-platform-backend/internal/usecase/review"
)

type ReviewHandler struct{ uc *reviewuc.Usecase }

func NewReviewHandler(uc *reviewuc.Usecase) *ReviewHandler { return &ReviewHandler{uc: uc} }

type reviewReq struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
	Reason string `json:"reason"`
}

func (h *ReviewHandler) ReviewUpdateRequest(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(stdhttp.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	requestID := c.Param("request_id")
	if requestID == "" {
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "missing request_id path param"})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(stdhttp.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Review(c.Request().Context(), reviewuc.ReviewInput{
		RequestID:    requestID,
		ReviewerID:   actor.UserID,
		ReviewerRole: actor.Role,
		Action:       reviewuc.Action(req.Action),
		Reason:       req.Reason,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(stdhttp.StatusOK, dto)
}
