package http

import (
	stdhttp "net/http"

	"github.com/labstack/echo/v4"

	"invest-platform-backend/internal/adapter/middleware"
	investuc "invest-platform-backend/internal/usecase/invest"
)

type InvestHandler struct{ uc *investuc.Usecase }

func NewInvestHandler(uc *investuc.Usecase) *InvestHandler { return &InvestHandler{uc: uc} }

type investReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *InvestHandler) Invest(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(stdhttp.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	dealID := c.Param("deal_id")
	if dealID == "" {
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "missing deal_id path param"})
	}
	var req investReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(stdhttp.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Commit(c.Request().Context(), investuc.CommitInput{
		InvestorID:   actor.UserID,
		InvestorRole: actor.Role,
		DealID:       dealID,
		Amount:       req.Amount,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(stdhttp.StatusCreated, dto)
}

type previewResp struct {
	Accepted bool    `json:"accepted"`
	Reason   string  `json:"reason,omitempty"`
	Cap      float64 `json:"cap"`
}

// PreviewInvest runs the investment guard without committing anything, so
// clients can offer "invest the maximum available" before submitting.
func (h *InvestHandler) PreviewInvest(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(stdhttp.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	dealID := c.Param("deal_id")
	var req investReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(stdhttp.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	out, err := h.uc.Preview(c.Request().Context(), investuc.CommitInput{
		InvestorID:   actor.UserID,
		InvestorRole: actor.Role,
		DealID:       dealID,
		Amount:       req.Amount,
	})
	if err != nil {
		return writeDomainError(c, err)
	}

	resp := previewResp{Accepted: out.Verdict == investuc.Accepted, Cap: out.Cap}
	if guardErr := out.Err(); guardErr != nil {
		resp.Reason = guardErr.Error()
	}
	return c.JSON(stdhttp.StatusOK, resp)
}
