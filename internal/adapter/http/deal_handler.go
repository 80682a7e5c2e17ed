package http

import (
	stdhttp "net/http"

	"github.com/labstack/echo/v4"

	"invest-platform-backend/internal/adapter/middleware"
	updateDomain "invest-platform-backend/internal/domain/dealupdate"
	dealuc "invest-platform-backend/internal/usecase/deal"
)

type DealHandler struct{ uc *dealuc.Usecase }

func NewDealHandler(uc *dealuc.Usecase) *DealHandler { return &DealHandler{uc: uc} }

type createDealReq struct {
	Title          string  `json:"title"           validate:"required"`
	Description    string  `json:"description"`
	FundingGoal    float64 `json:"funding_goal"    validate:"required,gt=0,dec2"`
	MinInvestment  float64 `json:"min_investment"  validate:"required,gt=0,dec2"`
	ExpectedReturn float64 `json:"expected_return" validate:"gte=0"`
}

func (h *DealHandler) CreateDeal(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(stdhttp.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	var req createDealReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(stdhttp.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), dealuc.CreateDealInput{
		OwnerID:        actor.UserID,
		OwnerRole:      actor.Role,
		Title:          req.Title,
		Description:    req.Description,
		FundingGoal:    req.FundingGoal,
		MinInvestment:  req.MinInvestment,
		ExpectedReturn: req.ExpectedReturn,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(stdhttp.StatusCreated, dto)
}

func (h *DealHandler) GetDeal(c echo.Context) error {
	dealID := c.Param("deal_id")
	if dealID == "" {
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "missing deal_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), dealID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(stdhttp.StatusOK, dto)
}

type submitUpdateReq struct {
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	FundingGoal    *float64 `json:"funding_goal"    validate:"omitempty,gt=0,dec2"`
	MinInvestment  *float64 `json:"min_investment"  validate:"omitempty,gt=0,dec2"`
	ExpectedReturn *float64 `json:"expected_return" validate:"omitempty,gte=0"`
	Status         *string  `json:"status"`
}

func (h *DealHandler) SubmitUpdateRequest(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return c.JSON(stdhttp.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}
	dealID := c.Param("deal_id")
	if dealID == "" {
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "missing deal_id path param"})
	}
	var req submitUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(stdhttp.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.SubmitUpdateRequest(c.Request().Context(), dealuc.SubmitUpdateInput{
		DealID:        dealID,
		RequesterID:   actor.UserID,
		RequesterRole: actor.Role,
		Changes: updateDomain.Changes{
			Title:          req.Title,
			Description:    req.Description,
			FundingGoal:    req.FundingGoal,
			MinInvestment:  req.MinInvestment,
			ExpectedReturn: req.ExpectedReturn,
			Status:         req.Status,
		},
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(stdhttp.StatusCreated, dto)
}
