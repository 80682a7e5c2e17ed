package deal

import (
	"time"

	"invest-platform-backend/internal/domain/dealupdate"
	"invest-platform-backend/internal/domain/user"
)

type CreateDealInput struct {
	OwnerID        string
	OwnerRole      user.Role
	Title          string
	Description    string
	FundingGoal    float64
	MinInvestment  float64
	ExpectedReturn float64
}

type DealDTO struct {
	DealID         string    `json:"deal_id"`
	OwnerID        string    `json:"owner_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	FundingGoal    float64   `json:"funding_goal"`
	CurrentFunding float64   `json:"current_funding"`
	MinInvestment  float64   `json:"min_investment"`
	ExpectedReturn float64   `json:"expected_return"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type SubmitUpdateInput struct {
	DealID        string
	RequesterID   string
	RequesterRole user.Role
	Changes       dealupdate.Changes
}

type UpdateRequestDTO struct {
	RequestID string    `json:"request_id"`
	DealID    string    `json:"deal_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
