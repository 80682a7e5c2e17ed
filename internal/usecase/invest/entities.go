package invest

import (
	"errors"
	"time"

	"invest-platform-backend/internal/domain/user"
)

var ErrInvalidAmount = errors.New("amount must be positive")

type CommitInput struct {
	InvestorID   string
	InvestorRole user.Role
	DealID       string
	Amount       float64
}

type InvestmentDTO struct {
	InvestmentID   string    `json:"investment_id"`
	DealID         string    `json:"deal_id"`
	Amount         float64   `json:"amount"`
	ExpectedReturn float64   `json:"expected_return"`
	WalletBalance  float64   `json:"wallet_balance"`
	DealStatus     string    `json:"deal_status"`
	CreatedAt      time.Time `json:"created_at"`
}
