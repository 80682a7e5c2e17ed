package review

import (
	"errors"
	"time"

	"invest-platform-backend/internal/domain/user"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

var ErrInvalidAction = errors.New("action must be approve or reject")

type ReviewInput struct {
	RequestID    string
	ReviewerID   string
	ReviewerRole user.Role
	Action       Action
	Reason       string
}

type ReviewDTO struct {
	RequestID     string    `json:"request_id"`
	DealID        string    `json:"deal_id"`
	RequestStatus string    `json:"request_status"`
	DealStatus    string    `json:"deal_status"`
	ReviewedAt    time.Time `json:"reviewed_at"`
}
