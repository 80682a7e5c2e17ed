package onboarding

import (
	"time"

	"invest-platform-backend/internal/domain/user"
)

type IssueInput struct {
	ApplicationID string
	ReviewerID    string
	ReviewerRole  user.Role
}

type RejectInput struct {
	ApplicationID string
	ReviewerID    string
	ReviewerRole  user.Role
	Reason        string
}

type IssuedDTO struct {
	UserID              string    `json:"user_id"`
	Email               string    `json:"email"`
	Name                string    `json:"name"`
	Role                string    `json:"role"`
	NeedsPasswordChange bool      `json:"needs_password_change"`
	ApplicationID       string    `json:"application_id"`
	CreatedAt           time.Time `json:"created_at"`
}

type RejectedDTO struct {
	ApplicationID string    `json:"application_id"`
	Status        string    `json:"status"`
	ReviewedAt    time.Time `json:"reviewed_at"`
}
