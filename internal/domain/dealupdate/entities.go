package dealupdate

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"invest-platform-backend/internal/domain/deal"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var (
	ErrNotFound        = errors.New("update request not found")
	ErrAlreadyReviewed = errors.New("update request already processed")
	ErrReasonRequired  = errors.New("rejection reason is required")
)

// Changes is the proposed-changes payload stored on an update request. Nil
// fields are left untouched on apply; later approved requests simply
// overwrite earlier writes.
type Changes struct {
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	FundingGoal    *float64 `json:"funding_goal,omitempty"`
	MinInvestment  *float64 `json:"min_investment,omitempty"`
	ExpectedReturn *float64 `json:"expected_return,omitempty"`
	Status         *string  `json:"status,omitempty"`
}

// Apply overwrites the deal's fields with the non-nil proposed values. The
// proposed Status is ignored: approval always activates the deal.
func (c Changes) Apply(d *deal.Deal) {
	if c.Title != nil {
		d.Title = *c.Title
	}
	if c.Description != nil {
		d.Description = *c.Description
	}
	if c.FundingGoal != nil {
		d.FundingGoal = *c.FundingGoal
	}
	if c.MinInvestment != nil {
		d.MinInvestment = *c.MinInvestment
	}
	if c.ExpectedReturn != nil {
		d.ExpectedReturn = *c.ExpectedReturn
	}
}

// UpdateRequest is a partner's proposal to change a published deal, consumed
// exactly once by the review workflow. APPROVED and REJECTED are terminal.
type UpdateRequest struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	RequestID       string         `gorm:"size:32;uniqueIndex:ux_update_requests_request_id" json:"request_id"`
	DealID          uint64         `gorm:"not null;index:idx_update_requests_deal" json:"-"`
	Changes         datatypes.JSON `gorm:"not null" json:"changes"`
	Status          Status         `gorm:"type:enum('PENDING','APPROVED','REJECTED');default:'PENDING'" json:"status"`
	RequesterID     string         `gorm:"size:32" json:"requester_id"`
	ReviewerID      *string        `gorm:"size:32" json:"reviewer_id,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	RejectionReason *string        `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UpdateRequest) TableName() string { return "deal_update_requests" }

// DecodeChanges unmarshals the stored proposed-changes payload.
func (r *UpdateRequest) DecodeChanges() (Changes, error) {
	var c Changes
	if len(r.Changes) == 0 {
		return c, nil
	}
	err := json.Unmarshal(r.Changes, &c)
	return c, err
}
