package deal

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
)

var (
	ErrNotFound      = errors.New("deal not found")
	ErrNotActive     = errors.New("deal is not active")
	ErrInvalidInput  = errors.New("invalid deal input")
	ErrPendingExists = errors.New("deal already has a pending update request")
)

// Deal is an investment opportunity owned by a partner. CurrentFunding never
// exceeds FundingGoal once the deal is ACTIVE; both are mutated only inside a
// unit-of-work transaction holding the deal row lock.
type Deal struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	DealID          string         `gorm:"size:32;uniqueIndex:ux_deals_deal_id_active" json:"deal_id"`
	OwnerID         string         `gorm:"size:32;index:idx_deals_owner" json:"owner_id"`
	Title           string         `gorm:"size:191" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	FundingGoal     float64        `gorm:"type:decimal(18,2)" json:"funding_goal"`
	CurrentFunding  float64        `gorm:"type:decimal(18,2);default:0" json:"current_funding"`
	MinInvestment   float64        `gorm:"type:decimal(18,2)" json:"min_investment"`
	ExpectedReturn  float64        `gorm:"type:decimal(6,4)" json:"expected_return"`
	Status          Status         `gorm:"type:enum('DRAFT','PENDING','ACTIVE','REJECTED','COMPLETED');default:'PENDING'" json:"status"`
	StatusUpdatedAt time.Time      `json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Deal) TableName() string { return "deals" }

// Remaining is the funding capacity still open on the deal, never negative.
func (d *Deal) Remaining() float64 {
	r := d.FundingGoal - d.CurrentFunding
	if r < 0 {
		return 0
	}
	return r
}
