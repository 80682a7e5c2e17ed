package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin            Role = "ADMIN"
	RoleDealManager      Role = "DEAL_MANAGER"
	RoleFinancialOfficer Role = "FINANCIAL_OFFICER"
	RolePortfolioAdvisor Role = "PORTFOLIO_ADVISOR"
	RoleInvestor         Role = "INVESTOR"
	RolePartner          Role = "PARTNER"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// User rows store emails lower-cased; the unique index and the duplicate
// check in onboarding agree on case-insensitive matching.
// ResetToken and ResetTokenExpiry are set and cleared together.
type User struct {
	ID                  uint64         `gorm:"primaryKey;column:id" json:"-"`
	UserID              string         `gorm:"size:32;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	Email               string         `gorm:"size:191;uniqueIndex:ux_users_email_active" json:"email"`
	Name                string         `gorm:"size:191" json:"name"`
	Role                Role           `gorm:"type:enum('ADMIN','DEAL_MANAGER','FINANCIAL_OFFICER','PORTFOLIO_ADVISOR','INVESTOR','PARTNER');default:'INVESTOR'" json:"role"`
	WalletBalance       float64        `gorm:"type:decimal(18,2);default:0" json:"wallet_balance"`
	TotalInvested       float64        `gorm:"type:decimal(18,2);default:0" json:"total_invested"`
	TotalReturns        float64        `gorm:"type:decimal(18,2);default:0" json:"total_returns"`
	PasswordHash        string         `gorm:"size:191" json:"-"`
	NeedsPasswordChange bool           `gorm:"default:false" json:"needs_password_change"`
	ResetToken          *string        `gorm:"size:64" json:"-"`
	ResetTokenExpiry    *time.Time     `json:"-"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

type PartnerStatus string

const (
	PartnerPending   PartnerStatus = "PENDING"
	PartnerApproved  PartnerStatus = "APPROVED"
	PartnerSuspended PartnerStatus = "SUSPENDED"
)

type PartnerTier string

const (
	TierBronze PartnerTier = "BRONZE"
	TierSilver PartnerTier = "SILVER"
	TierGold   PartnerTier = "GOLD"
)

// Partner is the profile row created alongside a user onboarded from a
// partner application. At most one per user.
type Partner struct {
	ID          uint64         `gorm:"primaryKey;column:id" json:"-"`
	PartnerID   string         `gorm:"size:32;uniqueIndex:ux_partners_partner_id" json:"partner_id"`
	UserID      uint64         `gorm:"not null;uniqueIndex:ux_partners_user" json:"-"`
	CompanyName string         `gorm:"size:191" json:"company_name"`
	Status      PartnerStatus  `gorm:"type:enum('PENDING','APPROVED','SUSPENDED');default:'PENDING'" json:"status"`
	Tier        PartnerTier    `gorm:"type:enum('BRONZE','SILVER','GOLD');default:'BRONZE'" json:"tier"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Partner) TableName() string { return "partners" }
