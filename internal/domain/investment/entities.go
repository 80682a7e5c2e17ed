package investment

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
)

var (
	ErrNotFound            = errors.New("investment not found")
	ErrBelowMinimum        = errors.New("amount below minimum investment")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
)

// ExceedsRemainingError carries the largest amount still admissible so the
// caller can offer "adjust to max available".
type ExceedsRemainingError struct {
	Cap float64
}

func (e *ExceedsRemainingError) Error() string {
	return fmt.Sprintf("amount exceeds remaining funding (max available %.2f)", e.Cap)
}

// Investment.Amount is invariant once created; ActualReturn only grows, via
// profit distributions.
type Investment struct {
	ID             uint64         `gorm:"primaryKey;column:id" json:"-"`
	InvestmentID   string         `gorm:"size:32;uniqueIndex:ux_investments_investment_id" json:"investment_id"`
	InvestorID     uint64         `gorm:"not null;index:idx_investments_investor" json:"-"`
	DealID         uint64         `gorm:"not null;index:idx_investments_deal" json:"-"`
	Amount         float64        `gorm:"type:decimal(18,2)" json:"amount"`
	Status         Status         `gorm:"type:enum('ACTIVE','COMPLETED');default:'ACTIVE'" json:"status"`
	ExpectedReturn float64        `gorm:"type:decimal(18,2)" json:"expected_return"`
	ActualReturn   float64        `gorm:"type:decimal(18,2);default:0" json:"actual_return"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Investment) TableName() string { return "investments" }

type TransactionType string

const (
	TxInvestment TransactionType = "INVESTMENT"
	TxDeposit    TransactionType = "DEPOSIT"
	TxReturn     TransactionType = "RETURN"
)

// Transaction is the ledger row written alongside every wallet mutation.
type Transaction struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string          `gorm:"size:32;uniqueIndex:ux_transactions_transaction_id" json:"transaction_id"`
	UserID        uint64          `gorm:"not null;index:idx_transactions_user" json:"-"`
	Type          TransactionType `gorm:"type:enum('INVESTMENT','DEPOSIT','RETURN')" json:"type"`
	Amount        float64         `gorm:"type:decimal(18,2)" json:"amount"`
	Reference     string          `gorm:"size:64" json:"reference"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }
