package application

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Kind string

const (
	KindUser    Kind = "USER"
	KindPartner Kind = "PARTNER"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
)

var (
	ErrNotFound         = errors.New("application not found")
	ErrAlreadyProcessed = errors.New("application already processed")
	ErrReasonRequired   = errors.New("rejection reason is required")
)

// Application is a signup request reviewed by an admin. APPROVED and REJECTED
// are terminal; approving creates exactly one user (plus a partner profile
// for PARTNER kind).
type Application struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID   string         `gorm:"size:32;uniqueIndex:ux_applications_application_id" json:"application_id"`
	Kind            Kind           `gorm:"type:enum('USER','PARTNER');default:'USER'" json:"kind"`
	Email           string         `gorm:"size:191;index:idx_applications_email" json:"email"`
	Name            string         `gorm:"size:191" json:"name"`
	CompanyName     string         `gorm:"size:191" json:"company_name,omitempty"`
	Status          Status         `gorm:"type:enum('PENDING','IN_PROGRESS','APPROVED','REJECTED');default:'PENDING'" json:"status"`
	RejectionReason *string        `gorm:"type:text" json:"rejection_reason,omitempty"`
	ReviewerID      *string        `gorm:"size:32" json:"reviewer_id,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Application) TableName() string { return "applications" }

// Reviewable reports whether the application can still be approved or
// rejected.
func (a *Application) Reviewable() bool {
	return a.Status == StatusPending || a.Status == StatusInProgress
}
