package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ChangeOrderStatus represents approval state of a change order
type ChangeOrderStatus string

const (
	ChangeOrderStatusDraft    ChangeOrderStatus = "draft"
	ChangeOrderStatusPending  ChangeOrderStatus = "pending"
	ChangeOrderStatusApproved ChangeOrderStatus = "approved"
	ChangeOrderStatusRejected ChangeOrderStatus = "rejected"
)

// ChangeOrder represents a project-scoped contract change
type ChangeOrder struct {
	ID          string            `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID       string            `json:"orgId" gorm:"type:uuid;not null;index"`
	ProjectID   string            `json:"projectId" gorm:"type:uuid;not null;index"`
	Number      int               `json:"number" gorm:"not null"` // per-project sequence
	Title       string            `json:"title" gorm:"not null"`
	Description string            `json:"description" gorm:"type:text;default:null"`
	Amount      decimal.Decimal   `json:"amount" gorm:"type:numeric(14,2);not null"`
	Status      ChangeOrderStatus `json:"status" gorm:"type:varchar(10);not null;default:'draft'"`
	ApprovedAt  *time.Time        `json:"approvedAt" gorm:"default:null"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt    `json:"-" gorm:"index"`
}

func (c *ChangeOrder) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
