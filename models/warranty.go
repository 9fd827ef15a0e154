package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WarrantyStatus represents the handling state of a warranty request
type WarrantyStatus string

const (
	WarrantyStatusNew       WarrantyStatus = "new"
	WarrantyStatusScheduled WarrantyStatus = "scheduled"
	WarrantyStatusResolved  WarrantyStatus = "resolved"
	WarrantyStatusClosed    WarrantyStatus = "closed"
)

// WarrantyRequest represents a post-completion issue reported by a client,
// either in-app or through the portal
type WarrantyRequest struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID         string         `json:"orgId" gorm:"type:uuid;not null;index"`
	ProjectID     string         `json:"projectId" gorm:"type:uuid;not null;index"`
	Title         string         `json:"title" gorm:"not null"`
	Description   string         `json:"description" gorm:"type:text;default:null"`
	Status        WarrantyStatus `json:"status" gorm:"type:varchar(10);not null;default:'new'"`
	ReporterID    *string        `json:"reporterId" gorm:"type:uuid;default:null"`
	ReporterEmail *string        `json:"reporterEmail" gorm:"default:null"` // portal submissions
	Attachments   datatypes.JSON `json:"attachments" gorm:"default:null"`  // storage keys
	ScheduledFor  *time.Time     `json:"scheduledFor" gorm:"default:null"`
	ResolvedAt    *time.Time     `json:"resolvedAt" gorm:"default:null"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

func (w *WarrantyRequest) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
