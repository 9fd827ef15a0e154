package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentStatus represents the signing lifecycle of a document
type DocumentStatus string

const (
	DocumentStatusDraft           DocumentStatus = "draft"
	DocumentStatusOutForSignature DocumentStatus = "out_for_signature"
	DocumentStatusCompleted       DocumentStatus = "completed"
	DocumentStatusVoided          DocumentStatus = "voided"
)

// Document represents a file that can be routed for sequential signature
type Document struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID      string         `json:"orgId" gorm:"type:uuid;not null;index"`
	ProjectID  *string        `json:"projectId" gorm:"type:uuid;default:null;index"`
	Title      string         `json:"title" gorm:"not null"`
	StorageKey string         `json:"storageKey" gorm:"default:null"`
	Revision   int            `json:"revision" gorm:"not null;default:1"`
	Status     DocumentStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedBy  string         `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	SigningRequests []SigningRequest `json:"signingRequests,omitempty" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// SigningStatus represents a per-recipient signature state
type SigningStatus string

const (
	SigningStatusPending  SigningStatus = "pending"
	SigningStatusSent     SigningStatus = "sent"
	SigningStatusSigned   SigningStatus = "signed"
	SigningStatusDeclined SigningStatus = "declined"
	SigningStatusVoided   SigningStatus = "voided"
	SigningStatusExpired  SigningStatus = "expired"
)

// IsTerminal reports whether the request can no longer be actioned
func (s SigningStatus) IsTerminal() bool {
	switch s {
	case SigningStatusSigned, SigningStatusDeclined, SigningStatusVoided, SigningStatusExpired:
		return true
	}
	return false
}

// SigningRequest tracks e-signature completion for one recipient of a
// document revision. Recipients sign in Sequence order; the raw signing token
// is never stored, only its SHA-256 hash.
type SigningRequest struct {
	ID             string         `json:"id" gorm:"primaryKey;type:uuid"`
	DocumentID     string         `json:"documentId" gorm:"type:uuid;not null;index"`
	Sequence       int            `json:"sequence" gorm:"not null"`
	Required       bool           `json:"required" gorm:"not null;default:true"`
	RecipientName  string         `json:"recipientName" gorm:"not null"`
	RecipientEmail string         `json:"recipientEmail" gorm:"not null"`
	Status         SigningStatus  `json:"status" gorm:"type:varchar(10);not null;default:'pending'"`
	TokenHash      *string        `json:"-" gorm:"index;default:null"`
	SentAt         *time.Time     `json:"sentAt" gorm:"default:null"`
	SignedAt       *time.Time     `json:"signedAt" gorm:"default:null"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

func (r *SigningRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
