package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProposalStatus represents the client-facing lifecycle of a proposal
type ProposalStatus string

const (
	ProposalStatusDraft    ProposalStatus = "draft"
	ProposalStatusSent     ProposalStatus = "sent"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusDeclined ProposalStatus = "declined"
)

// Proposal represents a client proposal with content blocks and signing
// parties encoded as party-details text blocks (see utils.BuildPartyDetails).
type Proposal struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID           string         `json:"orgId" gorm:"type:uuid;not null;index"`
	ProjectID       string         `json:"projectId" gorm:"type:uuid;not null;index"`
	Title           string         `json:"title" gorm:"not null"`
	Content         datatypes.JSON `json:"content" gorm:"default:null"` // ordered content blocks
	PartyBlocks     datatypes.JSON `json:"partyBlocks" gorm:"default:null"`
	Status          ProposalStatus `json:"status" gorm:"type:varchar(10);not null;default:'draft'"`
	PublicTokenHash *string        `json:"-" gorm:"index;default:null"`
	DocumentID      *string        `json:"documentId" gorm:"type:uuid;default:null"`
	SentAt          *time.Time     `json:"sentAt" gorm:"default:null"`
	DecidedAt       *time.Time     `json:"decidedAt" gorm:"default:null"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Document *Document `json:"document,omitempty" gorm:"foreignKey:DocumentID"`
}

func (p *Proposal) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
