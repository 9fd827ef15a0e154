package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmittalStatus represents the review lifecycle of a submittal
type SubmittalStatus string

const (
	SubmittalStatusDraft           SubmittalStatus = "draft"
	SubmittalStatusOpen            SubmittalStatus = "open"
	SubmittalStatusApproved        SubmittalStatus = "approved"
	SubmittalStatusApprovedAsNoted SubmittalStatus = "approved_as_noted"
	SubmittalStatusReviseResubmit  SubmittalStatus = "revise_resubmit"
	SubmittalStatusClosed          SubmittalStatus = "closed"
)

// Submittal represents a project-scoped submittal package under review
type Submittal struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID       string          `json:"orgId" gorm:"type:uuid;not null;index"`
	ProjectID   string          `json:"projectId" gorm:"type:uuid;not null;index"`
	Number      int             `json:"number" gorm:"not null"` // per-project sequence
	SpecSection string          `json:"specSection" gorm:"default:null"`
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text;default:null"`
	Status      SubmittalStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	AssigneeID  *string         `json:"assigneeId" gorm:"type:uuid;default:null"`
	DueDate     *time.Time      `json:"dueDate" gorm:"default:null"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Assignee *Contact `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
}

func (s *Submittal) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
