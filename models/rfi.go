package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RfiStatus represents the lifecycle of a request for information
type RfiStatus string

const (
	RfiStatusDraft    RfiStatus = "draft"
	RfiStatusOpen     RfiStatus = "open"
	RfiStatusAnswered RfiStatus = "answered"
	RfiStatusClosed   RfiStatus = "closed"
)

// Rfi represents a project-scoped request for information
type Rfi struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID      string         `json:"orgId" gorm:"type:uuid;not null;index"`
	ProjectID  string         `json:"projectId" gorm:"type:uuid;not null;index"`
	Number     int            `json:"number" gorm:"not null"` // per-project sequence
	Subject    string         `json:"subject" gorm:"not null"`
	Question   string         `json:"question" gorm:"type:text"`
	Answer     string         `json:"answer" gorm:"type:text;default:null"`
	Status     RfiStatus      `json:"status" gorm:"type:varchar(10);not null;default:'draft'"`
	AssigneeID *string        `json:"assigneeId" gorm:"type:uuid;default:null"`
	DueDate    *time.Time     `json:"dueDate" gorm:"default:null"`
	AnsweredAt *time.Time     `json:"answeredAt" gorm:"default:null"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Assignee *Contact `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
}

func (r *Rfi) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
