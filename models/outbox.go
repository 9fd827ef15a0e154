package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OutboxStatus represents delivery state of a background job
type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
)

// OutboxJob is a pending background job row. Services write jobs; an external
// worker (not part of this repository) consumes them.
type OutboxJob struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID     string         `json:"orgId" gorm:"type:uuid;not null;index"`
	Kind      string         `json:"kind" gorm:"not null;index"` // e.g. signing.notify, portal.invite
	Payload   datatypes.JSON `json:"payload" gorm:"not null"`
	Status    OutboxStatus   `json:"status" gorm:"type:varchar(10);not null;default:'pending';index"`
	Attempts  int            `json:"attempts" gorm:"not null;default:0"`
	RunAfter  time.Time      `json:"runAfter" gorm:"not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (j *OutboxJob) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}
