package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle stage of a project
type ProjectStatus string

const (
	ProjectStatusPlanning ProjectStatus = "planning"
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusOnHold   ProjectStatus = "on_hold"
	ProjectStatusClosed   ProjectStatus = "closed"
)

// Project represents a construction project container
type Project struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID           string         `json:"orgId" gorm:"type:uuid;not null;index"`
	Name            string         `json:"name" gorm:"not null"`
	Number          string         `json:"number" gorm:"default:null"`
	Description     string         `json:"description" gorm:"default:null"`
	Address         string         `json:"address" gorm:"default:null"`
	Status          ProjectStatus  `json:"status" gorm:"type:varchar(10);not null;default:'planning'"`
	ClientCompanyID *string        `json:"clientCompanyId" gorm:"type:uuid;default:null"`
	ClientContactID *string        `json:"clientContactId" gorm:"type:uuid;default:null"`
	StartDate       *time.Time     `json:"startDate" gorm:"default:null"`
	EndDate         *time.Time     `json:"endDate" gorm:"default:null"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	ClientCompany *Company `json:"clientCompany,omitempty" gorm:"foreignKey:ClientCompanyID"`
	ClientContact *Contact `json:"clientContact,omitempty" gorm:"foreignKey:ClientContactID"`
	Tasks         []Task   `json:"tasks,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
