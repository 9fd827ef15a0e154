package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company represents an org-scoped directory company (client, sub, vendor)
type Company struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID     string         `json:"orgId" gorm:"type:uuid;not null;index"`
	Name      string         `json:"name" gorm:"not null"`
	Trade     *string        `json:"trade" gorm:"default:null"`
	Phone     *string        `json:"phone" gorm:"default:null"`
	Address   *string        `json:"address" gorm:"default:null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Contacts []Contact `json:"contacts,omitempty" gorm:"foreignKey:CompanyID"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Contact represents an org-scoped directory person, optionally tied to a company
type Contact struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID     string         `json:"orgId" gorm:"type:uuid;not null;index"`
	CompanyID *string        `json:"companyId" gorm:"type:uuid;default:null;index"`
	Name      string         `json:"name" gorm:"not null"`
	Email     *string        `json:"email" gorm:"default:null"`
	Phone     *string        `json:"phone" gorm:"default:null"`
	Title     *string        `json:"title" gorm:"default:null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
