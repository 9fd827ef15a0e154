package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrgRole represents a member's role within an organization
type OrgRole string

const (
	OrgRoleOwner  OrgRole = "owner"
	OrgRoleAdmin  OrgRole = "admin"
	OrgRoleMember OrgRole = "member"
)

// Organization is the tenant boundary. Every tenant-owned row carries its ID.
type Organization struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	Name         string         `json:"name" gorm:"not null"`
	Slug         string         `json:"slug" gorm:"uniqueIndex;not null"`
	ContactEmail *string        `json:"contactEmail" gorm:"default:null"`
	ContactPhone *string        `json:"contactPhone" gorm:"default:null"`
	Address      *string        `json:"address" gorm:"default:null"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE"`
}

func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Membership links a user to an organization with an org-level role
type Membership struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string         `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_membership_user_org"`
	OrgID     string         `json:"orgId" gorm:"type:uuid;not null;uniqueIndex:idx_membership_user_org;index"`
	Role      OrgRole        `json:"role" gorm:"type:varchar(10);not null;default:'member'"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
