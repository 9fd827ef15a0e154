package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PortalAudience restricts what a portal token can see
type PortalAudience string

const (
	PortalAudienceClient PortalAudience = "client"
	PortalAudienceSub    PortalAudience = "sub"
)

// PortalAccessToken is a capability-scoped credential for external users to a
// restricted view of one project. The raw token is returned once at mint time;
// only its SHA-256 hash is stored.
type PortalAccessToken struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID      string         `json:"orgId" gorm:"type:uuid;not null;index"`
	ProjectID  string         `json:"projectId" gorm:"type:uuid;not null;index"`
	Audience   PortalAudience `json:"audience" gorm:"type:varchar(10);not null"`
	Label      string         `json:"label" gorm:"not null"` // who it was issued to
	TokenHash  string         `json:"-" gorm:"uniqueIndex;not null"`
	ExpiresAt  time.Time      `json:"expiresAt" gorm:"not null"`
	RevokedAt  *time.Time     `json:"revokedAt" gorm:"default:null"`
	LastUsedAt *time.Time     `json:"lastUsedAt" gorm:"default:null"`
	CreatedBy  string         `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func (t *PortalAccessToken) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Active reports whether the token is currently usable
func (t *PortalAccessToken) Active(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
