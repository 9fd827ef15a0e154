package dto

import (
	"time"

	"github.com/sitebeam/models"
)

// MintPortalTokenRequest represents the payload for issuing a portal token
type MintPortalTokenRequest struct {
	Audience models.PortalAudience `json:"audience" binding:"required,oneof=client sub"`
	Label    string                `json:"label" binding:"required"`
	TTLDays  int                   `json:"ttlDays" binding:"omitempty,min=1,max=365"`
}

// MintPortalTokenResponse carries the raw token, shown exactly once
type MintPortalTokenResponse struct {
	Token     string                   `json:"token"`
	Record    models.PortalAccessToken `json:"record"`
	ExpiresAt time.Time                `json:"expiresAt"`
}

// PortalProjectResponse is the restricted project summary behind a portal token
type PortalProjectResponse struct {
	Name     string `json:"name"`
	Number   string `json:"number"`
	Address  string `json:"address"`
	Status   string `json:"status"`
	Audience string `json:"audience"`
}
