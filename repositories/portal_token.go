package repositories

import (
	"time"

	"github.com/sitebeam/database"
	"github.com/sitebeam/models"
)

// PortalTokenRepository handles database operations for portal access tokens
type PortalTokenRepository struct{}

// NewPortalTokenRepository creates a new portal token repository instance
func NewPortalTokenRepository() *PortalTokenRepository {
	return &PortalTokenRepository{}
}

// FindByHash retrieves a token record by its hash
func (r *PortalTokenRepository) FindByHash(hash string) (models.PortalAccessToken, error) {
	var token models.PortalAccessToken
	result := database.DB.First(&token, "token_hash = ?", hash)
	return token, result.Error
}

// FindByProject retrieves all tokens minted for a project
func (r *PortalTokenRepository) FindByProject(orgID, projectID string) ([]models.PortalAccessToken, error) {
	var tokens []models.PortalAccessToken
	result := database.DB.
		Where("org_id = ? AND project_id = ?", orgID, projectID).
		Order("created_at desc").
		Find(&tokens)
	return tokens, result.Error
}

// Create inserts a token record
func (r *PortalTokenRepository) Create(token models.PortalAccessToken) (models.PortalAccessToken, error) {
	result := database.DB.Create(&token)
	return token, result.Error
}

// Revoke stamps RevokedAt on a token
func (r *PortalTokenRepository) Revoke(orgID, id string, at time.Time) error {
	return database.DB.Model(&models.PortalAccessToken{}).
		Where("org_id = ? AND id = ? AND revoked_at IS NULL", orgID, id).
		Update("revoked_at", at).Error
}

// TouchLastUsed stamps LastUsedAt, best effort
func (r *PortalTokenRepository) TouchLastUsed(id string, at time.Time) error {
	return database.DB.Model(&models.PortalAccessToken{}).
		Where("id = ?", id).
		Update("last_used_at", at).Error
}
