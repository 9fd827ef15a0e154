package services

import (
	"time"

	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
	"github.com/sitebeam/utils"
	"gorm.io/gorm"
)

// defaultPortalTTLDays is the token lifetime when the minting request does not
// name one.
const defaultPortalTTLDays = 90

// PortalService mints and validates capability-scoped access tokens for the
// client and sub portals
type PortalService struct {
	repo        *repositories.PortalTokenRepository
	projectRepo *repositories.ProjectRepository
	outbox      *OutboxService
}

// NewPortalService creates a new portal service instance
func NewPortalService() *PortalService {
	return &PortalService{
		repo:        repositories.NewPortalTokenRepository(),
		projectRepo: repositories.NewProjectRepository(),
		outbox:      NewOutboxService(),
	}
}

// MintToken issues a portal token for one project. The raw token is returned
// exactly once; only its hash is stored.
func (s *PortalService) MintToken(orgID, projectID, userID string, req dto.MintPortalTokenRequest) (dto.MintPortalTokenResponse, error) {
	if _, err := s.projectRepo.FindByID(orgID, projectID); err != nil {
		return dto.MintPortalTokenResponse{}, err
	}

	raw, err := utils.NewToken()
	if err != nil {
		return dto.MintPortalTokenResponse{}, err
	}

	ttlDays := req.TTLDays
	if ttlDays == 0 {
		ttlDays = defaultPortalTTLDays
	}
	expiresAt := time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour)

	record, err := s.repo.Create(models.PortalAccessToken{
		OrgID:     orgID,
		ProjectID: projectID,
		Audience:  req.Audience,
		Label:     req.Label,
		TokenHash: utils.HashToken(raw),
		ExpiresAt: expiresAt,
		CreatedBy: userID,
	})
	if err != nil {
		return dto.MintPortalTokenResponse{}, err
	}

	s.outbox.Enqueue(orgID, "portal.invite", map[string]interface{}{
		"portalTokenId": record.ID,
		"projectId":     projectID,
		"audience":      req.Audience,
		"label":         req.Label,
	})

	return dto.MintPortalTokenResponse{
		Token:     raw,
		Record:    record,
		ExpiresAt: expiresAt,
	}, nil
}

// ListTokens retrieves the token records minted for a project
func (s *PortalService) ListTokens(orgID, projectID string) ([]models.PortalAccessToken, error) {
	return s.repo.FindByProject(orgID, projectID)
}

// RevokeToken revokes a token; already revoked tokens are left untouched
func (s *PortalService) RevokeToken(orgID, id string) error {
	return s.repo.Revoke(orgID, id, time.Now())
}

// Validate resolves a raw portal token to its record. Expired and revoked
// tokens read the same as unknown ones.
func (s *PortalService) Validate(raw string) (models.PortalAccessToken, error) {
	record, err := s.repo.FindByHash(utils.HashToken(raw))
	if err != nil {
		return models.PortalAccessToken{}, err
	}
	if !record.Active(time.Now()) {
		return models.PortalAccessToken{}, gorm.ErrRecordNotFound
	}
	// Best effort; validation never fails on a bookkeeping write.
	now := time.Now()
	_ = s.repo.TouchLastUsed(record.ID, now)
	record.LastUsedAt = &now
	return record, nil
}

// ProjectSummary returns the restricted project view for a validated token
func (s *PortalService) ProjectSummary(token models.PortalAccessToken) (dto.PortalProjectResponse, error) {
	project, err := s.projectRepo.FindByID(token.OrgID, token.ProjectID)
	if err != nil {
		return dto.PortalProjectResponse{}, err
	}
	return dto.PortalProjectResponse{
		Name:     project.Name,
		Number:   project.Number,
		Address:  project.Address,
		Status:   string(project.Status),
		Audience: string(token.Audience),
	}, nil
}
