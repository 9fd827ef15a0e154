package services

import (
	"testing"
	"time"

	"github.com/sitebeam/database"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProject(t *testing.T, orgID string) models.Project {
	t.Helper()
	project := models.Project{
		OrgID:   orgID,
		Name:    "Riverside Duplex",
		Number:  "24-017",
		Address: "880 Riverside Dr",
		Status:  models.ProjectStatusActive,
	}
	require.NoError(t, database.DB.Create(&project).Error)
	return project
}

func TestMintAndValidatePortalToken(t *testing.T) {
	setupTestDB(t)
	svc := NewPortalService()
	orgID := newID()
	project := seedProject(t, orgID)

	minted, err := svc.MintToken(orgID, project.ID, newID(), dto.MintPortalTokenRequest{
		Audience: models.PortalAudienceClient,
		Label:    "Owner access",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, minted.Token)
	assert.NotEqual(t, minted.Token, minted.Record.TokenHash, "raw token must never be stored")

	record, err := svc.Validate(minted.Token)
	require.NoError(t, err)
	assert.Equal(t, project.ID, record.ProjectID)
	assert.Equal(t, models.PortalAudienceClient, record.Audience)
	assert.NotNil(t, record.LastUsedAt)

	summary, err := svc.ProjectSummary(record)
	require.NoError(t, err)
	assert.Equal(t, "Riverside Duplex", summary.Name)
	assert.Equal(t, "client", summary.Audience)
}

func TestMintPortalTokenUnknownProject(t *testing.T) {
	setupTestDB(t)
	svc := NewPortalService()

	_, err := svc.MintToken(newID(), newID(), newID(), dto.MintPortalTokenRequest{
		Audience: models.PortalAudienceSub,
		Label:    "Framer access",
	})
	assert.Error(t, err)
}

func TestRevokedTokenReadsAsUnknown(t *testing.T) {
	setupTestDB(t)
	svc := NewPortalService()
	orgID := newID()
	project := seedProject(t, orgID)

	minted, err := svc.MintToken(orgID, project.ID, newID(), dto.MintPortalTokenRequest{
		Audience: models.PortalAudienceClient,
		Label:    "Owner access",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(orgID, minted.Record.ID))

	_, err = svc.Validate(minted.Token)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestExpiredTokenReadsAsUnknown(t *testing.T) {
	setupTestDB(t)
	svc := NewPortalService()
	orgID := newID()
	project := seedProject(t, orgID)

	minted, err := svc.MintToken(orgID, project.ID, newID(), dto.MintPortalTokenRequest{
		Audience: models.PortalAudienceSub,
		Label:    "Framer access",
		TTLDays:  1,
	})
	require.NoError(t, err)

	// age the token past its expiry
	err = database.DB.Model(&models.PortalAccessToken{}).
		Where("id = ?", minted.Record.ID).
		Update("expires_at", time.Now().Add(-time.Hour)).Error
	require.NoError(t, err)

	_, err = svc.Validate(minted.Token)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGarbageTokenReadsAsUnknown(t *testing.T) {
	setupTestDB(t)
	svc := NewPortalService()

	_, err := svc.Validate("definitely-not-a-token")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListTokensScopedToProject(t *testing.T) {
	setupTestDB(t)
	svc := NewPortalService()
	orgID := newID()
	projectA := seedProject(t, orgID)
	projectB := seedProject(t, orgID)

	_, err := svc.MintToken(orgID, projectA.ID, newID(), dto.MintPortalTokenRequest{
		Audience: models.PortalAudienceClient,
		Label:    "Owner",
	})
	require.NoError(t, err)
	_, err = svc.MintToken(orgID, projectB.ID, newID(), dto.MintPortalTokenRequest{
		Audience: models.PortalAudienceSub,
		Label:    "Sub",
	})
	require.NoError(t, err)

	tokens, err := svc.ListTokens(orgID, projectA.ID)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "Owner", tokens[0].Label)
}
