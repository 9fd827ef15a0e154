package services

import (
	"testing"

	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := Register(dto.RegisterRequest{
		Email:    email,
		Password: "a-long-enough-password",
		Name:     &email,
	})
	require.NoError(t, err)
	return user
}

func TestCreateOrgMakesCreatorOwner(t *testing.T) {
	setupTestDB(t)
	svc := NewOrgService()
	creator := registerUser(t, "owner@example.com")

	org, err := svc.CreateOrg(dto.CreateOrgRequest{
		Name: "Ricci Builders",
		Slug: "ricci-builders",
	}, creator.ID)
	require.NoError(t, err)

	membership, err := svc.GetMembership(creator.ID, org.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrgRoleOwner, membership.Role)

	items, err := svc.ListMyOrgs(creator.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ricci-builders", items[0].Organization.Slug)
}

func TestCreateOrgSlugMustBeUnique(t *testing.T) {
	setupTestDB(t)
	svc := NewOrgService()
	creator := registerUser(t, "owner@example.com")

	_, err := svc.CreateOrg(dto.CreateOrgRequest{Name: "First", Slug: "taken"}, creator.ID)
	require.NoError(t, err)

	_, err = svc.CreateOrg(dto.CreateOrgRequest{Name: "Second", Slug: "taken"}, creator.ID)
	assert.Error(t, err)
}

func TestAddMemberRequiresExistingUserAndRole(t *testing.T) {
	setupTestDB(t)
	svc := NewOrgService()
	owner := registerUser(t, "owner@example.com")
	registerUser(t, "pm@example.com")

	org, err := svc.CreateOrg(dto.CreateOrgRequest{Name: "Ricci", Slug: "ricci"}, owner.ID)
	require.NoError(t, err)

	added, err := svc.AddMember(org.ID, dto.AddMemberRequest{
		Email: "pm@example.com",
		Role:  models.OrgRoleMember,
	}, models.OrgRoleOwner)
	require.NoError(t, err)
	assert.Equal(t, models.OrgRoleMember, added.Role)

	// already a member
	_, err = svc.AddMember(org.ID, dto.AddMemberRequest{
		Email: "pm@example.com",
		Role:  models.OrgRoleMember,
	}, models.OrgRoleOwner)
	assert.Error(t, err)

	// unknown email
	_, err = svc.AddMember(org.ID, dto.AddMemberRequest{
		Email: "nobody@example.com",
		Role:  models.OrgRoleMember,
	}, models.OrgRoleOwner)
	assert.Error(t, err)

	// plain members cannot add
	_, err = svc.AddMember(org.ID, dto.AddMemberRequest{
		Email: "pm@example.com",
		Role:  models.OrgRoleMember,
	}, models.OrgRoleMember)
	assert.Error(t, err)
}

func TestRemoveMemberKeepsLastOwner(t *testing.T) {
	setupTestDB(t)
	svc := NewOrgService()
	owner := registerUser(t, "owner@example.com")
	registerUser(t, "pm@example.com")

	org, err := svc.CreateOrg(dto.CreateOrgRequest{Name: "Ricci", Slug: "ricci"}, owner.ID)
	require.NoError(t, err)

	member, err := svc.AddMember(org.ID, dto.AddMemberRequest{
		Email: "pm@example.com",
		Role:  models.OrgRoleMember,
	}, models.OrgRoleOwner)
	require.NoError(t, err)

	assert.Error(t, svc.RemoveMember(org.ID, owner.ID, models.OrgRoleOwner),
		"the last owner must stay")
	assert.NoError(t, svc.RemoveMember(org.ID, member.UserID, models.OrgRoleOwner))
}

func TestMembershipScopesOrgAccess(t *testing.T) {
	setupTestDB(t)
	svc := NewOrgService()
	owner := registerUser(t, "owner@example.com")
	outsider := registerUser(t, "outsider@example.com")

	org, err := svc.CreateOrg(dto.CreateOrgRequest{Name: "Ricci", Slug: "ricci"}, owner.ID)
	require.NoError(t, err)

	_, err = svc.GetMembership(outsider.ID, org.ID)
	assert.Error(t, err)
}
