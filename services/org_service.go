package services

import (
	"errors"
	"fmt"

	"github.com/sitebeam/database"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"gorm.io/gorm"
)

// OrgService handles business logic for organizations and memberships
type OrgService struct{}

// NewOrgService creates a new org service instance
func NewOrgService() *OrgService {
	return &OrgService{}
}

// CreateOrg creates an organization and its owner membership
func (s *OrgService) CreateOrg(req dto.CreateOrgRequest, creatorUserID string) (models.Organization, error) {
	var existing models.Organization
	result := database.DB.Where("slug = ?", req.Slug).First(&existing)
	if result.RowsAffected > 0 {
		return models.Organization{}, errors.New("slug already taken")
	}

	org := models.Organization{
		Name:         req.Name,
		Slug:         req.Slug,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&org).Error; err != nil {
			return err
		}
		membership := models.Membership{
			UserID: creatorUserID,
			OrgID:  org.ID,
			Role:   models.OrgRoleOwner,
		}
		return tx.Create(&membership).Error
	})
	return org, err
}

// ListMyOrgs returns the organizations the user belongs to, with role
func (s *OrgService) ListMyOrgs(userID string) ([]dto.OrgListItem, error) {
	var memberships []models.Membership
	if err := database.DB.Where("user_id = ?", userID).Find(&memberships).Error; err != nil {
		return nil, err
	}

	items := make([]dto.OrgListItem, 0, len(memberships))
	for _, m := range memberships {
		var org models.Organization
		if err := database.DB.First(&org, "id = ?", m.OrgID).Error; err != nil {
			continue // org soft-deleted
		}
		items = append(items, dto.OrgListItem{Organization: org, Role: m.Role})
	}
	return items, nil
}

// GetOrg retrieves an organization the user is a member of
func (s *OrgService) GetOrg(orgID string) (models.Organization, error) {
	var org models.Organization
	result := database.DB.First(&org, "id = ?", orgID)
	return org, result.Error
}

// UpdateOrg updates organization details. Caller must hold owner or admin role.
func (s *OrgService) UpdateOrg(orgID string, req dto.UpdateOrgRequest, role models.OrgRole) (models.Organization, error) {
	if role != models.OrgRoleOwner && role != models.OrgRoleAdmin {
		return models.Organization{}, fmt.Errorf("unauthorized: only owners and admins can update the organization")
	}

	var org models.Organization
	if err := database.DB.First(&org, "id = ?", orgID).Error; err != nil {
		return models.Organization{}, err
	}

	org.Name = req.Name
	org.ContactEmail = req.ContactEmail
	org.ContactPhone = req.ContactPhone
	org.Address = req.Address

	err := database.DB.Save(&org).Error
	return org, err
}

// ListMembers returns all memberships of an organization with users attached
func (s *OrgService) ListMembers(orgID string) ([]models.Membership, error) {
	var memberships []models.Membership
	result := database.DB.Preload("User").Where("org_id = ?", orgID).Find(&memberships)
	return memberships, result.Error
}

// AddMember adds an existing user (by email) to the organization
func (s *OrgService) AddMember(orgID string, req dto.AddMemberRequest, callerRole models.OrgRole) (models.Membership, error) {
	if callerRole != models.OrgRoleOwner && callerRole != models.OrgRoleAdmin {
		return models.Membership{}, fmt.Errorf("unauthorized: only owners and admins can add members")
	}

	var user models.User
	if err := database.DB.First(&user, "email = ?", req.Email).Error; err != nil {
		return models.Membership{}, errors.New("no user with that email")
	}

	var existing models.Membership
	result := database.DB.Where("user_id = ? AND org_id = ?", user.ID, orgID).First(&existing)
	if result.RowsAffected > 0 {
		return models.Membership{}, errors.New("user is already a member")
	}

	membership := models.Membership{
		UserID: user.ID,
		OrgID:  orgID,
		Role:   req.Role,
	}
	err := database.DB.Create(&membership).Error
	membership.User = user
	return membership, err
}

// RemoveMember removes a member from the organization. The last owner cannot
// be removed.
func (s *OrgService) RemoveMember(orgID, userID string, callerRole models.OrgRole) error {
	if callerRole != models.OrgRoleOwner && callerRole != models.OrgRoleAdmin {
		return fmt.Errorf("unauthorized: only owners and admins can remove members")
	}

	var target models.Membership
	if err := database.DB.First(&target, "org_id = ? AND user_id = ?", orgID, userID).Error; err != nil {
		return err
	}

	if target.Role == models.OrgRoleOwner {
		var owners int64
		if err := database.DB.Model(&models.Membership{}).
			Where("org_id = ? AND role = ?", orgID, models.OrgRoleOwner).
			Count(&owners).Error; err != nil {
			return err
		}
		if owners <= 1 {
			return errors.New("cannot remove the last owner")
		}
	}

	return database.DB.Delete(&target).Error
}

// GetMembership fetches a user's membership in an org
func (s *OrgService) GetMembership(userID, orgID string) (models.Membership, error) {
	var membership models.Membership
	result := database.DB.First(&membership, "user_id = ? AND org_id = ?", userID, orgID)
	return membership, result.Error
}
