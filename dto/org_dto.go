package dto

import "github.com/sitebeam/models"

// CreateOrgRequest represents the payload for creating an organization
type CreateOrgRequest struct {
	Name         string  `json:"name" binding:"required"`
	Slug         string  `json:"slug" binding:"required,lowercase"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone *string `json:"contactPhone"`
	Address      *string `json:"address"`
}

// UpdateOrgRequest represents the payload for updating an organization
type UpdateOrgRequest struct {
	Name         string  `json:"name" binding:"required"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone *string `json:"contactPhone"`
	Address      *string `json:"address"`
}

// AddMemberRequest invites an existing user into an organization
type AddMemberRequest struct {
	Email string         `json:"email" binding:"required,email"`
	Role  models.OrgRole `json:"role" binding:"required,oneof=owner admin member"`
}

// OrgListItem is an organization with the caller's role attached
type OrgListItem struct {
	Organization models.Organization `json:"organization"`
	Role         models.OrgRole      `json:"role"`
}
