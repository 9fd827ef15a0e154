package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/services"
)

var orgService = services.NewOrgService()

// orgContext pulls the org ID and caller role stored by OrgMiddleware
func orgContext(c *gin.Context) (string, models.OrgRole) {
	orgID := c.GetString("orgId")
	role, _ := c.Get("orgRole")
	orgRole, _ := role.(models.OrgRole)
	return orgID, orgRole
}

// CreateOrg creates an organization with the caller as owner
func CreateOrg(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var req dto.CreateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	org, err := orgService.CreateOrg(req, userID.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to create organization: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   org,
	})
}

// ListMyOrgs lists the organizations the caller belongs to
func ListMyOrgs(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	orgs, err := orgService.ListMyOrgs(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve organizations: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   orgs,
	})
}

// GetOrg returns the organization resolved by OrgMiddleware
func GetOrg(c *gin.Context) {
	orgID, _ := orgContext(c)

	org, err := orgService.GetOrg(orgID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Organization not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   org,
	})
}

// UpdateOrg updates organization details
func UpdateOrg(c *gin.Context) {
	orgID, orgRole := orgContext(c)

	var req dto.UpdateOrgRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	org, err := orgService.UpdateOrg(orgID, req, orgRole)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Failed to update organization: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   org,
	})
}

// ListMembers lists the organization's members
func ListMembers(c *gin.Context) {
	orgID, _ := orgContext(c)

	members, err := orgService.ListMembers(orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve members: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   members,
	})
}

// AddMember adds an existing user to the organization by email
func AddMember(c *gin.Context) {
	orgID, orgRole := orgContext(c)

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	membership, err := orgService.AddMember(orgID, req, orgRole)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to add member: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   membership,
	})
}

// RemoveMember removes a member from the organization
func RemoveMember(c *gin.Context) {
	orgID, orgRole := orgContext(c)
	userID := c.Param("userId")

	if err := orgService.RemoveMember(orgID, userID, orgRole); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to remove member: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Member removed successfully",
	})
}
