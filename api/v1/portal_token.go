package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/services"
)

var portalService = services.NewPortalService()

// MintPortalToken issues a portal token for a project. The raw token appears
// in this response only.
func MintPortalToken(c *gin.Context) {
	orgID, _ := orgContext(c)
	userID := c.GetString("userId")

	var req dto.MintPortalTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	response, err := portalService.MintToken(orgID, c.Param("projectId"), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to mint portal token: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": response})
}

// ListPortalTokens lists the portal tokens minted for a project
func ListPortalTokens(c *gin.Context) {
	orgID, _ := orgContext(c)

	tokens, err := portalService.ListTokens(orgID, c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve portal tokens: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": tokens})
}

// RevokePortalToken revokes a portal token
func RevokePortalToken(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := portalService.RevokeToken(orgID, c.Param("tokenId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to revoke portal token: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Portal token revoked"})
}
