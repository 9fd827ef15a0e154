package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
)

// Public, unauthenticated endpoints for external recipients. Tokens arrive
// in the URL; unknown and expired ones uniformly read as 404.

// ViewSigningRequest shows the signer-facing view behind a signing token
func ViewSigningRequest(c *gin.Context) {
	response, err := signingService.View(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// SubmitSignature completes a signing request from the public page
func SubmitSignature(c *gin.Context) {
	var req dto.SubmitSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	if err := signingService.Complete(c.Param("token"), req); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Signature recorded"})
}

// DeclineSignature refuses a signing request from the public page
func DeclineSignature(c *gin.Context) {
	var req dto.SubmitSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	if err := signingService.Decline(c.Param("token"), req); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Decline recorded"})
}

// ViewPublicProposal shows the client-facing proposal behind a public token
func ViewPublicProposal(c *gin.Context) {
	response, err := proposalService.ViewPublic(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// AcceptPublicProposal records the client's acceptance
func AcceptPublicProposal(c *gin.Context) {
	if err := proposalService.Decide(c.Param("token"), true); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Proposal accepted"})
}

// DeclinePublicProposal records the client's decline
func DeclinePublicProposal(c *gin.Context) {
	if err := proposalService.Decide(c.Param("token"), false); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Proposal declined"})
}
