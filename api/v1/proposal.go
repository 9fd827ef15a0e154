package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/services"
)

var proposalService = services.NewProposalService()

// ListProposals lists a project's proposals
func ListProposals(c *gin.Context) {
	orgID, _ := orgContext(c)

	proposals, err := proposalService.ListProposals(orgID, c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve proposals: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": proposals})
}

// GetProposal returns one proposal
func GetProposal(c *gin.Context) {
	orgID, _ := orgContext(c)

	proposal, err := proposalService.GetProposal(orgID, c.Param("proposalId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Proposal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": proposal})
}

// CreateProposal creates a draft proposal
func CreateProposal(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	proposal, err := proposalService.CreateProposal(orgID, c.Param("projectId"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to create proposal: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": proposal})
}

// UpdateProposal updates a draft proposal
func UpdateProposal(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.UpdateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	proposal, err := proposalService.UpdateProposal(orgID, c.Param("proposalId"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to update proposal: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": proposal})
}

// SendProposal publishes a proposal: mints its public link and routes the
// backing document for signature
func SendProposal(c *gin.Context) {
	orgID, _ := orgContext(c)
	userID := c.GetString("userId")

	response, err := proposalService.SendProposal(orgID, userID, c.Param("proposalId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to send proposal: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// DeleteProposal soft-deletes a proposal
func DeleteProposal(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := proposalService.DeleteProposal(orgID, c.Param("proposalId")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to delete proposal: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Proposal deleted successfully"})
}
