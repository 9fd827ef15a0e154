package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/services"
)

var submittalService = services.NewSubmittalService()

// ListSubmittals lists project submittals with pagination
func ListSubmittals(c *gin.Context) {
	response, err := submittalService.ListSubmittals(listFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve submittals: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// GetSubmittal returns one submittal
func GetSubmittal(c *gin.Context) {
	orgID, _ := orgContext(c)

	submittal, err := submittalService.GetSubmittal(orgID, c.Param("projectId"), c.Param("submittalId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Submittal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": submittal})
}

// CreateSubmittal creates a submittal with the next per-project number
func CreateSubmittal(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.CreateSubmittalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	submittal, err := submittalService.CreateSubmittal(orgID, c.Param("projectId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create submittal: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": submittal})
}

// UpdateSubmittal updates a submittal
func UpdateSubmittal(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.UpdateSubmittalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	submittal, err := submittalService.UpdateSubmittal(orgID, c.Param("projectId"), c.Param("submittalId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update submittal: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": submittal})
}

// DeleteSubmittal soft-deletes a submittal
func DeleteSubmittal(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := submittalService.DeleteSubmittal(orgID, c.Param("projectId"), c.Param("submittalId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete submittal: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Submittal deleted successfully"})
}
