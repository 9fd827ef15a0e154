package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/services"
)

var rfiService = services.NewRfiService()

// ListRfis lists project RFIs with pagination
func ListRfis(c *gin.Context) {
	response, err := rfiService.ListRfis(listFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve RFIs: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// GetRfi returns one RFI
func GetRfi(c *gin.Context) {
	orgID, _ := orgContext(c)

	rfi, err := rfiService.GetRfi(orgID, c.Param("projectId"), c.Param("rfiId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "RFI not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": rfi})
}

// CreateRfi creates an RFI with the next per-project number
func CreateRfi(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.CreateRfiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	rfi, err := rfiService.CreateRfi(orgID, c.Param("projectId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create RFI: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": rfi})
}

// UpdateRfi updates an RFI
func UpdateRfi(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.UpdateRfiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	rfi, err := rfiService.UpdateRfi(orgID, c.Param("projectId"), c.Param("rfiId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update RFI: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": rfi})
}

// DeleteRfi soft-deletes an RFI
func DeleteRfi(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := rfiService.DeleteRfi(orgID, c.Param("projectId"), c.Param("rfiId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete RFI: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "RFI deleted successfully"})
}
