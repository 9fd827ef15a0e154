package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/services"
)

var warrantyService = services.NewWarrantyService()

// ListWarrantyRequests lists project warranty requests
func ListWarrantyRequests(c *gin.Context) {
	orgID, _ := orgContext(c)

	requests, err := warrantyService.ListWarrantyRequests(orgID, c.Param("projectId"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve warranty requests: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": requests})
}

// GetWarrantyRequest returns one warranty request
func GetWarrantyRequest(c *gin.Context) {
	orgID, _ := orgContext(c)

	request, err := warrantyService.GetWarrantyRequest(orgID, c.Param("projectId"), c.Param("warrantyId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Warranty request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": request})
}

// CreateWarrantyRequest files a warranty request
func CreateWarrantyRequest(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.CreateWarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	request, err := warrantyService.CreateWarrantyRequest(orgID, c.Param("projectId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create warranty request: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": request})
}

// UpdateWarrantyRequest works a warranty request through its lifecycle
func UpdateWarrantyRequest(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.UpdateWarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	request, err := warrantyService.UpdateWarrantyRequest(orgID, c.Param("projectId"), c.Param("warrantyId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update warranty request: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": request})
}

// DeleteWarrantyRequest soft-deletes a warranty request
func DeleteWarrantyRequest(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := warrantyService.DeleteWarrantyRequest(orgID, c.Param("projectId"), c.Param("warrantyId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete warranty request: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Warranty request deleted successfully"})
}
