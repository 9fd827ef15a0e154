package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/services"
)

var changeOrderService = services.NewChangeOrderService()

// ListChangeOrders lists project change orders
func ListChangeOrders(c *gin.Context) {
	orgID, _ := orgContext(c)

	orders, err := changeOrderService.ListChangeOrders(orgID, c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve change orders: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": orders})
}

// GetChangeOrder returns one change order
func GetChangeOrder(c *gin.Context) {
	orgID, _ := orgContext(c)

	order, err := changeOrderService.GetChangeOrder(orgID, c.Param("projectId"), c.Param("changeOrderId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Change order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": order})
}

// CreateChangeOrder creates a change order with the next per-project number
func CreateChangeOrder(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.CreateChangeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	order, err := changeOrderService.CreateChangeOrder(orgID, c.Param("projectId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create change order: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": order})
}

// UpdateChangeOrder updates a change order
func UpdateChangeOrder(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.UpdateChangeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	order, err := changeOrderService.UpdateChangeOrder(orgID, c.Param("projectId"), c.Param("changeOrderId"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to update change order: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": order})
}

// DeleteChangeOrder soft-deletes a change order
func DeleteChangeOrder(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := changeOrderService.DeleteChangeOrder(orgID, c.Param("projectId"), c.Param("changeOrderId")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to delete change order: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Change order deleted successfully"})
}
