package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/services"
)

var (
	invoiceService       = services.NewInvoiceService()
	invoiceNumberService = services.NewInvoiceNumberService()
)

// ListInvoices lists project invoices with pagination
func ListInvoices(c *gin.Context) {
	response, err := invoiceService.ListInvoices(listFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve invoices: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// GetInvoice returns one invoice with its lines
func GetInvoice(c *gin.Context) {
	orgID, _ := orgContext(c)

	invoice, err := invoiceService.GetInvoice(orgID, c.Param("invoiceId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Invoice not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": invoice})
}

// CreateInvoice godoc
// @Summary Create a draft invoice
// @Description Totals are computed from the line items server side. A number
// @Description reserved beforehand is consumed; without one a number is taken inline.
// @Tags invoices
// @Accept json
// @Produce json
// @Success 201 {object} models.Invoice
// @Router /orgs/{orgId}/projects/{projectId}/invoices [post]
func CreateInvoice(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	invoice, err := invoiceService.CreateInvoice(orgID, c.Param("projectId"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to create invoice: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": invoice})
}

// UpdateInvoice updates an invoice and recomputes totals
func UpdateInvoice(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	invoice, err := invoiceService.UpdateInvoice(orgID, c.Param("invoiceId"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to update invoice: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": invoice})
}

// DeleteInvoice soft-deletes an invoice
func DeleteInvoice(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := invoiceService.DeleteInvoice(orgID, c.Param("invoiceId")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to delete invoice: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Invoice deleted successfully"})
}

// ReserveInvoiceNumber reserves the next draft invoice number for the org
func ReserveInvoiceNumber(c *gin.Context) {
	orgID, _ := orgContext(c)

	response, err := invoiceNumberService.ReserveNumber(orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reserve invoice number: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": response})
}

// ReleaseInvoiceNumber releases a reserved invoice number. Idempotent.
func ReleaseInvoiceNumber(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.ReleaseNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	if err := invoiceNumberService.ReleaseNumber(orgID, req.Number); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to release invoice number: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Invoice number released"})
}
