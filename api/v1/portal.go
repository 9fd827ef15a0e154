package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
)

// portalTokenFromContext pulls the validated token record stored by
// PortalMiddleware
func portalTokenFromContext(c *gin.Context) (models.PortalAccessToken, bool) {
	value, exists := c.Get("portalToken")
	if !exists {
		return models.PortalAccessToken{}, false
	}
	record, ok := value.(models.PortalAccessToken)
	return record, ok
}

// PortalProject returns the restricted project summary for the token
func PortalProject(c *gin.Context) {
	token, ok := portalTokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Portal token required"})
		return
	}

	summary, err := portalService.ProjectSummary(token)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": summary})
}

// PortalRfis lists open RFIs for the token's project
func PortalRfis(c *gin.Context) {
	token, ok := portalTokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Portal token required"})
		return
	}

	rfis, err := rfiService.ListOpenRfisForPortal(token.OrgID, token.ProjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve RFIs: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": rfis})
}

// PortalSheets lists drawing sheets for the token's project
func PortalSheets(c *gin.Context) {
	token, ok := portalTokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Portal token required"})
		return
	}

	sheets, err := drawingService.ListSheetsForPortal(token.ProjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve sheets: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": sheets})
}

// PortalInvoices lists non-draft invoices for client-audience tokens
func PortalInvoices(c *gin.Context) {
	token, ok := portalTokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Portal token required"})
		return
	}

	if token.Audience != models.PortalAudienceClient {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Invoices are only visible on the client portal",
		})
		return
	}

	invoices, err := invoiceService.ListInvoicesForPortal(token.OrgID, token.ProjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve invoices: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": invoices})
}

// PortalCreateWarrantyRequest files a warranty request from the portal
func PortalCreateWarrantyRequest(c *gin.Context) {
	token, ok := portalTokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Portal token required"})
		return
	}

	var req dto.PortalWarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	request, err := warrantyService.CreateFromPortal(token.OrgID, token.ProjectID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create warranty request: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": request})
}
