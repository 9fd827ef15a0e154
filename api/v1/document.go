package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/services"
)

var (
	documentService = services.NewDocumentService()
	signingService  = services.NewSigningService()
)

// ListDocuments lists org documents, optionally filtered by projectId
func ListDocuments(c *gin.Context) {
	orgID, _ := orgContext(c)

	docs, err := documentService.ListDocuments(orgID, c.Query("projectId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve documents: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": docs})
}

// GetDocument returns one document with its signing requests
func GetDocument(c *gin.Context) {
	orgID, _ := orgContext(c)

	doc, err := documentService.GetDocument(orgID, c.Param("documentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Document not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": doc})
}

// CreateDocument creates a draft document, optionally returning an upload URL
func CreateDocument(c *gin.Context) {
	orgID, _ := orgContext(c)
	userID := c.GetString("userId")

	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	response, err := documentService.CreateDocument(orgID, userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create document: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": response})
}

// UpdateDocument renames a draft document
func UpdateDocument(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	doc, err := documentService.UpdateDocument(orgID, c.Param("documentId"), req.Title)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to update document: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": doc})
}

// ReplaceDocumentFile bumps the revision and returns a fresh upload URL
func ReplaceDocumentFile(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req struct {
		FileName string `json:"fileName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	response, err := documentService.ReplaceFile(orgID, c.Param("documentId"), req.FileName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to replace document file: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response})
}

// DownloadDocument returns a presigned GET URL for the document file
func DownloadDocument(c *gin.Context) {
	orgID, _ := orgContext(c)

	url, err := documentService.DownloadURL(orgID, c.Param("documentId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to get download URL: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"downloadUrl": url}})
}

// DeleteDocument soft-deletes a document
func DeleteDocument(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := documentService.DeleteDocument(orgID, c.Param("documentId")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to delete document: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Document deleted successfully"})
}

// SendDocument routes a draft document for sequential signature
func SendDocument(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.SendDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	doc, err := signingService.Send(orgID, c.Param("documentId"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to send document: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": doc})
}

// VoidDocument cancels an out-for-signature document
func VoidDocument(c *gin.Context) {
	orgID, _ := orgContext(c)

	doc, err := signingService.Void(orgID, c.Param("documentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to void document: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": doc})
}
