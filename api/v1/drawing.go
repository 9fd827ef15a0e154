package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/services"
)

var drawingService = services.NewDrawingService()

// ListDrawingSets lists a project's drawing sets
func ListDrawingSets(c *gin.Context) {
	orgID, _ := orgContext(c)

	sets, err := drawingService.ListSets(orgID, c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve drawing sets: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": sets})
}

// GetDrawingSet returns one drawing set with its sheets
func GetDrawingSet(c *gin.Context) {
	orgID, _ := orgContext(c)

	set, err := drawingService.GetSet(orgID, c.Param("setId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Drawing set not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": set})
}

// CreateDrawingSet creates a drawing set
func CreateDrawingSet(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.CreateDrawingSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	set, err := drawingService.CreateSet(orgID, c.Param("projectId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create drawing set: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": set})
}

// UpdateDrawingSet updates a drawing set
func UpdateDrawingSet(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.UpdateDrawingSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	set, err := drawingService.UpdateSet(orgID, c.Param("setId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update drawing set: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": set})
}

// DeleteDrawingSet soft-deletes a drawing set
func DeleteDrawingSet(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := drawingService.DeleteSet(orgID, c.Param("setId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete drawing set: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Drawing set deleted successfully"})
}

// GetPinSummary aggregates pin counts per sheet for one set
func GetPinSummary(c *gin.Context) {
	orgID, _ := orgContext(c)

	rows, err := drawingService.PinSummary(orgID, c.Param("setId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to get pin summary: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": rows})
}

// GetSheet returns one sheet with versions and pins
func GetSheet(c *gin.Context) {
	orgID, _ := orgContext(c)

	sheet, err := drawingService.GetSheet(orgID, c.Param("setId"), c.Param("sheetId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Sheet not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": sheet})
}

// CreateSheet adds a sheet to a set
func CreateSheet(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.CreateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	sheet, err := drawingService.CreateSheet(orgID, c.Param("setId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create sheet: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": sheet})
}

// UpdateSheet updates a sheet
func UpdateSheet(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.UpdateSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	sheet, err := drawingService.UpdateSheet(orgID, c.Param("setId"), c.Param("sheetId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update sheet: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": sheet})
}

// DeleteSheet soft-deletes a sheet
func DeleteSheet(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := drawingService.DeleteSheet(orgID, c.Param("setId"), c.Param("sheetId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete sheet: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Sheet deleted successfully"})
}

// CreateSheetVersion registers a new sheet revision and returns an upload URL
func CreateSheetVersion(c *gin.Context) {
	orgID, _ := orgContext(c)
	userID := c.GetString("userId")

	var req dto.CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	response, err := drawingService.CreateVersion(orgID, c.Param("setId"), c.Param("sheetId"), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to create sheet version: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": response})
}

// DownloadSheetVersion returns a presigned GET URL for a version file
func DownloadSheetVersion(c *gin.Context) {
	orgID, _ := orgContext(c)

	url, err := drawingService.VersionDownloadURL(orgID, c.Param("projectId"), c.Param("versionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to get download URL: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{"downloadUrl": url}})
}

// ListMarkups lists markups on a sheet version
func ListMarkups(c *gin.Context) {
	orgID, _ := orgContext(c)

	markups, err := drawingService.ListMarkups(orgID, c.Param("projectId"), c.Param("versionId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to retrieve markups: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": markups})
}

// CreateMarkup adds a markup to a sheet version
func CreateMarkup(c *gin.Context) {
	orgID, _ := orgContext(c)
	userID := c.GetString("userId")

	var req dto.CreateMarkupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	markup, err := drawingService.CreateMarkup(orgID, c.Param("projectId"), c.Param("versionId"), userID, req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to create markup: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": markup})
}

// DeleteMarkup removes a markup authored by the caller
func DeleteMarkup(c *gin.Context) {
	orgID, _ := orgContext(c)
	userID := c.GetString("userId")

	if err := drawingService.DeleteMarkup(orgID, c.Param("projectId"), c.Param("markupId"), userID); err != nil {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Failed to delete markup: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Markup deleted successfully"})
}

// ListPins lists pins on a sheet
func ListPins(c *gin.Context) {
	orgID, _ := orgContext(c)

	pins, err := drawingService.ListPins(orgID, c.Param("projectId"), c.Param("sheetId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to retrieve pins: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": pins})
}

// CreatePin drops a pin on a sheet
func CreatePin(c *gin.Context) {
	orgID, _ := orgContext(c)
	userID := c.GetString("userId")

	var req dto.CreatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	pin, err := drawingService.CreatePin(orgID, c.Param("projectId"), c.Param("sheetId"), userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to create pin: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": pin})
}

// UpdatePin moves or resolves a pin
func UpdatePin(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.UpdatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	pin, err := drawingService.UpdatePin(orgID, c.Param("projectId"), c.Param("pinId"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to update pin: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": pin})
}

// DeletePin removes a pin
func DeletePin(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := drawingService.DeletePin(orgID, c.Param("projectId"), c.Param("pinId")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to delete pin: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Pin deleted successfully"})
}
