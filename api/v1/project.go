package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/services"
)

var projectService = services.NewProjectService()

// listFilterFromQuery builds the shared list filter from query parameters
func listFilterFromQuery(c *gin.Context) dto.ListFilter {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 {
		pageSize = 20
	}

	return dto.ListFilter{
		OrgID:     c.GetString("orgId"),
		ProjectID: c.Param("projectId"),
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		SortBy:    c.DefaultQuery("sortBy", "created_at"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Page:      page,
		PageSize:  pageSize,
	}
}

// ListProjects godoc
// @Summary List projects with pagination and filtering
// @Tags projects
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param search query string false "Search term for name/number/address"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.ProjectListResponse
// @Router /orgs/{orgId}/projects [get]
func ListProjects(c *gin.Context) {
	response, err := projectService.ListProjects(listFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve projects: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetProject returns one project
func GetProject(c *gin.Context) {
	orgID, _ := orgContext(c)

	project, err := projectService.GetProject(orgID, c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Project not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// CreateProject creates a project in the caller's organization
func CreateProject(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := projectService.CreateProject(orgID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create project: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   project,
	})
}

// UpdateProject updates a project
func UpdateProject(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := projectService.UpdateProject(orgID, c.Param("projectId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update project: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// DeleteProject soft-deletes a project and its dependents
func DeleteProject(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := projectService.DeleteProject(orgID, c.Param("projectId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete project: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}

// GetProjectStats godoc
// @Summary Get project statistics
// @Description Dashboard counters: RFIs, submittals, tasks, invoices, open pins
// @Tags projects
// @Produce json
// @Success 200 {object} dto.ProjectStatsResponse
// @Router /orgs/{orgId}/projects/{projectId}/stats [get]
func GetProjectStats(c *gin.Context) {
	orgID, _ := orgContext(c)

	stats, err := projectService.GetProjectStats(orgID, c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to get project statistics: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}
