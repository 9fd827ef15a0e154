package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/services"
)

var taskService = services.NewTaskService()

// ListTasks lists project tasks with pagination
func ListTasks(c *gin.Context) {
	tasks, meta, err := taskService.ListTasks(listFilterFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve tasks: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   gin.H{"tasks": tasks, "meta": meta},
	})
}

// GetTask returns one task
func GetTask(c *gin.Context) {
	orgID, _ := orgContext(c)

	task, err := taskService.GetTask(orgID, c.Param("projectId"), c.Param("taskId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": task})
}

// CreateTask creates a task on a project
func CreateTask(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	task, err := taskService.CreateTask(orgID, c.Param("projectId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create task: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": task})
}

// UpdateTask updates a task
func UpdateTask(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	task, err := taskService.UpdateTask(orgID, c.Param("projectId"), c.Param("taskId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update task: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": task})
}

// DeleteTask soft-deletes a task
func DeleteTask(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := taskService.DeleteTask(orgID, c.Param("projectId"), c.Param("taskId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete task: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Task deleted successfully"})
}
