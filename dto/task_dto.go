package dto

import (
	"time"

	"github.com/sitebeam/models"
)

// CreateTaskRequest represents the payload for creating a task
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	AssigneeID  *string    `json:"assigneeId"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTaskRequest represents the payload for updating a task
type UpdateTaskRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status" binding:"omitempty,oneof=todo in_progress done"`
	AssigneeID  *string           `json:"assigneeId"`
	DueDate     *time.Time        `json:"dueDate"`
}
