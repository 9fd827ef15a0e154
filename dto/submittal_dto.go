package dto

import (
	"time"

	"github.com/sitebeam/models"
)

// CreateSubmittalRequest represents the payload for creating a submittal
type CreateSubmittalRequest struct {
	Title       string     `json:"title" binding:"required"`
	SpecSection string     `json:"specSection"`
	Description string     `json:"description"`
	AssigneeID  *string    `json:"assigneeId"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateSubmittalRequest represents the payload for updating a submittal
type UpdateSubmittalRequest struct {
	Title       string                 `json:"title" binding:"required"`
	SpecSection string                 `json:"specSection"`
	Description string                 `json:"description"`
	Status      models.SubmittalStatus `json:"status" binding:"omitempty,oneof=draft open approved approved_as_noted revise_resubmit closed"`
	AssigneeID  *string                `json:"assigneeId"`
	DueDate     *time.Time             `json:"dueDate"`
}

// SubmittalListResponse represents paginated submittal list response
type SubmittalListResponse struct {
	Submittals []models.Submittal `json:"submittals"`
	ListMeta
}
