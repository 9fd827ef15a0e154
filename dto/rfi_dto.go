package dto

import (
	"time"

	"github.com/sitebeam/models"
)

// CreateRfiRequest represents the payload for creating an RFI.
// The per-project number is assigned by the service, not the client.
type CreateRfiRequest struct {
	Subject    string     `json:"subject" binding:"required"`
	Question   string     `json:"question" binding:"required"`
	AssigneeID *string    `json:"assigneeId"`
	DueDate    *time.Time `json:"dueDate"`
}

// UpdateRfiRequest represents the payload for updating an RFI
type UpdateRfiRequest struct {
	Subject    string           `json:"subject" binding:"required"`
	Question   string           `json:"question"`
	Answer     string           `json:"answer"`
	Status     models.RfiStatus `json:"status" binding:"omitempty,oneof=draft open answered closed"`
	AssigneeID *string          `json:"assigneeId"`
	DueDate    *time.Time       `json:"dueDate"`
}

// RfiListResponse represents paginated RFI list response
type RfiListResponse struct {
	Rfis []models.Rfi `json:"rfis"`
	ListMeta
}
