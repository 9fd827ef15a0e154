package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sitebeam/models"
)

// CreateWarrantyRequest represents the payload for filing a warranty request
type CreateWarrantyRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	ReporterID  *string        `json:"reporterId"`
	Attachments datatypes.JSON `json:"attachments"`
}

// UpdateWarrantyRequest represents the payload for working a warranty request
type UpdateWarrantyRequest struct {
	Title        string                `json:"title" binding:"required"`
	Description  string                `json:"description"`
	Status       models.WarrantyStatus `json:"status" binding:"omitempty,oneof=new scheduled resolved closed"`
	ScheduledFor *time.Time            `json:"scheduledFor"`
}

// PortalWarrantyRequest is the restricted portal submission payload
type PortalWarrantyRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	ReporterEmail string `json:"reporterEmail" binding:"required,email"`
}
