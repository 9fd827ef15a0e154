package dto

import (
	"github.com/shopspring/decimal"
	"github.com/sitebeam/models"
)

// CreateChangeOrderRequest represents the payload for creating a change order
type CreateChangeOrderRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateChangeOrderRequest represents the payload for updating a change order
type UpdateChangeOrderRequest struct {
	Title       string                   `json:"title" binding:"required"`
	Description string                   `json:"description"`
	Amount      decimal.Decimal          `json:"amount" binding:"required"`
	Status      models.ChangeOrderStatus `json:"status" binding:"omitempty,oneof=draft pending approved rejected"`
}
