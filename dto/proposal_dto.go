package dto

import (
	"gorm.io/datatypes"

	"github.com/sitebeam/utils"
)

// CreateProposalRequest represents the payload for creating a proposal
type CreateProposalRequest struct {
	Title   string         `json:"title" binding:"required"`
	Content datatypes.JSON `json:"content"`
	Parties []utils.Party  `json:"parties" binding:"omitempty,dive"`
}

// UpdateProposalRequest represents the payload for updating a draft proposal
type UpdateProposalRequest = CreateProposalRequest

// SendProposalResponse returns the public link after sending a proposal
type SendProposalResponse struct {
	PublicURL string `json:"publicUrl"`
}

// PublicProposalResponse is the client-facing view behind the public token
type PublicProposalResponse struct {
	Title   string         `json:"title"`
	Status  string         `json:"status"`
	Content datatypes.JSON `json:"content"`
	Parties []utils.Party  `json:"parties"`
}
