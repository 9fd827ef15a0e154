package dto

import "github.com/sitebeam/models"

// SigningPartyInput declares one recipient when routing a document
type SigningPartyInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Sequence int    `json:"sequence" binding:"required,min=1"`
	Required *bool  `json:"required"` // defaults to true
}

// CreateDocumentRequest represents the payload for creating a document
type CreateDocumentRequest struct {
	Title     string  `json:"title" binding:"required"`
	ProjectID *string `json:"projectId"`
	FileName  string  `json:"fileName"`
}

// DocumentUploadResponse returns the document plus a presigned PUT URL when a
// file name was supplied
type DocumentUploadResponse struct {
	Document  models.Document `json:"document"`
	UploadURL string          `json:"uploadUrl,omitempty"`
}

// SendDocumentRequest starts the sequential signing flow
type SendDocumentRequest struct {
	Parties []SigningPartyInput `json:"parties" binding:"required,min=1,dive"`
}

// SignViewResponse is the public signer-facing view of a signing request
type SignViewResponse struct {
	DocumentTitle  string `json:"documentTitle"`
	RecipientName  string `json:"recipientName"`
	RecipientEmail string `json:"recipientEmail"`
	Status         string `json:"status"`
	DownloadURL    string `json:"downloadUrl,omitempty"`
}

// SubmitSignatureRequest completes a signing request from the public page
type SubmitSignatureRequest struct {
	Email string `json:"email" binding:"required,email"`
}
