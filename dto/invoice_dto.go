package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitebeam/models"
)

// InvoiceLineInput represents one line item on an invoice payload
type InvoiceLineInput struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateInvoiceRequest represents the payload for creating an invoice.
// Number carries a previously reserved number; when empty the service
// reserves and consumes one inline.
type CreateInvoiceRequest struct {
	Number    string             `json:"number"`
	IssueDate *time.Time         `json:"issueDate"`
	DueDate   *time.Time         `json:"dueDate"`
	TaxRate   decimal.Decimal    `json:"taxRate"`
	Notes     string             `json:"notes"`
	Lines     []InvoiceLineInput `json:"lines" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest represents the payload for updating a draft invoice
type UpdateInvoiceRequest struct {
	IssueDate  *time.Time           `json:"issueDate"`
	DueDate    *time.Time           `json:"dueDate"`
	TaxRate    decimal.Decimal      `json:"taxRate"`
	Status     models.InvoiceStatus `json:"status" binding:"omitempty,oneof=draft sent paid void"`
	AmountPaid *decimal.Decimal     `json:"amountPaid"`
	Notes      string               `json:"notes"`
	Lines      []InvoiceLineInput   `json:"lines" binding:"omitempty,min=1,dive"`
}

// InvoiceListResponse represents paginated invoice list response
type InvoiceListResponse struct {
	Invoices []models.Invoice `json:"invoices"`
	ListMeta
}

// ReserveNumberResponse returns a freshly reserved draft invoice number
type ReserveNumberResponse struct {
	Number    string    `json:"number"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ReleaseNumberRequest releases a reserved number when the form is abandoned
type ReleaseNumberRequest struct {
	Number string `json:"number" binding:"required"`
}
