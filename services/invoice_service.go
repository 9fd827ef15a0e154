package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
	"github.com/sitebeam/utils"
)

// InvoiceService handles business logic for invoices. Totals are derived from
// line items on every write, never trusted from the client.
type InvoiceService struct {
	repo       *repositories.InvoiceRepository
	numberSvc  *InvoiceNumberService
	projectSvc *repositories.ProjectRepository
}

// NewInvoiceService creates a new invoice service instance
func NewInvoiceService() *InvoiceService {
	return &InvoiceService{
		repo:       repositories.NewInvoiceRepository(),
		numberSvc:  NewInvoiceNumberService(),
		projectSvc: repositories.NewProjectRepository(),
	}
}

// ComputeTotals derives line amounts and invoice totals from line inputs.
// Each amount is quantity * unit price rounded to cents; tax is subtotal *
// rate rounded to cents; total = subtotal + tax.
func ComputeTotals(lines []dto.InvoiceLineInput, taxRate decimal.Decimal) ([]models.InvoiceLine, decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	out := make([]models.InvoiceLine, 0, len(lines))
	subtotal := decimal.Zero
	for i, line := range lines {
		amount := line.Quantity.Mul(line.UnitPrice).Round(2)
		subtotal = subtotal.Add(amount)
		out = append(out, models.InvoiceLine{
			Position:    i + 1,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Amount:      amount,
		})
	}
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax)
	return out, subtotal, tax, total
}

// ListInvoices retrieves project invoices with pagination and filters
func (s *InvoiceService) ListInvoices(filter dto.ListFilter) (dto.InvoiceListResponse, error) {
	var response dto.InvoiceListResponse

	filter.Normalize()

	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"issue_date": true,
		"due_date":   true,
		"number":     true,
		"status":     true,
		"total":      true,
	}
	filter.SortBy, filter.SortOrder = utils.NormalizeSort(filter.SortBy, filter.SortOrder, validSortColumns)

	invoices, totalCount, err := s.repo.FindWithPagination(
		filter.OrgID, filter.ProjectID,
		filter.Page, filter.PageSize,
		filter.SortBy, filter.SortOrder,
		filter.Status, filter.Search,
	)
	if err != nil {
		return response, err
	}

	response = dto.InvoiceListResponse{
		Invoices: invoices,
		ListMeta: dto.ListMeta{
			TotalCount: totalCount,
			Page:       filter.Page,
			PageSize:   filter.PageSize,
			TotalPages: utils.TotalPages(totalCount, filter.PageSize),
		},
	}
	return response, nil
}

// GetInvoice retrieves an invoice with its lines
func (s *InvoiceService) GetInvoice(orgID, id string) (models.Invoice, error) {
	return s.repo.FindByID(orgID, id)
}

// CreateInvoice creates a draft invoice. A pre-reserved number is consumed;
// with no number supplied, one is reserved and consumed inline.
func (s *InvoiceService) CreateInvoice(orgID, projectID string, req dto.CreateInvoiceRequest) (models.Invoice, error) {
	number := req.Number
	if number == "" {
		reserved, err := s.numberSvc.ReserveNumber(orgID)
		if err != nil {
			return models.Invoice{}, err
		}
		number = reserved.Number
	}
	if err := s.numberSvc.ConsumeNumber(orgID, number); err != nil {
		return models.Invoice{}, err
	}

	lines, subtotal, tax, total := ComputeTotals(req.Lines, req.TaxRate)

	invoice := models.Invoice{
		OrgID:      orgID,
		ProjectID:  projectID,
		Number:     number,
		Status:     models.InvoiceStatusDraft,
		IssueDate:  req.IssueDate,
		DueDate:    req.DueDate,
		TaxRate:    req.TaxRate,
		Subtotal:   subtotal,
		Tax:        tax,
		Total:      total,
		AmountPaid: decimal.Zero,
		BalanceDue: total,
		Notes:      req.Notes,
		Lines:      lines,
	}
	return s.repo.Create(invoice)
}

// UpdateInvoice updates an invoice and recomputes totals. Replacing lines is
// only allowed while the invoice is still a draft.
func (s *InvoiceService) UpdateInvoice(orgID, id string, req dto.UpdateInvoiceRequest) (models.Invoice, error) {
	invoice, err := s.repo.FindByID(orgID, id)
	if err != nil {
		return models.Invoice{}, err
	}

	replaceLines := len(req.Lines) > 0
	if replaceLines && invoice.Status != models.InvoiceStatusDraft {
		return models.Invoice{}, fmt.Errorf("line items can only be changed on draft invoices")
	}

	invoice.IssueDate = req.IssueDate
	invoice.DueDate = req.DueDate
	invoice.TaxRate = req.TaxRate
	invoice.Notes = req.Notes
	if req.Status != "" {
		invoice.Status = req.Status
	}
	if req.AmountPaid != nil {
		invoice.AmountPaid = *req.AmountPaid
	}

	if replaceLines {
		lines, subtotal, tax, total := ComputeTotals(req.Lines, invoice.TaxRate)
		for i := range lines {
			lines[i].InvoiceID = invoice.ID
		}
		invoice.Lines = lines
		invoice.Subtotal = subtotal
		invoice.Tax = tax
		invoice.Total = total
	} else {
		// Tax rate may have changed; recompute from the stored subtotal.
		invoice.Tax = invoice.Subtotal.Mul(invoice.TaxRate).Round(2)
		invoice.Total = invoice.Subtotal.Add(invoice.Tax)
		invoice.Lines = nil
	}
	invoice.BalanceDue = invoice.Total.Sub(invoice.AmountPaid)

	if err := s.repo.Update(invoice, replaceLines); err != nil {
		return models.Invoice{}, err
	}
	return s.repo.FindByID(orgID, id)
}

// DeleteInvoice soft-deletes an invoice. Paid invoices must be voided, not deleted.
func (s *InvoiceService) DeleteInvoice(orgID, id string) error {
	invoice, err := s.repo.FindByID(orgID, id)
	if err != nil {
		return err
	}
	if invoice.Status == models.InvoiceStatusPaid {
		return fmt.Errorf("paid invoices cannot be deleted")
	}
	return s.repo.Delete(orgID, id)
}

// ListInvoicesForPortal returns non-draft invoices for the client portal view
func (s *InvoiceService) ListInvoicesForPortal(orgID, projectID string) ([]models.Invoice, error) {
	invoices, _, err := s.repo.FindWithPagination(
		orgID, projectID,
		1, 100,
		"issue_date", "desc",
		"", "",
	)
	if err != nil {
		return nil, err
	}
	visible := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Status != models.InvoiceStatusDraft {
			visible = append(visible, inv)
		}
	}
	return visible, nil
}
