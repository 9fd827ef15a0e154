package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals(t *testing.T) {
	lines := []dto.InvoiceLineInput{
		{Description: "Framing labor", Quantity: dec("12.5"), UnitPrice: dec("85")},
		{Description: "Lumber package", Quantity: dec("1"), UnitPrice: dec("4350.33")},
		{Description: "Disposal", Quantity: dec("3"), UnitPrice: dec("0.333")},
	}

	out, subtotal, tax, total := ComputeTotals(lines, dec("0.0825"))

	require.Len(t, out, 3)
	assert.Equal(t, "1062.50", out[0].Amount.StringFixed(2))
	assert.Equal(t, "4350.33", out[1].Amount.StringFixed(2))
	assert.Equal(t, "1.00", out[2].Amount.StringFixed(2)) // 0.999 rounds up
	assert.Equal(t, 1, out[0].Position)
	assert.Equal(t, 3, out[2].Position)

	assert.Equal(t, "5413.83", subtotal.StringFixed(2))
	assert.Equal(t, "446.64", tax.StringFixed(2))
	assert.True(t, total.Equal(subtotal.Add(tax)), "total must equal subtotal plus tax")
}

func TestComputeTotalsZeroRate(t *testing.T) {
	out, subtotal, tax, total := ComputeTotals([]dto.InvoiceLineInput{
		{Description: "Retainage release", Quantity: dec("1"), UnitPrice: dec("1000")},
	}, decimal.Zero)

	require.Len(t, out, 1)
	assert.True(t, tax.IsZero())
	assert.True(t, total.Equal(subtotal))
}

func TestCreateInvoiceDerivesTotalsAndNumber(t *testing.T) {
	setupTestDB(t)
	svc := NewInvoiceService()
	orgID, projectID := newID(), newID()

	inv, err := svc.CreateInvoice(orgID, projectID, dto.CreateInvoiceRequest{
		TaxRate: dec("0.10"),
		Lines: []dto.InvoiceLineInput{
			{Description: "Mobilization", Quantity: dec("1"), UnitPrice: dec("2500")},
			{Description: "Site prep", Quantity: dec("4"), UnitPrice: dec("375.25")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-0001", inv.Number)
	assert.Equal(t, models.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, "4001.00", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "400.10", inv.Tax.StringFixed(2))
	assert.Equal(t, "4401.10", inv.Total.StringFixed(2))
	assert.True(t, inv.BalanceDue.Equal(inv.Total))
	require.Len(t, inv.Lines, 2)

	// the inline reservation was consumed
	numberSvc := NewInvoiceNumberService()
	err = numberSvc.ConsumeNumber(orgID, inv.Number)
	assert.Error(t, err)
}

func TestCreateInvoiceConsumesReservedNumber(t *testing.T) {
	setupTestDB(t)
	svc := NewInvoiceService()
	numberSvc := NewInvoiceNumberService()
	orgID, projectID := newID(), newID()

	reserved, err := numberSvc.ReserveNumber(orgID)
	require.NoError(t, err)

	inv, err := svc.CreateInvoice(orgID, projectID, dto.CreateInvoiceRequest{
		Number: reserved.Number,
		Lines: []dto.InvoiceLineInput{
			{Description: "Deposit", Quantity: dec("1"), UnitPrice: dec("500")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, reserved.Number, inv.Number)
}

func TestCreateInvoiceUnreservedNumberRejected(t *testing.T) {
	setupTestDB(t)
	svc := NewInvoiceService()

	_, err := svc.CreateInvoice(newID(), newID(), dto.CreateInvoiceRequest{
		Number: "INV-9999",
		Lines: []dto.InvoiceLineInput{
			{Description: "Deposit", Quantity: dec("1"), UnitPrice: dec("500")},
		},
	})
	assert.Error(t, err)
}

func TestUpdateInvoiceReplacesLinesAndRecomputes(t *testing.T) {
	setupTestDB(t)
	svc := NewInvoiceService()
	orgID, projectID := newID(), newID()

	inv, err := svc.CreateInvoice(orgID, projectID, dto.CreateInvoiceRequest{
		TaxRate: dec("0.05"),
		Lines: []dto.InvoiceLineInput{
			{Description: "Original", Quantity: dec("1"), UnitPrice: dec("100")},
		},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateInvoice(orgID, inv.ID, dto.UpdateInvoiceRequest{
		TaxRate: dec("0.05"),
		Lines: []dto.InvoiceLineInput{
			{Description: "Replaced", Quantity: dec("2"), UnitPrice: dec("300")},
			{Description: "Added", Quantity: dec("1"), UnitPrice: dec("50")},
		},
	})
	require.NoError(t, err)

	require.Len(t, updated.Lines, 2)
	assert.Equal(t, "Replaced", updated.Lines[0].Description)
	assert.Equal(t, "650.00", updated.Subtotal.StringFixed(2))
	assert.Equal(t, "32.50", updated.Tax.StringFixed(2))
	assert.Equal(t, "682.50", updated.Total.StringFixed(2))
	assert.True(t, updated.BalanceDue.Equal(updated.Total))
}

func TestUpdateInvoiceLinesLockedAfterSend(t *testing.T) {
	setupTestDB(t)
	svc := NewInvoiceService()
	orgID, projectID := newID(), newID()

	inv, err := svc.CreateInvoice(orgID, projectID, dto.CreateInvoiceRequest{
		Lines: []dto.InvoiceLineInput{
			{Description: "Work", Quantity: dec("1"), UnitPrice: dec("100")},
		},
	})
	require.NoError(t, err)

	_, err = svc.UpdateInvoice(orgID, inv.ID, dto.UpdateInvoiceRequest{Status: models.InvoiceStatusSent})
	require.NoError(t, err)

	_, err = svc.UpdateInvoice(orgID, inv.ID, dto.UpdateInvoiceRequest{
		Lines: []dto.InvoiceLineInput{
			{Description: "Sneaky change", Quantity: dec("1"), UnitPrice: dec("1")},
		},
	})
	assert.Error(t, err)
}

func TestUpdateInvoicePaymentReducesBalance(t *testing.T) {
	setupTestDB(t)
	svc := NewInvoiceService()
	orgID, projectID := newID(), newID()

	inv, err := svc.CreateInvoice(orgID, projectID, dto.CreateInvoiceRequest{
		Lines: []dto.InvoiceLineInput{
			{Description: "Work", Quantity: dec("1"), UnitPrice: dec("1000")},
		},
	})
	require.NoError(t, err)

	paid := dec("400")
	updated, err := svc.UpdateInvoice(orgID, inv.ID, dto.UpdateInvoiceRequest{
		Status:     models.InvoiceStatusSent,
		AmountPaid: &paid,
	})
	require.NoError(t, err)
	assert.Equal(t, "600.00", updated.BalanceDue.StringFixed(2))
}

func TestDeleteInvoiceBlocksPaid(t *testing.T) {
	setupTestDB(t)
	svc := NewInvoiceService()
	orgID, projectID := newID(), newID()

	inv, err := svc.CreateInvoice(orgID, projectID, dto.CreateInvoiceRequest{
		Lines: []dto.InvoiceLineInput{
			{Description: "Work", Quantity: dec("1"), UnitPrice: dec("100")},
		},
	})
	require.NoError(t, err)

	_, err = svc.UpdateInvoice(orgID, inv.ID, dto.UpdateInvoiceRequest{Status: models.InvoiceStatusPaid})
	require.NoError(t, err)

	assert.Error(t, svc.DeleteInvoice(orgID, inv.ID))

	// drafts delete fine
	draft, err := svc.CreateInvoice(orgID, projectID, dto.CreateInvoiceRequest{
		Lines: []dto.InvoiceLineInput{
			{Description: "Other", Quantity: dec("1"), UnitPrice: dec("100")},
		},
	})
	require.NoError(t, err)
	assert.NoError(t, svc.DeleteInvoice(orgID, draft.ID))
}

func TestListInvoicesForPortalHidesDrafts(t *testing.T) {
	setupTestDB(t)
	svc := NewInvoiceService()
	orgID, projectID := newID(), newID()

	draft, err := svc.CreateInvoice(orgID, projectID, dto.CreateInvoiceRequest{
		Lines: []dto.InvoiceLineInput{
			{Description: "Draft", Quantity: dec("1"), UnitPrice: dec("100")},
		},
	})
	require.NoError(t, err)

	sent, err := svc.CreateInvoice(orgID, projectID, dto.CreateInvoiceRequest{
		Lines: []dto.InvoiceLineInput{
			{Description: "Sent", Quantity: dec("1"), UnitPrice: dec("100")},
		},
	})
	require.NoError(t, err)
	_, err = svc.UpdateInvoice(orgID, sent.ID, dto.UpdateInvoiceRequest{Status: models.InvoiceStatusSent})
	require.NoError(t, err)

	visible, err := svc.ListInvoicesForPortal(orgID, projectID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, sent.ID, visible[0].ID)
	assert.NotEqual(t, draft.ID, visible[0].ID)
}
