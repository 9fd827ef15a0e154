package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderNumbersPerProject(t *testing.T) {
	setupTestDB(t)
	svc := NewChangeOrderService()
	orgID, projectID := newID(), newID()

	first, err := svc.CreateChangeOrder(orgID, projectID, dto.CreateChangeOrderRequest{
		Title:  "Upgrade to impact windows",
		Amount: decimal.RequireFromString("12400.00"),
	})
	require.NoError(t, err)
	second, err := svc.CreateChangeOrder(orgID, projectID, dto.CreateChangeOrderRequest{
		Title:  "Delete pergola",
		Amount: decimal.RequireFromString("-3100.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, first.Number)
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, models.ChangeOrderStatusDraft, first.Status)
}

func TestApprovedChangeOrderIsFrozen(t *testing.T) {
	setupTestDB(t)
	svc := NewChangeOrderService()
	orgID, projectID := newID(), newID()

	order, err := svc.CreateChangeOrder(orgID, projectID, dto.CreateChangeOrderRequest{
		Title:  "Upgrade to impact windows",
		Amount: decimal.RequireFromString("12400.00"),
	})
	require.NoError(t, err)

	approved, err := svc.UpdateChangeOrder(orgID, projectID, order.ID, dto.UpdateChangeOrderRequest{
		Title:  order.Title,
		Amount: order.Amount,
		Status: models.ChangeOrderStatusApproved,
	})
	require.NoError(t, err)
	assert.NotNil(t, approved.ApprovedAt)

	// no edits, no amount changes, no un-approving
	_, err = svc.UpdateChangeOrder(orgID, projectID, order.ID, dto.UpdateChangeOrderRequest{
		Title:  "Cheaper windows after all",
		Amount: decimal.RequireFromString("9000.00"),
		Status: models.ChangeOrderStatusApproved,
	})
	assert.Error(t, err)

	_, err = svc.UpdateChangeOrder(orgID, projectID, order.ID, dto.UpdateChangeOrderRequest{
		Title:  order.Title,
		Amount: order.Amount,
		Status: models.ChangeOrderStatusDraft,
	})
	assert.Error(t, err)

	assert.Error(t, svc.DeleteChangeOrder(orgID, projectID, order.ID))
}
