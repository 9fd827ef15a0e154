package services

import (
	"fmt"
	"time"

	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
)

// ChangeOrderService handles business logic for change orders
type ChangeOrderService struct {
	repo *repositories.WorkItemRepository
}

// NewChangeOrderService creates a new change order service instance
func NewChangeOrderService() *ChangeOrderService {
	return &ChangeOrderService{repo: repositories.NewWorkItemRepository()}
}

// ListChangeOrders retrieves all change orders for a project
func (s *ChangeOrderService) ListChangeOrders(orgID, projectID string) ([]models.ChangeOrder, error) {
	var orders []models.ChangeOrder
	_, err := s.repo.FindWithPagination(
		&orders, &models.ChangeOrder{},
		orgID, projectID,
		1, 500,
		"number", "asc",
		"", "", "",
	)
	return orders, err
}

// GetChangeOrder retrieves a change order
func (s *ChangeOrderService) GetChangeOrder(orgID, projectID, id string) (models.ChangeOrder, error) {
	var order models.ChangeOrder
	err := s.repo.FindByID(&order, orgID, projectID, id)
	return order, err
}

// CreateChangeOrder creates a change order, drawing the next per-project number
func (s *ChangeOrderService) CreateChangeOrder(orgID, projectID string, req dto.CreateChangeOrderRequest) (models.ChangeOrder, error) {
	number, err := s.repo.NextNumber(&models.ChangeOrder{}, projectID)
	if err != nil {
		return models.ChangeOrder{}, err
	}

	order := models.ChangeOrder{
		OrgID:       orgID,
		ProjectID:   projectID,
		Number:      number,
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      models.ChangeOrderStatusDraft,
	}
	err = s.repo.Create(&order)
	return order, err
}

// UpdateChangeOrder updates a change order. Approved orders are frozen.
func (s *ChangeOrderService) UpdateChangeOrder(orgID, projectID, id string, req dto.UpdateChangeOrderRequest) (models.ChangeOrder, error) {
	var order models.ChangeOrder
	if err := s.repo.FindByID(&order, orgID, projectID, id); err != nil {
		return models.ChangeOrder{}, err
	}

	if order.Status == models.ChangeOrderStatusApproved {
		return models.ChangeOrder{}, fmt.Errorf("approved change orders cannot be modified")
	}

	order.Title = req.Title
	order.Description = req.Description
	order.Amount = req.Amount
	if req.Status != "" && req.Status != order.Status {
		order.Status = req.Status
		if req.Status == models.ChangeOrderStatusApproved {
			now := time.Now()
			order.ApprovedAt = &now
		}
	}

	err := s.repo.Update(&order)
	return order, err
}

// DeleteChangeOrder soft-deletes a change order
func (s *ChangeOrderService) DeleteChangeOrder(orgID, projectID, id string) error {
	var order models.ChangeOrder
	if err := s.repo.FindByID(&order, orgID, projectID, id); err != nil {
		return err
	}
	if order.Status == models.ChangeOrderStatusApproved {
		return fmt.Errorf("approved change orders cannot be deleted")
	}
	return s.repo.Delete(&models.ChangeOrder{}, orgID, projectID, id)
}
