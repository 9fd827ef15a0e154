package services

import (
	"time"

	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
)

// WarrantyService handles business logic for warranty requests
type WarrantyService struct {
	repo   *repositories.WorkItemRepository
	outbox *OutboxService
}

// NewWarrantyService creates a new warranty service instance
func NewWarrantyService() *WarrantyService {
	return &WarrantyService{
		repo:   repositories.NewWorkItemRepository(),
		outbox: NewOutboxService(),
	}
}

// ListWarrantyRequests retrieves all warranty requests for a project
func (s *WarrantyService) ListWarrantyRequests(orgID, projectID, status string) ([]models.WarrantyRequest, error) {
	var requests []models.WarrantyRequest
	_, err := s.repo.FindWithPagination(
		&requests, &models.WarrantyRequest{},
		orgID, projectID,
		1, 500,
		"created_at", "desc",
		status, "", "",
	)
	return requests, err
}

// GetWarrantyRequest retrieves a warranty request
func (s *WarrantyService) GetWarrantyRequest(orgID, projectID, id string) (models.WarrantyRequest, error) {
	var request models.WarrantyRequest
	err := s.repo.FindByID(&request, orgID, projectID, id)
	return request, err
}

// CreateWarrantyRequest files a warranty request from an authenticated user
func (s *WarrantyService) CreateWarrantyRequest(orgID, projectID string, req dto.CreateWarrantyRequest) (models.WarrantyRequest, error) {
	request := models.WarrantyRequest{
		OrgID:       orgID,
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.WarrantyStatusNew,
		ReporterID:  req.ReporterID,
		Attachments: req.Attachments,
	}
	err := s.repo.Create(&request)
	return request, err
}

// CreateFromPortal files a warranty request submitted through a portal token
func (s *WarrantyService) CreateFromPortal(orgID, projectID string, req dto.PortalWarrantyRequest) (models.WarrantyRequest, error) {
	request := models.WarrantyRequest{
		OrgID:         orgID,
		ProjectID:     projectID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        models.WarrantyStatusNew,
		ReporterEmail: &req.ReporterEmail,
	}
	if err := s.repo.Create(&request); err != nil {
		return models.WarrantyRequest{}, err
	}

	// Notify the org asynchronously; the web request never waits on email.
	s.outbox.Enqueue(orgID, "warranty.created", map[string]interface{}{
		"warrantyRequestId": request.ID,
		"projectId":         projectID,
		"reporterEmail":     req.ReporterEmail,
	})

	return request, nil
}

// UpdateWarrantyRequest works a warranty request through its lifecycle
func (s *WarrantyService) UpdateWarrantyRequest(orgID, projectID, id string, req dto.UpdateWarrantyRequest) (models.WarrantyRequest, error) {
	var request models.WarrantyRequest
	if err := s.repo.FindByID(&request, orgID, projectID, id); err != nil {
		return models.WarrantyRequest{}, err
	}

	request.Title = req.Title
	request.Description = req.Description
	request.ScheduledFor = req.ScheduledFor
	if req.Status != "" && req.Status != request.Status {
		request.Status = req.Status
		if req.Status == models.WarrantyStatusResolved {
			now := time.Now()
			request.ResolvedAt = &now
		}
	}

	err := s.repo.Update(&request)
	return request, err
}

// DeleteWarrantyRequest soft-deletes a warranty request
func (s *WarrantyService) DeleteWarrantyRequest(orgID, projectID, id string) error {
	var request models.WarrantyRequest
	if err := s.repo.FindByID(&request, orgID, projectID, id); err != nil {
		return err
	}
	return s.repo.Delete(&models.WarrantyRequest{}, orgID, projectID, id)
}
