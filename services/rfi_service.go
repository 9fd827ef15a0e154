package services

import (
	"time"

	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
	"github.com/sitebeam/utils"
)

// RfiService handles business logic for RFIs
type RfiService struct {
	repo *repositories.WorkItemRepository
}

// NewRfiService creates a new RFI service instance
func NewRfiService() *RfiService {
	return &RfiService{repo: repositories.NewWorkItemRepository()}
}

// ListRfis retrieves project RFIs with pagination and filters
func (s *RfiService) ListRfis(filter dto.ListFilter) (dto.RfiListResponse, error) {
	var response dto.RfiListResponse

	filter.Normalize()

	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"due_date":   true,
		"number":     true,
		"status":     true,
	}
	filter.SortBy, filter.SortOrder = utils.NormalizeSort(filter.SortBy, filter.SortOrder, validSortColumns)

	var rfis []models.Rfi
	totalCount, err := s.repo.FindWithPagination(
		&rfis, &models.Rfi{},
		filter.OrgID, filter.ProjectID,
		filter.Page, filter.PageSize,
		filter.SortBy, filter.SortOrder,
		filter.Status, filter.Search, "subject",
	)
	if err != nil {
		return response, err
	}

	response = dto.RfiListResponse{
		Rfis: rfis,
		ListMeta: dto.ListMeta{
			TotalCount: totalCount,
			Page:       filter.Page,
			PageSize:   filter.PageSize,
			TotalPages: utils.TotalPages(totalCount, filter.PageSize),
		},
	}
	return response, nil
}

// GetRfi retrieves an RFI
func (s *RfiService) GetRfi(orgID, projectID, id string) (models.Rfi, error) {
	var rfi models.Rfi
	err := s.repo.FindByID(&rfi, orgID, projectID, id)
	return rfi, err
}

// CreateRfi creates an RFI, drawing the next per-project number
func (s *RfiService) CreateRfi(orgID, projectID string, req dto.CreateRfiRequest) (models.Rfi, error) {
	number, err := s.repo.NextNumber(&models.Rfi{}, projectID)
	if err != nil {
		return models.Rfi{}, err
	}

	rfi := models.Rfi{
		OrgID:      orgID,
		ProjectID:  projectID,
		Number:     number,
		Subject:    req.Subject,
		Question:   req.Question,
		Status:     models.RfiStatusDraft,
		AssigneeID: req.AssigneeID,
		DueDate:    req.DueDate,
	}
	err = s.repo.Create(&rfi)
	return rfi, err
}

// UpdateRfi updates an RFI. Setting an answer moves an open RFI to answered.
func (s *RfiService) UpdateRfi(orgID, projectID, id string, req dto.UpdateRfiRequest) (models.Rfi, error) {
	var rfi models.Rfi
	if err := s.repo.FindByID(&rfi, orgID, projectID, id); err != nil {
		return models.Rfi{}, err
	}

	rfi.Subject = req.Subject
	rfi.Question = req.Question
	rfi.AssigneeID = req.AssigneeID
	rfi.DueDate = req.DueDate

	if req.Answer != "" && rfi.Answer == "" {
		now := time.Now()
		rfi.AnsweredAt = &now
		if rfi.Status == models.RfiStatusOpen {
			rfi.Status = models.RfiStatusAnswered
		}
	}
	rfi.Answer = req.Answer

	if req.Status != "" {
		rfi.Status = req.Status
	}

	err := s.repo.Update(&rfi)
	return rfi, err
}

// DeleteRfi soft-deletes an RFI
func (s *RfiService) DeleteRfi(orgID, projectID, id string) error {
	var rfi models.Rfi
	if err := s.repo.FindByID(&rfi, orgID, projectID, id); err != nil {
		return err
	}
	return s.repo.Delete(&models.Rfi{}, orgID, projectID, id)
}

// ListOpenRfisForPortal returns open RFIs for the portal view
func (s *RfiService) ListOpenRfisForPortal(orgID, projectID string) ([]models.Rfi, error) {
	var rfis []models.Rfi
	_, err := s.repo.FindWithPagination(
		&rfis, &models.Rfi{},
		orgID, projectID,
		1, 100,
		"number", "asc",
		string(models.RfiStatusOpen), "", "",
	)
	return rfis, err
}
