package services

import (
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
	"github.com/sitebeam/utils"
)

// SubmittalService handles business logic for submittals
type SubmittalService struct {
	repo *repositories.WorkItemRepository
}

// NewSubmittalService creates a new submittal service instance
func NewSubmittalService() *SubmittalService {
	return &SubmittalService{repo: repositories.NewWorkItemRepository()}
}

// ListSubmittals retrieves project submittals with pagination and filters
func (s *SubmittalService) ListSubmittals(filter dto.ListFilter) (dto.SubmittalListResponse, error) {
	var response dto.SubmittalListResponse

	filter.Normalize()

	validSortColumns := map[string]bool{
		"created_at":   true,
		"updated_at":   true,
		"due_date":     true,
		"number":       true,
		"spec_section": true,
		"status":       true,
	}
	filter.SortBy, filter.SortOrder = utils.NormalizeSort(filter.SortBy, filter.SortOrder, validSortColumns)

	var submittals []models.Submittal
	totalCount, err := s.repo.FindWithPagination(
		&submittals, &models.Submittal{},
		filter.OrgID, filter.ProjectID,
		filter.Page, filter.PageSize,
		filter.SortBy, filter.SortOrder,
		filter.Status, filter.Search, "title",
	)
	if err != nil {
		return response, err
	}

	response = dto.SubmittalListResponse{
		Submittals: submittals,
		ListMeta: dto.ListMeta{
			TotalCount: totalCount,
			Page:       filter.Page,
			PageSize:   filter.PageSize,
			TotalPages: utils.TotalPages(totalCount, filter.PageSize),
		},
	}
	return response, nil
}

// GetSubmittal retrieves a submittal
func (s *SubmittalService) GetSubmittal(orgID, projectID, id string) (models.Submittal, error) {
	var submittal models.Submittal
	err := s.repo.FindByID(&submittal, orgID, projectID, id)
	return submittal, err
}

// CreateSubmittal creates a submittal, drawing the next per-project number
func (s *SubmittalService) CreateSubmittal(orgID, projectID string, req dto.CreateSubmittalRequest) (models.Submittal, error) {
	number, err := s.repo.NextNumber(&models.Submittal{}, projectID)
	if err != nil {
		return models.Submittal{}, err
	}

	submittal := models.Submittal{
		OrgID:       orgID,
		ProjectID:   projectID,
		Number:      number,
		SpecSection: req.SpecSection,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.SubmittalStatusDraft,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	}
	err = s.repo.Create(&submittal)
	return submittal, err
}

// UpdateSubmittal updates a submittal
func (s *SubmittalService) UpdateSubmittal(orgID, projectID, id string, req dto.UpdateSubmittalRequest) (models.Submittal, error) {
	var submittal models.Submittal
	if err := s.repo.FindByID(&submittal, orgID, projectID, id); err != nil {
		return models.Submittal{}, err
	}

	submittal.SpecSection = req.SpecSection
	submittal.Title = req.Title
	submittal.Description = req.Description
	if req.Status != "" {
		submittal.Status = req.Status
	}
	submittal.AssigneeID = req.AssigneeID
	submittal.DueDate = req.DueDate

	err := s.repo.Update(&submittal)
	return submittal, err
}

// DeleteSubmittal soft-deletes a submittal
func (s *SubmittalService) DeleteSubmittal(orgID, projectID, id string) error {
	var submittal models.Submittal
	if err := s.repo.FindByID(&submittal, orgID, projectID, id); err != nil {
		return err
	}
	return s.repo.Delete(&models.Submittal{}, orgID, projectID, id)
}
