package services

import (
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
	"github.com/sitebeam/utils"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	invoiceRepo *repositories.InvoiceRepository
	drawingRepo *repositories.DrawingRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
		invoiceRepo: repositories.NewInvoiceRepository(),
		drawingRepo: repositories.NewDrawingRepository(),
	}
}

// ListProjects retrieves org projects with pagination, filtering and sorting
func (s *ProjectService) ListProjects(filter dto.ListFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	filter.Normalize()

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"name":       true,
		"number":     true,
		"status":     true,
	}
	filter.SortBy, filter.SortOrder = utils.NormalizeSort(filter.SortBy, filter.SortOrder, validSortColumns)

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.OrgID,
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.Status,
		filter.Search,
	)
	if err != nil {
		return response, err
	}

	response = dto.ProjectListResponse{
		Projects: projects,
		ListMeta: dto.ListMeta{
			TotalCount: totalCount,
			Page:       filter.Page,
			PageSize:   filter.PageSize,
			TotalPages: utils.TotalPages(totalCount, filter.PageSize),
		},
	}
	return response, nil
}

// GetProject retrieves a project by ID within the org
func (s *ProjectService) GetProject(orgID, projectID string) (models.Project, error) {
	return s.projectRepo.FindByID(orgID, projectID)
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(orgID string, req dto.CreateProjectRequest) (models.Project, error) {
	project := models.Project{
		OrgID:           orgID,
		Name:            req.Name,
		Number:          req.Number,
		Description:     req.Description,
		Address:         req.Address,
		Status:          models.ProjectStatusPlanning,
		ClientCompanyID: req.ClientCompanyID,
		ClientContactID: req.ClientContactID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	}
	return s.projectRepo.Create(project)
}

// UpdateProject updates an existing project
func (s *ProjectService) UpdateProject(orgID, projectID string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindByID(orgID, projectID)
	if err != nil {
		return models.Project{}, err
	}

	project.Name = req.Name
	project.Number = req.Number
	project.Description = req.Description
	project.Address = req.Address
	if req.Status != "" {
		project.Status = req.Status
	}
	project.ClientCompanyID = req.ClientCompanyID
	project.ClientContactID = req.ClientContactID
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate

	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// DeleteProject soft-deletes a project and its dependents
func (s *ProjectService) DeleteProject(orgID, projectID string) error {
	if _, err := s.projectRepo.FindByID(orgID, projectID); err != nil {
		return err
	}
	return s.projectRepo.Delete(orgID, projectID)
}

// GetProjectStats aggregates dashboard counters for one project
func (s *ProjectService) GetProjectStats(orgID, projectID string) (dto.ProjectStatsResponse, error) {
	var stats dto.ProjectStatsResponse

	project, err := s.projectRepo.FindByID(orgID, projectID)
	if err != nil {
		return stats, err
	}

	stats.Project.ID = project.ID
	stats.Project.Name = project.Name
	stats.Project.Status = string(project.Status)
	stats.Project.CreatedAt = project.CreatedAt.Format("2006-01-02T15:04:05Z07:00")

	byStatus, total, err := s.projectRepo.CountByStatusAcrossModel(&models.Rfi{}, projectID)
	if err != nil {
		return stats, err
	}
	stats.Rfis = dto.StatusCounts{Total: total, ByStatus: byStatus}

	byStatus, total, err = s.projectRepo.CountByStatusAcrossModel(&models.Submittal{}, projectID)
	if err != nil {
		return stats, err
	}
	stats.Submittals = dto.StatusCounts{Total: total, ByStatus: byStatus}

	byStatus, total, err = s.projectRepo.CountByStatusAcrossModel(&models.Task{}, projectID)
	if err != nil {
		return stats, err
	}
	stats.Tasks = dto.StatusCounts{Total: total, ByStatus: byStatus}

	byStatus, total, err = s.projectRepo.CountByStatusAcrossModel(&models.Invoice{}, projectID)
	if err != nil {
		return stats, err
	}
	stats.Invoices.StatusCounts = dto.StatusCounts{Total: total, ByStatus: byStatus}

	billed, due, err := s.invoiceRepo.SumProjectAmounts(projectID)
	if err != nil {
		return stats, err
	}
	stats.Invoices.TotalBilled = billed.StringFixed(2)
	stats.Invoices.BalanceDue = due.StringFixed(2)

	openPins, err := s.drawingRepo.CountOpenPinsForProject(projectID)
	if err != nil {
		return stats, err
	}
	stats.OpenPins = openPins

	return stats, nil
}
