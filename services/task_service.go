package services

import (
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
	"github.com/sitebeam/utils"
)

// TaskService handles business logic for project tasks
type TaskService struct {
	repo *repositories.WorkItemRepository
}

// NewTaskService creates a new task service instance
func NewTaskService() *TaskService {
	return &TaskService{repo: repositories.NewWorkItemRepository()}
}

// ListTasks retrieves project tasks with pagination and filters
func (s *TaskService) ListTasks(filter dto.ListFilter) ([]models.Task, dto.ListMeta, error) {
	filter.Normalize()

	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"due_date":   true,
		"title":      true,
		"status":     true,
	}
	filter.SortBy, filter.SortOrder = utils.NormalizeSort(filter.SortBy, filter.SortOrder, validSortColumns)

	var tasks []models.Task
	totalCount, err := s.repo.FindWithPagination(
		&tasks, &models.Task{},
		filter.OrgID, filter.ProjectID,
		filter.Page, filter.PageSize,
		filter.SortBy, filter.SortOrder,
		filter.Status, filter.Search, "title",
	)
	if err != nil {
		return nil, dto.ListMeta{}, err
	}

	meta := dto.ListMeta{
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: utils.TotalPages(totalCount, filter.PageSize),
	}
	return tasks, meta, nil
}

// GetTask retrieves a task
func (s *TaskService) GetTask(orgID, projectID, id string) (models.Task, error) {
	var task models.Task
	err := s.repo.FindByID(&task, orgID, projectID, id)
	return task, err
}

// CreateTask creates a task
func (s *TaskService) CreateTask(orgID, projectID string, req dto.CreateTaskRequest) (models.Task, error) {
	task := models.Task{
		OrgID:       orgID,
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatusTodo,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	}
	err := s.repo.Create(&task)
	return task, err
}

// UpdateTask updates a task
func (s *TaskService) UpdateTask(orgID, projectID, id string, req dto.UpdateTaskRequest) (models.Task, error) {
	var task models.Task
	if err := s.repo.FindByID(&task, orgID, projectID, id); err != nil {
		return models.Task{}, err
	}

	task.Title = req.Title
	task.Description = req.Description
	if req.Status != "" {
		task.Status = req.Status
	}
	task.AssigneeID = req.AssigneeID
	task.DueDate = req.DueDate

	err := s.repo.Update(&task)
	return task, err
}

// DeleteTask soft-deletes a task
func (s *TaskService) DeleteTask(orgID, projectID, id string) error {
	var task models.Task
	if err := s.repo.FindByID(&task, orgID, projectID, id); err != nil {
		return err
	}
	return s.repo.Delete(&models.Task{}, orgID, projectID, id)
}
