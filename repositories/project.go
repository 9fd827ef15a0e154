package repositories

import (
	"github.com/sitebeam/database"
	"github.com/sitebeam/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByID retrieves a project by its ID within an organization
func (r *ProjectRepository) FindByID(orgID, id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "org_id = ? AND id = ?", orgID, id)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	return database.DB.Save(&project).Error
}

// Delete removes a project and its dependents (soft delete)
func (r *ProjectRepository) Delete(orgID, id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Rfi{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Submittal{}).Error; err != nil {
			return err
		}
		return tx.Where("org_id = ?", orgID).Delete(&models.Project{}, "id = ?", id).Error
	})
}

// FindWithPagination retrieves projects with pagination, filtering and sorting
func (r *ProjectRepository) FindWithPagination(
	orgID string,
	page, pageSize int,
	sortBy, sortOrder string,
	status, search string) ([]models.Project, int64, error) {

	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{}).Where("org_id = ?", orgID)

	if status != "" {
		db = db.Where("status = ?", status)
	}

	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(name LIKE ? OR number LIKE ? OR address LIKE ?)", searchPattern, searchPattern, searchPattern)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}

// CountByStatusAcrossModel groups rows of a project-scoped model by status
func (r *ProjectRepository) CountByStatusAcrossModel(model interface{}, projectID string) (map[string]int64, int64, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	err := database.DB.Model(model).
		Select("status, count(*) as n").
		Where("project_id = ?", projectID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	byStatus := make(map[string]int64, len(rows))
	var total int64
	for _, r := range rows {
		byStatus[r.Status] = r.N
		total += r.N
	}
	return byStatus, total, nil
}

// Count returns the number of projects on the platform
func (r *ProjectRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Project{}).Count(&count)
	return count, result.Error
}
