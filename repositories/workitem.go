package repositories

import (
	"github.com/sitebeam/database"
)

// WorkItemRepository handles database operations for tasks, RFIs, submittals,
// change orders and warranty requests. They share the org+project scoping and
// numbering patterns, so one repository covers the family.
type WorkItemRepository struct{}

// NewWorkItemRepository creates a new work item repository instance
func NewWorkItemRepository() *WorkItemRepository {
	return &WorkItemRepository{}
}

// NextNumber returns the next per-project sequence number for a numbered model
// (RFIs, submittals, change orders). Numbers start at 1.
func (r *WorkItemRepository) NextNumber(model interface{}, projectID string) (int, error) {
	var max int
	err := database.DB.Model(model).
		Where("project_id = ?", projectID).
		Select("COALESCE(MAX(number), 0)").
		Scan(&max).Error
	return max + 1, err
}

// FindByID retrieves one project-scoped record into dest
func (r *WorkItemRepository) FindByID(dest interface{}, orgID, projectID, id string) error {
	return database.DB.
		First(dest, "org_id = ? AND project_id = ? AND id = ?", orgID, projectID, id).Error
}

// Create inserts a record
func (r *WorkItemRepository) Create(record interface{}) error {
	return database.DB.Create(record).Error
}

// Update saves a record
func (r *WorkItemRepository) Update(record interface{}) error {
	return database.DB.Save(record).Error
}

// Delete soft-deletes one project-scoped record of the given model
func (r *WorkItemRepository) Delete(model interface{}, orgID, projectID, id string) error {
	return database.DB.
		Where("org_id = ? AND project_id = ?", orgID, projectID).
		Delete(model, "id = ?", id).Error
}

// FindWithPagination retrieves project-scoped records with pagination and filters.
// dest must be a pointer to a slice of the model.
func (r *WorkItemRepository) FindWithPagination(
	dest interface{},
	model interface{},
	orgID, projectID string,
	page, pageSize int,
	sortBy, sortOrder string,
	status, search, searchColumn string) (int64, error) {

	var totalCount int64

	db := database.DB.Model(model).Where("org_id = ? AND project_id = ?", orgID, projectID)

	if status != "" {
		db = db.Where("status = ?", status)
	}

	if search != "" && searchColumn != "" {
		db = db.Where(searchColumn+" LIKE ?", "%"+search+"%")
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return 0, err
	}

	offset := (page - 1) * pageSize
	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).Find(dest).Error; err != nil {
		return 0, err
	}

	return totalCount, nil
}
