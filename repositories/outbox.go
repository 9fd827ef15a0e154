package repositories

import (
	"time"

	"github.com/sitebeam/database"
	"github.com/sitebeam/models"
	"gorm.io/gorm"
)

// OutboxRepository handles database operations for the job outbox
type OutboxRepository struct{}

// NewOutboxRepository creates a new outbox repository instance
func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{}
}

// Create inserts a job row
func (r *OutboxRepository) Create(job models.OutboxJob) (models.OutboxJob, error) {
	result := database.DB.Create(&job)
	return job, result.Error
}

// FindByID retrieves a job row
func (r *OutboxRepository) FindByID(id string) (models.OutboxJob, error) {
	var job models.OutboxJob
	result := database.DB.First(&job, "id = ?", id)
	return job, result.Error
}

// Requeue resets a job to pending and bumps its attempt counter
func (r *OutboxRepository) Requeue(id string, runAfter time.Time) error {
	return database.DB.Model(&models.OutboxJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":    models.OutboxStatusPending,
			"run_after": runAfter,
			"attempts":  gorm.Expr("attempts + 1"),
		}).Error
}

// CountByStatus returns job counts grouped by status
func (r *OutboxRepository) CountByStatus() (pending, sent int64, err error) {
	if err = database.DB.Model(&models.OutboxJob{}).
		Where("status = ?", models.OutboxStatusPending).Count(&pending).Error; err != nil {
		return
	}
	err = database.DB.Model(&models.OutboxJob{}).
		Where("status = ?", models.OutboxStatusSent).Count(&sent).Error
	return
}

// CountByKind returns pending job counts grouped by kind
func (r *OutboxRepository) CountByKind() (map[string]int64, error) {
	type row struct {
		Kind string
		N    int64
	}
	var rows []row
	err := database.DB.Model(&models.OutboxJob{}).
		Select("kind, count(*) as n").
		Where("status = ?", models.OutboxStatusPending).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	byKind := make(map[string]int64, len(rows))
	for _, r := range rows {
		byKind[r.Kind] = r.N
	}
	return byKind, nil
}
