package repositories

import (
	"github.com/sitebeam/database"
	"github.com/sitebeam/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentRepository handles database operations for documents and signing requests
type DocumentRepository struct{}

// NewDocumentRepository creates a new document repository instance
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

// FindByID retrieves a document with signing requests ordered by sequence
func (r *DocumentRepository) FindByID(orgID, id string) (models.Document, error) {
	var doc models.Document
	result := database.DB.Preload("SigningRequests", func(db *gorm.DB) *gorm.DB {
		return db.Order("sequence asc, created_at asc")
	}).First(&doc, "org_id = ? AND id = ?", orgID, id)
	return doc, result.Error
}

// FindAll retrieves documents for an org, optionally filtered by project
func (r *DocumentRepository) FindAll(orgID string, projectID string) ([]models.Document, error) {
	var docs []models.Document
	db := database.DB.Where("org_id = ?", orgID)
	if projectID != "" {
		db = db.Where("project_id = ?", projectID)
	}
	result := db.Order("created_at desc").Find(&docs)
	return docs, result.Error
}

// Create inserts a document
func (r *DocumentRepository) Create(doc models.Document) (models.Document, error) {
	result := database.DB.Create(&doc)
	return doc, result.Error
}

// Update saves a document. Signing requests ride along preloaded on the
// struct, so skip association writes; requests are persisted through their
// own methods.
func (r *DocumentRepository) Update(doc models.Document) error {
	return database.DB.Omit(clause.Associations).Save(&doc).Error
}

// Delete soft-deletes a document
func (r *DocumentRepository) Delete(orgID, id string) error {
	return database.DB.Where("org_id = ?", orgID).Delete(&models.Document{}, "id = ?", id).Error
}

// CreateSigningRequests inserts a batch of signing requests
func (r *DocumentRepository) CreateSigningRequests(requests []models.SigningRequest) error {
	return database.DB.Create(&requests).Error
}

// FindSigningRequests retrieves a document's signing requests in signing order
func (r *DocumentRepository) FindSigningRequests(documentID string) ([]models.SigningRequest, error) {
	var requests []models.SigningRequest
	result := database.DB.
		Where("document_id = ?", documentID).
		Order("sequence asc, created_at asc").
		Find(&requests)
	return requests, result.Error
}

// FindSigningRequestByTokenHash retrieves a signing request by its token hash
func (r *DocumentRepository) FindSigningRequestByTokenHash(hash string) (models.SigningRequest, error) {
	var request models.SigningRequest
	result := database.DB.First(&request, "token_hash = ?", hash)
	return request, result.Error
}

// UpdateSigningRequest saves a signing request
func (r *DocumentRepository) UpdateSigningRequest(request models.SigningRequest) error {
	return database.DB.Save(&request).Error
}

// FindDocumentBySigningRequest retrieves the parent document of a request
func (r *DocumentRepository) FindDocumentBySigningRequest(request models.SigningRequest) (models.Document, error) {
	var doc models.Document
	result := database.DB.First(&doc, "id = ?", request.DocumentID)
	return doc, result.Error
}

// Count returns the number of documents on the platform
func (r *DocumentRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Document{}).Count(&count)
	return count, result.Error
}
