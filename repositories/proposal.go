package repositories

import (
	"github.com/sitebeam/database"
	"github.com/sitebeam/models"
)

// ProposalRepository handles database operations for proposals
type ProposalRepository struct{}

// NewProposalRepository creates a new proposal repository instance
func NewProposalRepository() *ProposalRepository {
	return &ProposalRepository{}
}

// FindByID retrieves a proposal by ID within an organization
func (r *ProposalRepository) FindByID(orgID, id string) (models.Proposal, error) {
	var proposal models.Proposal
	result := database.DB.First(&proposal, "org_id = ? AND id = ?", orgID, id)
	return proposal, result.Error
}

// FindByPublicTokenHash retrieves a proposal by its public token hash
func (r *ProposalRepository) FindByPublicTokenHash(hash string) (models.Proposal, error) {
	var proposal models.Proposal
	result := database.DB.First(&proposal, "public_token_hash = ?", hash)
	return proposal, result.Error
}

// FindByProject retrieves all proposals for a project
func (r *ProposalRepository) FindByProject(orgID, projectID string) ([]models.Proposal, error) {
	var proposals []models.Proposal
	result := database.DB.
		Where("org_id = ? AND project_id = ?", orgID, projectID).
		Order("created_at desc").
		Find(&proposals)
	return proposals, result.Error
}

// Create inserts a proposal
func (r *ProposalRepository) Create(proposal models.Proposal) (models.Proposal, error) {
	result := database.DB.Create(&proposal)
	return proposal, result.Error
}

// Update saves a proposal
func (r *ProposalRepository) Update(proposal models.Proposal) error {
	return database.DB.Save(&proposal).Error
}

// Delete soft-deletes a proposal
func (r *ProposalRepository) Delete(orgID, id string) error {
	return database.DB.Where("org_id = ?", orgID).Delete(&models.Proposal{}, "id = ?", id).Error
}
