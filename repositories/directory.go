package repositories

import (
	"github.com/sitebeam/database"
	"github.com/sitebeam/models"
)

// DirectoryRepository handles database operations for companies and contacts
type DirectoryRepository struct{}

// NewDirectoryRepository creates a new directory repository instance
func NewDirectoryRepository() *DirectoryRepository {
	return &DirectoryRepository{}
}

// FindCompanies retrieves all companies in an organization
func (r *DirectoryRepository) FindCompanies(orgID, search string) ([]models.Company, error) {
	var companies []models.Company
	db := database.DB.Where("org_id = ?", orgID)
	if search != "" {
		db = db.Where("name LIKE ?", "%"+search+"%")
	}
	result := db.Order("name asc").Find(&companies)
	return companies, result.Error
}

// FindCompanyByID retrieves a company by ID within an organization
func (r *DirectoryRepository) FindCompanyByID(orgID, id string) (models.Company, error) {
	var company models.Company
	result := database.DB.Preload("Contacts").First(&company, "org_id = ? AND id = ?", orgID, id)
	return company, result.Error
}

// CreateCompany inserts a new company
func (r *DirectoryRepository) CreateCompany(company models.Company) (models.Company, error) {
	result := database.DB.Create(&company)
	return company, result.Error
}

// UpdateCompany modifies an existing company
func (r *DirectoryRepository) UpdateCompany(company models.Company) error {
	return database.DB.Save(&company).Error
}

// DeleteCompany soft-deletes a company
func (r *DirectoryRepository) DeleteCompany(orgID, id string) error {
	return database.DB.Where("org_id = ?", orgID).Delete(&models.Company{}, "id = ?", id).Error
}

// FindContacts retrieves all contacts in an organization
func (r *DirectoryRepository) FindContacts(orgID, search string) ([]models.Contact, error) {
	var contacts []models.Contact
	db := database.DB.Where("org_id = ?", orgID)
	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(name LIKE ? OR email LIKE ?)", searchPattern, searchPattern)
	}
	result := db.Order("name asc").Find(&contacts)
	return contacts, result.Error
}

// FindContactByID retrieves a contact by ID within an organization
func (r *DirectoryRepository) FindContactByID(orgID, id string) (models.Contact, error) {
	var contact models.Contact
	result := database.DB.First(&contact, "org_id = ? AND id = ?", orgID, id)
	return contact, result.Error
}

// CreateContact inserts a new contact
func (r *DirectoryRepository) CreateContact(contact models.Contact) (models.Contact, error) {
	result := database.DB.Create(&contact)
	return contact, result.Error
}

// UpdateContact modifies an existing contact
func (r *DirectoryRepository) UpdateContact(contact models.Contact) error {
	return database.DB.Save(&contact).Error
}

// DeleteContact soft-deletes a contact
func (r *DirectoryRepository) DeleteContact(orgID, id string) error {
	return database.DB.Where("org_id = ?", orgID).Delete(&models.Contact{}, "id = ?", id).Error
}
