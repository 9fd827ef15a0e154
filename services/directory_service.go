package services

import (
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
)

// DirectoryService handles business logic for companies and contacts
type DirectoryService struct {
	repo *repositories.DirectoryRepository
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService() *DirectoryService {
	return &DirectoryService{repo: repositories.NewDirectoryRepository()}
}

// ListCompanies lists org companies, optionally filtered by name
func (s *DirectoryService) ListCompanies(orgID, search string) ([]models.Company, error) {
	return s.repo.FindCompanies(orgID, search)
}

// GetCompany retrieves a company with contacts
func (s *DirectoryService) GetCompany(orgID, id string) (models.Company, error) {
	return s.repo.FindCompanyByID(orgID, id)
}

// CreateCompany creates a directory company
func (s *DirectoryService) CreateCompany(orgID string, req dto.CreateCompanyRequest) (models.Company, error) {
	company := models.Company{
		OrgID:   orgID,
		Name:    req.Name,
		Trade:   req.Trade,
		Phone:   req.Phone,
		Address: req.Address,
	}
	return s.repo.CreateCompany(company)
}

// UpdateCompany updates a directory company
func (s *DirectoryService) UpdateCompany(orgID, id string, req dto.UpdateCompanyRequest) (models.Company, error) {
	company, err := s.repo.FindCompanyByID(orgID, id)
	if err != nil {
		return models.Company{}, err
	}
	company.Name = req.Name
	company.Trade = req.Trade
	company.Phone = req.Phone
	company.Address = req.Address
	company.Contacts = nil
	if err := s.repo.UpdateCompany(company); err != nil {
		return models.Company{}, err
	}
	return company, nil
}

// DeleteCompany soft-deletes a company
func (s *DirectoryService) DeleteCompany(orgID, id string) error {
	if _, err := s.repo.FindCompanyByID(orgID, id); err != nil {
		return err
	}
	return s.repo.DeleteCompany(orgID, id)
}

// ListContacts lists org contacts, optionally filtered by name or email
func (s *DirectoryService) ListContacts(orgID, search string) ([]models.Contact, error) {
	return s.repo.FindContacts(orgID, search)
}

// GetContact retrieves a contact
func (s *DirectoryService) GetContact(orgID, id string) (models.Contact, error) {
	return s.repo.FindContactByID(orgID, id)
}

// CreateContact creates a directory contact
func (s *DirectoryService) CreateContact(orgID string, req dto.CreateContactRequest) (models.Contact, error) {
	contact := models.Contact{
		OrgID:     orgID,
		CompanyID: req.CompanyID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Title:     req.Title,
	}
	return s.repo.CreateContact(contact)
}

// UpdateContact updates a directory contact
func (s *DirectoryService) UpdateContact(orgID, id string, req dto.UpdateContactRequest) (models.Contact, error) {
	contact, err := s.repo.FindContactByID(orgID, id)
	if err != nil {
		return models.Contact{}, err
	}
	contact.CompanyID = req.CompanyID
	contact.Name = req.Name
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Title = req.Title
	if err := s.repo.UpdateContact(contact); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

// DeleteContact soft-deletes a contact
func (s *DirectoryService) DeleteContact(orgID, id string) error {
	if _, err := s.repo.FindContactByID(orgID, id); err != nil {
		return err
	}
	return s.repo.DeleteContact(orgID, id)
}
