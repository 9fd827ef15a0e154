package dto

// CreateCompanyRequest represents the payload for creating a directory company
type CreateCompanyRequest struct {
	Name    string  `json:"name" binding:"required"`
	Trade   *string `json:"trade"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// UpdateCompanyRequest represents the payload for updating a directory company
type UpdateCompanyRequest = CreateCompanyRequest

// CreateContactRequest represents the payload for creating a directory contact
type CreateContactRequest struct {
	Name      string  `json:"name" binding:"required"`
	CompanyID *string `json:"companyId"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	Title     *string `json:"title"`
}

// UpdateContactRequest represents the payload for updating a directory contact
type UpdateContactRequest = CreateContactRequest
