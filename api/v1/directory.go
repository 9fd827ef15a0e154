package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/services"
)

var directoryService = services.NewDirectoryService()

// ListCompanies lists org directory companies
func ListCompanies(c *gin.Context) {
	orgID, _ := orgContext(c)

	companies, err := directoryService.ListCompanies(orgID, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve companies: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": companies})
}

// GetCompany returns one company with its contacts
func GetCompany(c *gin.Context) {
	orgID, _ := orgContext(c)

	company, err := directoryService.GetCompany(orgID, c.Param("companyId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Company not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": company})
}

// CreateCompany creates a directory company
func CreateCompany(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	company, err := directoryService.CreateCompany(orgID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create company: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": company})
}

// UpdateCompany updates a directory company
func UpdateCompany(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	company, err := directoryService.UpdateCompany(orgID, c.Param("companyId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update company: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": company})
}

// DeleteCompany soft-deletes a directory company
func DeleteCompany(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := directoryService.DeleteCompany(orgID, c.Param("companyId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete company: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Company deleted successfully"})
}

// ListContacts lists org directory contacts
func ListContacts(c *gin.Context) {
	orgID, _ := orgContext(c)

	contacts, err := directoryService.ListContacts(orgID, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve contacts: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": contacts})
}

// GetContact returns one contact
func GetContact(c *gin.Context) {
	orgID, _ := orgContext(c)

	contact, err := directoryService.GetContact(orgID, c.Param("contactId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Contact not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": contact})
}

// CreateContact creates a directory contact
func CreateContact(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	contact, err := directoryService.CreateContact(orgID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create contact: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": contact})
}

// UpdateContact updates a directory contact
func UpdateContact(c *gin.Context) {
	orgID, _ := orgContext(c)

	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request data: " + err.Error()})
		return
	}

	contact, err := directoryService.UpdateContact(orgID, c.Param("contactId"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update contact: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": contact})
}

// DeleteContact soft-deletes a directory contact
func DeleteContact(c *gin.Context) {
	orgID, _ := orgContext(c)

	if err := directoryService.DeleteContact(orgID, c.Param("contactId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete contact: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Contact deleted successfully"})
}
