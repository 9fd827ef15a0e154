package dto

import (
	"time"

	"github.com/sitebeam/models"
)

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name            string     `json:"name" binding:"required"`
	Number          string     `json:"number"`
	Description     string     `json:"description"`
	Address         string     `json:"address"`
	ClientCompanyID *string    `json:"clientCompanyId"`
	ClientContactID *string    `json:"clientContactId"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
}

// UpdateProjectRequest represents the request payload for updating an existing project
type UpdateProjectRequest struct {
	Name            string               `json:"name" binding:"required"`
	Number          string               `json:"number"`
	Description     string               `json:"description"`
	Address         string               `json:"address"`
	Status          models.ProjectStatus `json:"status" binding:"omitempty,oneof=planning active on_hold closed"`
	ClientCompanyID *string              `json:"clientCompanyId"`
	ClientContactID *string              `json:"clientContactId"`
	StartDate       *time.Time           `json:"startDate"`
	EndDate         *time.Time           `json:"endDate"`
}

// ProjectListResponse represents paginated project list response
type ProjectListResponse struct {
	Projects []models.Project `json:"projects"`
	ListMeta
}

// ProjectStatsResponse represents project dashboard aggregates
type ProjectStatsResponse struct {
	Project struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Status    string `json:"status"`
		CreatedAt string `json:"createdAt"`
	} `json:"project"`

	Rfis       StatusCounts `json:"rfis"`
	Submittals StatusCounts `json:"submittals"`
	Tasks      StatusCounts `json:"tasks"`
	Invoices   struct {
		StatusCounts
		TotalBilled string `json:"totalBilled"`
		BalanceDue  string `json:"balanceDue"`
	} `json:"invoices"`
	OpenPins int64 `json:"openPins"`
}

// StatusCounts is a total plus a per-status breakdown
type StatusCounts struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}
