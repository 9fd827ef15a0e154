package services

import (
	"github.com/sitebeam/database"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
)

// StatsService aggregates platform-wide numbers for the admin dashboard
type StatsService struct {
	projectRepo  *repositories.ProjectRepository
	invoiceRepo  *repositories.InvoiceRepository
	documentRepo *repositories.DocumentRepository
	outboxRepo   *repositories.OutboxRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService() *StatsService {
	return &StatsService{
		projectRepo:  repositories.NewProjectRepository(),
		invoiceRepo:  repositories.NewInvoiceRepository(),
		documentRepo: repositories.NewDocumentRepository(),
		outboxRepo:   repositories.NewOutboxRepository(),
	}
}

// PlatformOverview returns entity counts across all tenants
func (s *StatsService) PlatformOverview() (dto.PlatformOverviewResponse, error) {
	var resp dto.PlatformOverviewResponse

	if err := database.DB.Model(&models.Organization{}).Count(&resp.Organizations).Error; err != nil {
		return resp, err
	}
	if err := database.DB.Model(&models.User{}).Count(&resp.Users).Error; err != nil {
		return resp, err
	}

	var err error
	if resp.Projects, err = s.projectRepo.Count(); err != nil {
		return resp, err
	}
	if resp.Invoices, err = s.invoiceRepo.Count(); err != nil {
		return resp, err
	}
	if resp.Documents, err = s.documentRepo.Count(); err != nil {
		return resp, err
	}
	return resp, nil
}

// Receivables returns invoice money totals across the platform, void excluded
func (s *StatsService) Receivables() (dto.ReceivablesResponse, error) {
	billed, paid, due, err := s.invoiceRepo.SumAmounts()
	if err != nil {
		return dto.ReceivablesResponse{}, err
	}
	return dto.ReceivablesResponse{
		TotalBilled:      billed.StringFixed(2),
		TotalPaid:        paid.StringFixed(2),
		TotalOutstanding: due.StringFixed(2),
	}, nil
}

// OutboxStats returns job backlog by status and kind
func (s *StatsService) OutboxStats() (dto.OutboxStatsResponse, error) {
	pending, sent, err := s.outboxRepo.CountByStatus()
	if err != nil {
		return dto.OutboxStatsResponse{}, err
	}
	byKind, err := s.outboxRepo.CountByKind()
	if err != nil {
		return dto.OutboxStatsResponse{}, err
	}
	return dto.OutboxStatsResponse{
		Pending: pending,
		Sent:    sent,
		ByKind:  byKind,
	}, nil
}
