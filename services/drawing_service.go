package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
	"github.com/sitebeam/repositories"
	"gorm.io/gorm"
)

// DrawingService handles business logic for drawing sets, sheets, versions,
// markups and pins
type DrawingService struct {
	repo *repositories.DrawingRepository
}

// NewDrawingService creates a new drawing service instance
func NewDrawingService() *DrawingService {
	return &DrawingService{repo: repositories.NewDrawingRepository()}
}

// ListSets retrieves all drawing sets for a project
func (s *DrawingService) ListSets(orgID, projectID string) ([]models.DrawingSet, error) {
	return s.repo.FindSets(orgID, projectID)
}

// GetSet retrieves a drawing set with its sheets
func (s *DrawingService) GetSet(orgID, id string) (models.DrawingSet, error) {
	return s.repo.FindSetByID(orgID, id)
}

// CreateSet creates a drawing set
func (s *DrawingService) CreateSet(orgID, projectID string, req dto.CreateDrawingSetRequest) (models.DrawingSet, error) {
	set := models.DrawingSet{
		OrgID:       orgID,
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		IssuedDate:  req.IssuedDate,
	}
	return s.repo.CreateSet(set)
}

// UpdateSet updates a drawing set
func (s *DrawingService) UpdateSet(orgID, id string, req dto.UpdateDrawingSetRequest) (models.DrawingSet, error) {
	set, err := s.repo.FindSetByID(orgID, id)
	if err != nil {
		return models.DrawingSet{}, err
	}
	set.Name = req.Name
	set.Description = req.Description
	set.IssuedDate = req.IssuedDate
	if err := s.repo.UpdateSet(set); err != nil {
		return models.DrawingSet{}, err
	}
	return set, nil
}

// DeleteSet soft-deletes a drawing set
func (s *DrawingService) DeleteSet(orgID, id string) error {
	if _, err := s.repo.FindSetByID(orgID, id); err != nil {
		return err
	}
	return s.repo.DeleteSet(orgID, id)
}

// GetSheet retrieves a sheet with versions and pins, checking it belongs to
// the caller's org via its set
func (s *DrawingService) GetSheet(orgID, setID, sheetID string) (models.DrawingSheet, error) {
	if _, err := s.repo.FindSetByID(orgID, setID); err != nil {
		return models.DrawingSheet{}, err
	}
	sheet, err := s.repo.FindSheetByID(sheetID)
	if err != nil {
		return models.DrawingSheet{}, err
	}
	if sheet.SetID != setID {
		return models.DrawingSheet{}, fmt.Errorf("sheet does not belong to this set")
	}
	return sheet, nil
}

// CreateSheet adds a sheet to a set
func (s *DrawingService) CreateSheet(orgID, setID string, req dto.CreateSheetRequest) (models.DrawingSheet, error) {
	if _, err := s.repo.FindSetByID(orgID, setID); err != nil {
		return models.DrawingSheet{}, err
	}
	sheet := models.DrawingSheet{
		SetID:      setID,
		Number:     req.Number,
		Title:      req.Title,
		Discipline: req.Discipline,
	}
	return s.repo.CreateSheet(sheet)
}

// UpdateSheet updates a sheet
func (s *DrawingService) UpdateSheet(orgID, setID, sheetID string, req dto.UpdateSheetRequest) (models.DrawingSheet, error) {
	sheet, err := s.GetSheet(orgID, setID, sheetID)
	if err != nil {
		return models.DrawingSheet{}, err
	}
	sheet.Number = req.Number
	sheet.Title = req.Title
	sheet.Discipline = req.Discipline
	sheet.Versions = nil
	sheet.Pins = nil
	if err := s.repo.UpdateSheet(sheet); err != nil {
		return models.DrawingSheet{}, err
	}
	return sheet, nil
}

// DeleteSheet soft-deletes a sheet
func (s *DrawingService) DeleteSheet(orgID, setID, sheetID string) error {
	if _, err := s.GetSheet(orgID, setID, sheetID); err != nil {
		return err
	}
	return s.repo.DeleteSheet(sheetID)
}

// CreateVersion registers a new revision of a sheet and returns a presigned
// PUT URL for the file. Versions are immutable once uploaded; a new file
// means a new version.
func (s *DrawingService) CreateVersion(orgID, setID, sheetID, userID string, req dto.CreateVersionRequest) (dto.VersionUploadResponse, error) {
	if _, err := s.GetSheet(orgID, setID, sheetID); err != nil {
		return dto.VersionUploadResponse{}, err
	}
	if objectStore == nil {
		return dto.VersionUploadResponse{}, fmt.Errorf("object storage is not configured")
	}

	version := models.SheetVersion{
		SheetID:    sheetID,
		Revision:   req.Revision,
		FileName:   req.FileName,
		FileSize:   req.FileSize,
		UploadedBy: userID,
	}
	version.StorageKey = fmt.Sprintf("drawings/%s/%s/%s/%s", orgID, sheetID, req.Revision, req.FileName)
	version, err := s.repo.CreateVersion(version)
	if err != nil {
		return dto.VersionUploadResponse{}, err
	}

	uploadURL, err := objectStore.PresignUpload(context.Background(), version.StorageKey, 15*time.Minute)
	if err != nil {
		return dto.VersionUploadResponse{}, err
	}
	return dto.VersionUploadResponse{Version: version, UploadURL: uploadURL}, nil
}

// sheetInProject resolves a sheet and walks up to its set to verify the org
// and project on the request path own it. Out-of-scope lookups read as not
// found so nothing leaks across tenants.
func (s *DrawingService) sheetInProject(orgID, projectID, sheetID string) (models.DrawingSheet, error) {
	sheet, err := s.repo.FindSheetByID(sheetID)
	if err != nil {
		return models.DrawingSheet{}, err
	}
	set, err := s.repo.FindSetByID(orgID, sheet.SetID)
	if err != nil {
		return models.DrawingSheet{}, err
	}
	if set.ProjectID != projectID {
		return models.DrawingSheet{}, gorm.ErrRecordNotFound
	}
	return sheet, nil
}

// versionInProject resolves a version and verifies its sheet is in scope
func (s *DrawingService) versionInProject(orgID, projectID, versionID string) (models.SheetVersion, error) {
	version, err := s.repo.FindVersionByID(versionID)
	if err != nil {
		return models.SheetVersion{}, err
	}
	if _, err := s.sheetInProject(orgID, projectID, version.SheetID); err != nil {
		return models.SheetVersion{}, err
	}
	return version, nil
}

// VersionDownloadURL returns a presigned GET URL for a version's file
func (s *DrawingService) VersionDownloadURL(orgID, projectID, versionID string) (string, error) {
	version, err := s.versionInProject(orgID, projectID, versionID)
	if err != nil {
		return "", err
	}
	if objectStore == nil {
		return "", fmt.Errorf("object storage is not configured")
	}
	return objectStore.PresignDownload(context.Background(), version.StorageKey, 15*time.Minute)
}

// ListMarkups retrieves all markups on a version
func (s *DrawingService) ListMarkups(orgID, projectID, versionID string) ([]models.DrawingMarkup, error) {
	if _, err := s.versionInProject(orgID, projectID, versionID); err != nil {
		return nil, err
	}
	return s.repo.FindMarkups(versionID)
}

// CreateMarkup adds a markup to a version
func (s *DrawingService) CreateMarkup(orgID, projectID, versionID, userID string, req dto.CreateMarkupRequest) (models.DrawingMarkup, error) {
	if _, err := s.versionInProject(orgID, projectID, versionID); err != nil {
		return models.DrawingMarkup{}, err
	}
	markup := models.DrawingMarkup{
		VersionID: versionID,
		AuthorID:  userID,
		Geometry:  req.Geometry,
	}
	if req.Color != "" {
		markup.Color = req.Color
	}
	return s.repo.CreateMarkup(markup)
}

// DeleteMarkup removes a markup. Only its author may delete it.
func (s *DrawingService) DeleteMarkup(orgID, projectID, id, userID string) error {
	markup, err := s.repo.FindMarkupByID(id)
	if err != nil {
		return err
	}
	if _, err := s.versionInProject(orgID, projectID, markup.VersionID); err != nil {
		return err
	}
	if markup.AuthorID != userID {
		return fmt.Errorf("markups can only be deleted by their author")
	}
	return s.repo.DeleteMarkup(id)
}

// ListPins retrieves all pins on a sheet
func (s *DrawingService) ListPins(orgID, projectID, sheetID string) ([]models.DrawingPin, error) {
	if _, err := s.sheetInProject(orgID, projectID, sheetID); err != nil {
		return nil, err
	}
	return s.repo.FindPins(sheetID)
}

// CreatePin drops a pin on a sheet. Coordinates are fractions of the sheet
// size so they survive revision swaps.
func (s *DrawingService) CreatePin(orgID, projectID, sheetID, userID string, req dto.CreatePinRequest) (models.DrawingPin, error) {
	if _, err := s.sheetInProject(orgID, projectID, sheetID); err != nil {
		return models.DrawingPin{}, err
	}
	if req.LinkedEntity != "" && req.LinkedID == nil {
		return models.DrawingPin{}, fmt.Errorf("linked entity requires a linked id")
	}
	pin := models.DrawingPin{
		SheetID:      sheetID,
		X:            req.X,
		Y:            req.Y,
		Status:       models.PinStatusOpen,
		Note:         req.Note,
		LinkedEntity: req.LinkedEntity,
		LinkedID:     req.LinkedID,
		CreatedBy:    userID,
	}
	return s.repo.CreatePin(pin)
}

// UpdatePin moves or resolves a pin
func (s *DrawingService) UpdatePin(orgID, projectID, id string, req dto.UpdatePinRequest) (models.DrawingPin, error) {
	pin, err := s.repo.FindPinByID(id)
	if err != nil {
		return models.DrawingPin{}, err
	}
	if _, err := s.sheetInProject(orgID, projectID, pin.SheetID); err != nil {
		return models.DrawingPin{}, err
	}
	pin.X = req.X
	pin.Y = req.Y
	pin.Note = req.Note
	if req.Status != "" {
		pin.Status = req.Status
	}
	if err := s.repo.UpdatePin(pin); err != nil {
		return models.DrawingPin{}, err
	}
	return pin, nil
}

// DeletePin removes a pin
func (s *DrawingService) DeletePin(orgID, projectID, id string) error {
	pin, err := s.repo.FindPinByID(id)
	if err != nil {
		return err
	}
	if _, err := s.sheetInProject(orgID, projectID, pin.SheetID); err != nil {
		return err
	}
	return s.repo.DeletePin(id)
}

// PinSummary aggregates pin counts per sheet for one set
func (s *DrawingService) PinSummary(orgID, setID string) ([]dto.PinSummaryRow, error) {
	if _, err := s.repo.FindSetByID(orgID, setID); err != nil {
		return nil, err
	}
	return s.repo.PinSummary(setID)
}

// ListSheetsForPortal lists project sheets for the portal drawing index
func (s *DrawingService) ListSheetsForPortal(projectID string) ([]models.DrawingSheet, error) {
	return s.repo.FindSheetsForProject(projectID)
}
