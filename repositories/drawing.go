package repositories

import (
	"github.com/sitebeam/database"
	"github.com/sitebeam/dto"
	"github.com/sitebeam/models"
)

// DrawingRepository handles database operations for drawing sets, sheets,
// versions, markups and pins
type DrawingRepository struct{}

// NewDrawingRepository creates a new drawing repository instance
func NewDrawingRepository() *DrawingRepository {
	return &DrawingRepository{}
}

// FindSets retrieves all drawing sets for a project
func (r *DrawingRepository) FindSets(orgID, projectID string) ([]models.DrawingSet, error) {
	var sets []models.DrawingSet
	result := database.DB.
		Where("org_id = ? AND project_id = ?", orgID, projectID).
		Order("created_at desc").
		Find(&sets)
	return sets, result.Error
}

// FindSetByID retrieves a set with sheets preloaded
func (r *DrawingRepository) FindSetByID(orgID, id string) (models.DrawingSet, error) {
	var set models.DrawingSet
	result := database.DB.Preload("Sheets").First(&set, "org_id = ? AND id = ?", orgID, id)
	return set, result.Error
}

// CreateSet inserts a drawing set
func (r *DrawingRepository) CreateSet(set models.DrawingSet) (models.DrawingSet, error) {
	result := database.DB.Create(&set)
	return set, result.Error
}

// UpdateSet saves a drawing set
func (r *DrawingRepository) UpdateSet(set models.DrawingSet) error {
	return database.DB.Save(&set).Error
}

// DeleteSet soft-deletes a drawing set
func (r *DrawingRepository) DeleteSet(orgID, id string) error {
	return database.DB.Where("org_id = ?", orgID).Delete(&models.DrawingSet{}, "id = ?", id).Error
}

// FindSheetByID retrieves a sheet with versions and pins preloaded
func (r *DrawingRepository) FindSheetByID(id string) (models.DrawingSheet, error) {
	var sheet models.DrawingSheet
	result := database.DB.Preload("Versions").Preload("Pins").First(&sheet, "id = ?", id)
	return sheet, result.Error
}

// CreateSheet inserts a sheet
func (r *DrawingRepository) CreateSheet(sheet models.DrawingSheet) (models.DrawingSheet, error) {
	result := database.DB.Create(&sheet)
	return sheet, result.Error
}

// UpdateSheet saves a sheet
func (r *DrawingRepository) UpdateSheet(sheet models.DrawingSheet) error {
	return database.DB.Save(&sheet).Error
}

// DeleteSheet soft-deletes a sheet
func (r *DrawingRepository) DeleteSheet(id string) error {
	return database.DB.Delete(&models.DrawingSheet{}, "id = ?", id).Error
}

// CreateVersion inserts a sheet version
func (r *DrawingRepository) CreateVersion(version models.SheetVersion) (models.SheetVersion, error) {
	result := database.DB.Create(&version)
	return version, result.Error
}

// FindVersionByID retrieves a sheet version
func (r *DrawingRepository) FindVersionByID(id string) (models.SheetVersion, error) {
	var version models.SheetVersion
	result := database.DB.First(&version, "id = ?", id)
	return version, result.Error
}

// FindMarkups retrieves all markups on a version
func (r *DrawingRepository) FindMarkups(versionID string) ([]models.DrawingMarkup, error) {
	var markups []models.DrawingMarkup
	result := database.DB.Where("version_id = ?", versionID).Order("created_at asc").Find(&markups)
	return markups, result.Error
}

// FindMarkupByID retrieves a markup
func (r *DrawingRepository) FindMarkupByID(id string) (models.DrawingMarkup, error) {
	var markup models.DrawingMarkup
	result := database.DB.First(&markup, "id = ?", id)
	return markup, result.Error
}

// CreateMarkup inserts a markup
func (r *DrawingRepository) CreateMarkup(markup models.DrawingMarkup) (models.DrawingMarkup, error) {
	result := database.DB.Create(&markup)
	return markup, result.Error
}

// DeleteMarkup soft-deletes a markup
func (r *DrawingRepository) DeleteMarkup(id string) error {
	return database.DB.Delete(&models.DrawingMarkup{}, "id = ?", id).Error
}

// FindPins retrieves all pins on a sheet
func (r *DrawingRepository) FindPins(sheetID string) ([]models.DrawingPin, error) {
	var pins []models.DrawingPin
	result := database.DB.Where("sheet_id = ?", sheetID).Order("created_at asc").Find(&pins)
	return pins, result.Error
}

// FindPinByID retrieves a pin
func (r *DrawingRepository) FindPinByID(id string) (models.DrawingPin, error) {
	var pin models.DrawingPin
	result := database.DB.First(&pin, "id = ?", id)
	return pin, result.Error
}

// CreatePin inserts a pin
func (r *DrawingRepository) CreatePin(pin models.DrawingPin) (models.DrawingPin, error) {
	result := database.DB.Create(&pin)
	return pin, result.Error
}

// UpdatePin saves a pin
func (r *DrawingRepository) UpdatePin(pin models.DrawingPin) error {
	return database.DB.Save(&pin).Error
}

// DeletePin soft-deletes a pin
func (r *DrawingRepository) DeletePin(id string) error {
	return database.DB.Delete(&models.DrawingPin{}, "id = ?", id).Error
}

// PinSummary aggregates pin counts per sheet for one drawing set
func (r *DrawingRepository) PinSummary(setID string) ([]dto.PinSummaryRow, error) {
	var rows []dto.PinSummaryRow
	err := database.DB.Model(&models.DrawingPin{}).
		Select(`drawing_sheets.id as sheet_id,
			drawing_sheets.number as sheet_number,
			SUM(CASE WHEN drawing_pins.status = ? THEN 1 ELSE 0 END) as open_pins,
			SUM(CASE WHEN drawing_pins.status = ? THEN 1 ELSE 0 END) as resolved`,
			models.PinStatusOpen, models.PinStatusResolved).
		Joins("JOIN drawing_sheets ON drawing_sheets.id = drawing_pins.sheet_id").
		Where("drawing_sheets.set_id = ? AND drawing_pins.deleted_at IS NULL", setID).
		Group("drawing_sheets.id, drawing_sheets.number").
		Order("drawing_sheets.number asc").
		Scan(&rows).Error
	return rows, err
}

// CountOpenPinsForProject counts open pins across all sheets of a project
func (r *DrawingRepository) CountOpenPinsForProject(projectID string) (int64, error) {
	var count int64
	err := database.DB.Model(&models.DrawingPin{}).
		Joins("JOIN drawing_sheets ON drawing_sheets.id = drawing_pins.sheet_id").
		Joins("JOIN drawing_sets ON drawing_sets.id = drawing_sheets.set_id").
		Where("drawing_sets.project_id = ? AND drawing_pins.status = ?", projectID, models.PinStatusOpen).
		Count(&count).Error
	return count, err
}

// FindSheetsForProject lists sheets across all sets of a project (portal view)
func (r *DrawingRepository) FindSheetsForProject(projectID string) ([]models.DrawingSheet, error) {
	var sheets []models.DrawingSheet
	err := database.DB.
		Joins("JOIN drawing_sets ON drawing_sets.id = drawing_sheets.set_id").
		Where("drawing_sets.project_id = ?", projectID).
		Order("drawing_sheets.number asc").
		Find(&sheets).Error
	return sheets, err
}
