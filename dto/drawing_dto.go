package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sitebeam/models"
)

// CreateDrawingSetRequest represents the payload for creating a drawing set
type CreateDrawingSetRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	IssuedDate  *time.Time `json:"issuedDate"`
}

// UpdateDrawingSetRequest represents the payload for updating a drawing set
type UpdateDrawingSetRequest = CreateDrawingSetRequest

// CreateSheetRequest represents the payload for adding a sheet to a set
type CreateSheetRequest struct {
	Number     string `json:"number" binding:"required"`
	Title      string `json:"title" binding:"required"`
	Discipline string `json:"discipline"`
}

// UpdateSheetRequest represents the payload for updating a sheet
type UpdateSheetRequest = CreateSheetRequest

// CreateVersionRequest registers a new uploaded revision of a sheet
type CreateVersionRequest struct {
	Revision string `json:"revision" binding:"required"`
	FileName string `json:"fileName" binding:"required"`
	FileSize int64  `json:"fileSize"`
}

// VersionUploadResponse returns the stored version plus a presigned PUT URL
type VersionUploadResponse struct {
	Version   models.SheetVersion `json:"version"`
	UploadURL string              `json:"uploadUrl"`
}

// CreateMarkupRequest represents the payload for adding a markup to a version
type CreateMarkupRequest struct {
	Geometry datatypes.JSON `json:"geometry" binding:"required"`
	Color    string         `json:"color"`
}

// CreatePinRequest represents the payload for dropping a pin on a sheet
type CreatePinRequest struct {
	X            float64 `json:"x" binding:"min=0,max=1"`
	Y            float64 `json:"y" binding:"min=0,max=1"`
	Note         string  `json:"note"`
	LinkedEntity string  `json:"linkedEntity" binding:"omitempty,oneof=rfi task"`
	LinkedID     *string `json:"linkedId"`
}

// UpdatePinRequest represents the payload for moving/resolving a pin
type UpdatePinRequest struct {
	X      float64          `json:"x" binding:"min=0,max=1"`
	Y      float64          `json:"y" binding:"min=0,max=1"`
	Note   string           `json:"note"`
	Status models.PinStatus `json:"status" binding:"omitempty,oneof=open resolved"`
}

// PinSummaryRow aggregates pin counts for one sheet of a set
type PinSummaryRow struct {
	SheetID     string `json:"sheetId"`
	SheetNumber string `json:"sheetNumber"`
	OpenPins    int64  `json:"openPins"`
	Resolved    int64  `json:"resolvedPins"`
}
