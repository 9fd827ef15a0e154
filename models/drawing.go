package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DrawingSet represents a project drawing package (e.g. "Permit Set 2024-03")
type DrawingSet struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID       string         `json:"orgId" gorm:"type:uuid;not null;index"`
	ProjectID   string         `json:"projectId" gorm:"type:uuid;not null;index"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"default:null"`
	IssuedDate  *time.Time     `json:"issuedDate" gorm:"default:null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Sheets []DrawingSheet `json:"sheets,omitempty" gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE"`
}

func (s *DrawingSet) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// DrawingSheet represents one sheet within a set (A-101, S-201, ...)
type DrawingSheet struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid"`
	SetID      string         `json:"setId" gorm:"type:uuid;not null;index"`
	Number     string         `json:"number" gorm:"not null"`
	Title      string         `json:"title" gorm:"not null"`
	Discipline string         `json:"discipline" gorm:"default:null"` // A, S, M, E, P...
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Versions []SheetVersion `json:"versions,omitempty" gorm:"foreignKey:SheetID;constraint:OnDelete:CASCADE"`
	Pins     []DrawingPin   `json:"pins,omitempty" gorm:"foreignKey:SheetID;constraint:OnDelete:CASCADE"`
}

func (s *DrawingSheet) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// SheetVersion records one uploaded revision of a sheet. Immutable once uploaded.
type SheetVersion struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	SheetID    string    `json:"sheetId" gorm:"type:uuid;not null;index"`
	Revision   string    `json:"revision" gorm:"not null"` // Rev A, Rev B...
	StorageKey string    `json:"storageKey" gorm:"not null"`
	FileName   string    `json:"fileName" gorm:"not null"`
	FileSize   int64     `json:"fileSize" gorm:"default:0"`
	UploadedBy string    `json:"uploadedBy" gorm:"type:uuid;not null"`
	CreatedAt  time.Time `json:"createdAt"`

	// Relations
	Markups []DrawingMarkup `json:"markups,omitempty" gorm:"foreignKey:VersionID;constraint:OnDelete:CASCADE"`
}

func (v *SheetVersion) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// DrawingMarkup represents a freehand/shape annotation on a sheet version
type DrawingMarkup struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid"`
	VersionID string         `json:"versionId" gorm:"type:uuid;not null;index"`
	AuthorID  string         `json:"authorId" gorm:"type:uuid;not null"`
	Geometry  datatypes.JSON `json:"geometry" gorm:"not null"` // shape/path coordinates
	Color     string         `json:"color" gorm:"default:'#ff0000'"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (m *DrawingMarkup) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// PinStatus represents resolution state of a drawing pin
type PinStatus string

const (
	PinStatusOpen     PinStatus = "open"
	PinStatusResolved PinStatus = "resolved"
)

// DrawingPin is a positioned issue marker on a sheet. Pins live on the sheet,
// not the version, so they carry forward when a new revision is uploaded.
type DrawingPin struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	SheetID      string         `json:"sheetId" gorm:"type:uuid;not null;index"`
	X            float64        `json:"x" gorm:"not null"` // fraction of sheet width, 0..1
	Y            float64        `json:"y" gorm:"not null"` // fraction of sheet height, 0..1
	Status       PinStatus      `json:"status" gorm:"type:varchar(10);not null;default:'open'"`
	Note         string         `json:"note" gorm:"type:text;default:null"`
	LinkedEntity string         `json:"linkedEntity" gorm:"default:null"` // "rfi" or "task"
	LinkedID     *string        `json:"linkedId" gorm:"type:uuid;default:null"`
	CreatedBy    string         `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (p *DrawingPin) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
