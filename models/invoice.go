package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceStatus represents the billing lifecycle of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
	InvoiceStatusVoid  InvoiceStatus = "void"
)

// Invoice represents a project-scoped invoice with stored totals.
// Totals are recomputed from lines on every write; balance_due = total - amount_paid.
type Invoice struct {
	ID         string          `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID      string          `json:"orgId" gorm:"type:uuid;not null;index"`
	ProjectID  string          `json:"projectId" gorm:"type:uuid;not null;index"`
	Number     string          `json:"number" gorm:"not null;index"`
	Status     InvoiceStatus   `json:"status" gorm:"type:varchar(10);not null;default:'draft'"`
	IssueDate  *time.Time      `json:"issueDate" gorm:"default:null"`
	DueDate    *time.Time      `json:"dueDate" gorm:"default:null"`
	TaxRate    decimal.Decimal `json:"taxRate" gorm:"type:numeric(6,4);not null"` // e.g. 0.0825
	Subtotal   decimal.Decimal `json:"subtotal" gorm:"type:numeric(14,2);not null"`
	Tax        decimal.Decimal `json:"tax" gorm:"type:numeric(14,2);not null"`
	Total      decimal.Decimal `json:"total" gorm:"type:numeric(14,2);not null"`
	AmountPaid decimal.Decimal `json:"amountPaid" gorm:"type:numeric(14,2);not null"`
	BalanceDue decimal.Decimal `json:"balanceDue" gorm:"type:numeric(14,2);not null"`
	Notes      string          `json:"notes" gorm:"type:text;default:null"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Lines []InvoiceLine `json:"lines,omitempty" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// InvoiceLine represents a single billed line item
type InvoiceLine struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid"`
	InvoiceID   string          `json:"invoiceId" gorm:"type:uuid;not null;index"`
	Position    int             `json:"position" gorm:"not null"`
	Description string          `json:"description" gorm:"not null"`
	Quantity    decimal.Decimal `json:"quantity" gorm:"type:numeric(12,3);not null"`
	UnitPrice   decimal.Decimal `json:"unitPrice" gorm:"type:numeric(14,2);not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(14,2);not null"` // quantity * unit price
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (l *InvoiceLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// InvoiceCounter backs draft-number reservation, one row per org
type InvoiceCounter struct {
	OrgID     string    `json:"orgId" gorm:"primaryKey;type:uuid"`
	Prefix    string    `json:"prefix" gorm:"not null;default:'INV'"`
	NextSeq   int       `json:"nextSeq" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationStatus represents the state of a reserved invoice number
type ReservationStatus string

const (
	ReservationStatusReserved ReservationStatus = "reserved"
	ReservationStatusReleased ReservationStatus = "released"
	ReservationStatusConsumed ReservationStatus = "consumed"
)

// InvoiceNumberReservation is a reserve-then-commit-or-release record.
// Nothing ties the reservation transactionally to the eventual invoice row;
// a crash between the two leaks the number, which only costs a gap in a
// user-facing sequence.
type InvoiceNumberReservation struct {
	ID        string            `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID     string            `json:"orgId" gorm:"type:uuid;not null;index"`
	Number    string            `json:"number" gorm:"not null;index"`
	Status    ReservationStatus `json:"status" gorm:"type:varchar(10);not null;default:'reserved'"`
	ExpiresAt time.Time         `json:"expiresAt" gorm:"not null"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func (r *InvoiceNumberReservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
