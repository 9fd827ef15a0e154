package repositories

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sitebeam/database"
	"github.com/sitebeam/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvoiceRepository handles database operations for invoices, lines,
// counters and number reservations
type InvoiceRepository struct{}

// NewInvoiceRepository creates a new invoice repository instance
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{}
}

// FindByID retrieves an invoice with its lines
func (r *InvoiceRepository) FindByID(orgID, id string) (models.Invoice, error) {
	var invoice models.Invoice
	result := database.DB.Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).First(&invoice, "org_id = ? AND id = ?", orgID, id)
	return invoice, result.Error
}

// Create inserts an invoice and its lines in one transaction
func (r *InvoiceRepository) Create(invoice models.Invoice) (models.Invoice, error) {
	result := database.DB.Create(&invoice)
	return invoice, result.Error
}

// Update saves invoice fields and replaces its lines in one transaction
func (r *InvoiceRepository) Update(invoice models.Invoice, replaceLines bool) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if replaceLines {
			if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceLine{}).Error; err != nil {
				return err
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: replaceLines}).Save(&invoice).Error
	})
}

// Delete soft-deletes an invoice
func (r *InvoiceRepository) Delete(orgID, id string) error {
	return database.DB.Where("org_id = ?", orgID).Delete(&models.Invoice{}, "id = ?", id).Error
}

// FindWithPagination retrieves invoices for a project with pagination and filters
func (r *InvoiceRepository) FindWithPagination(
	orgID, projectID string,
	page, pageSize int,
	sortBy, sortOrder string,
	status, search string) ([]models.Invoice, int64, error) {

	var invoices []models.Invoice
	var totalCount int64

	db := database.DB.Model(&models.Invoice{}).Where("org_id = ? AND project_id = ?", orgID, projectID)

	if status != "" {
		db = db.Where("status = ?", status)
	}

	if search != "" {
		db = db.Where("number LIKE ?", "%"+search+"%")
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).Find(&invoices).Error; err != nil {
		return nil, 0, err
	}

	return invoices, totalCount, nil
}

// NextCounterValue increments the per-org invoice counter and returns the
// taken sequence plus prefix. The counter row is locked for the duration of
// the transaction so concurrent reservations never share a sequence.
func (r *InvoiceRepository) NextCounterValue(orgID string) (string, int, error) {
	var prefix string
	var seq int
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var counter models.InvoiceCounter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&counter, "org_id = ?", orgID).Error
		if err == gorm.ErrRecordNotFound {
			counter = models.InvoiceCounter{OrgID: orgID, Prefix: "INV", NextSeq: 1}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		prefix = counter.Prefix
		seq = counter.NextSeq
		counter.NextSeq++
		return tx.Save(&counter).Error
	})
	return prefix, seq, err
}

// CreateReservation inserts a reservation row
func (r *InvoiceRepository) CreateReservation(res models.InvoiceNumberReservation) (models.InvoiceNumberReservation, error) {
	result := database.DB.Create(&res)
	return res, result.Error
}

// FindReservation retrieves a reservation by org and number
func (r *InvoiceRepository) FindReservation(orgID, number string) (models.InvoiceNumberReservation, error) {
	var res models.InvoiceNumberReservation
	result := database.DB.First(&res, "org_id = ? AND number = ?", orgID, number)
	return res, result.Error
}

// UpdateReservationStatus flips a reservation to the given status
func (r *InvoiceRepository) UpdateReservationStatus(id string, status models.ReservationStatus) error {
	return database.DB.Model(&models.InvoiceNumberReservation{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// SumAmounts totals billed/paid/outstanding across all invoices, void excluded
func (r *InvoiceRepository) SumAmounts() (billed, paid, due decimal.Decimal, err error) {
	type row struct {
		Billed decimal.Decimal
		Paid   decimal.Decimal
		Due    decimal.Decimal
	}
	var out row
	err = database.DB.Model(&models.Invoice{}).
		Select("COALESCE(SUM(total),0) as billed, COALESCE(SUM(amount_paid),0) as paid, COALESCE(SUM(balance_due),0) as due").
		Where("status <> ?", models.InvoiceStatusVoid).
		Scan(&out).Error
	return out.Billed, out.Paid, out.Due, err
}

// SumProjectAmounts totals billed and outstanding for one project
func (r *InvoiceRepository) SumProjectAmounts(projectID string) (billed, due decimal.Decimal, err error) {
	type row struct {
		Billed decimal.Decimal
		Due    decimal.Decimal
	}
	var out row
	err = database.DB.Model(&models.Invoice{}).
		Select("COALESCE(SUM(total),0) as billed, COALESCE(SUM(balance_due),0) as due").
		Where("project_id = ? AND status <> ?", projectID, models.InvoiceStatusVoid).
		Scan(&out).Error
	return out.Billed, out.Due, err
}

// Count returns the number of invoices on the platform
func (r *InvoiceRepository) Count() (int64, error) {
	var count int64
	result := database.DB.Model(&models.Invoice{}).Count(&count)
	return count, result.Error
}

// ExpireStaleReservations is available to admin tooling: reservations past
// their expiry that were never consumed or released stay visible as leaks.
func (r *InvoiceRepository) ExpireStaleReservations(before time.Time) ([]models.InvoiceNumberReservation, error) {
	var stale []models.InvoiceNumberReservation
	err := database.DB.
		Where("status = ? AND expires_at < ?", models.ReservationStatusReserved, before).
		Find(&stale).Error
	return stale, err
}
