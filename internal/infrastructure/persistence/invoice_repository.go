package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/cartrade/backend/internal/domain/sales"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// invoiceNumberPrefix is the document prefix for invoice numbers
const invoiceNumberPrefix = "INV"

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByID finds an invoice by its ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds an invoice by ID holding a row lock for the
// remainder of the surrounding transaction
func (r *GormInvoiceRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*sales.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds an invoice by its unique invoice number
func (r *GormInvoiceRepository) FindByNumber(ctx context.Context, invoiceNumber string) (*sales.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "invoice_number = ?", invoiceNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySale finds the invoice for a sale, if any
func (r *GormInvoiceRepository) FindBySale(ctx context.Context, saleID uuid.UUID) (*sales.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "sale_id = ?", saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindOverdue finds issued invoices past their due date, oldest first
func (r *GormInvoiceRepository) FindOverdue(ctx context.Context, asOf time.Time) ([]sales.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND balance_due > 0 AND due_date < ?", sales.InvoiceStatusIssued, asOf).
		Order("due_date ASC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]sales.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// NextInvoiceNumber allocates the next INV-YYYYMMDD-NNN number for the
// given date. Must be called inside the saving transaction.
func (r *GormInvoiceRepository) NextInvoiceNumber(ctx context.Context, date time.Time) (string, error) {
	return nextSequencedNumber(r.db.WithContext(ctx), "invoices", "invoice_number", invoiceNumberPrefix, date)
}

// Save creates or updates an invoice
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *sales.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ sales.InvoiceRepository = (*GormInvoiceRepository)(nil)
