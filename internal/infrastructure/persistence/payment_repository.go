package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/cartrade/backend/internal/domain/payment"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// paymentNumberPrefix is the document prefix for payment numbers
const paymentNumberPrefix = "PAY"

// GormPaymentRepository implements payment.Repository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a payment by its unique payment number
func (r *GormPaymentRepository) FindByNumber(ctx context.Context, paymentNumber string) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, "payment_number = ?", paymentNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByInvoice finds all payments recorded against an invoice,
// oldest first
func (r *GormPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("payment_date ASC, payment_number ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]payment.Payment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// SumConfirmedByInvoice returns the sum of confirmed payment amounts
// for an invoice
func (r *GormPaymentRepository) SumConfirmedByInvoice(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentModel{}).
		Select("SUM(amount_dzd)").
		Where("invoice_id = ? AND confirmed = ?", invoiceID, true).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// NextPaymentNumber allocates the next PAY-YYYYMMDD-NNN number for the
// given date. Must be called inside the saving transaction.
func (r *GormPaymentRepository) NextPaymentNumber(ctx context.Context, date time.Time) (string, error) {
	return nextSequencedNumber(r.db.WithContext(ctx), "payments", "payment_number", paymentNumberPrefix, date)
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	model := models.PaymentModelFromDomain(p)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormPaymentRepository implements payment.Repository
var _ payment.Repository = (*GormPaymentRepository)(nil)
