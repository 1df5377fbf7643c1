package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository defines the interface for payment persistence
type Repository interface {
	// FindByID finds a payment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByNumber finds a payment by its unique payment number
	FindByNumber(ctx context.Context, paymentNumber string) (*Payment, error)

	// FindByInvoice finds all payments recorded against an invoice
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error)

	// SumConfirmedByInvoice returns the sum of confirmed payment
	// amounts for an invoice
	SumConfirmedByInvoice(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)

	// NextPaymentNumber allocates the next PAY-YYYYMMDD-NNN number for
	// the given date. Must be called inside the saving transaction.
	NextPaymentNumber(ctx context.Context, date time.Time) (string, error)

	// Save creates or updates a payment
	Save(ctx context.Context, payment *Payment) error
}
