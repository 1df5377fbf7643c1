package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// FindByID finds a sale by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindByNumber finds a sale by its unique sale number
	FindByNumber(ctx context.Context, saleNumber string) (*Sale, error)

	// FindByVehicle finds the sale referencing a vehicle, if any
	FindByVehicle(ctx context.Context, vehicleID uuid.UUID) (*Sale, error)

	// FindFinalizedByTraderAndMonth finds a trader's finalized sales
	// whose sale date falls inside the given calendar month
	FindFinalizedByTraderAndMonth(ctx context.Context, traderID uuid.UUID, year int, month time.Month) ([]Sale, error)

	// NextSaleNumber allocates the next VTE-YYYYMMDD-NNN number for the
	// given date. Must be called inside the saving transaction.
	NextSaleNumber(ctx context.Context, date time.Time) (string, error)

	// Save creates or updates a sale
	Save(ctx context.Context, sale *Sale) error
}

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByIDForUpdate finds an invoice by ID holding a row lock for
	// the remainder of the surrounding transaction
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByNumber finds an invoice by its unique invoice number
	FindByNumber(ctx context.Context, invoiceNumber string) (*Invoice, error)

	// FindBySale finds the invoice for a sale, if any
	FindBySale(ctx context.Context, saleID uuid.UUID) (*Invoice, error)

	// FindOverdue finds issued invoices past their due date
	FindOverdue(ctx context.Context, asOf time.Time) ([]Invoice, error)

	// NextInvoiceNumber allocates the next INV-YYYYMMDD-NNN number for
	// the given date. Must be called inside the saving transaction.
	NextInvoiceNumber(ctx context.Context, date time.Time) (string, error)

	// Save creates or updates an invoice
	Save(ctx context.Context, invoice *Invoice) error
}
