package sales

import (
	"context"

	"github.com/cartrade/backend/internal/domain/inventory"
	"github.com/cartrade/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the repositories a
// sale mutation touches. Number allocation, the sale write and the
// vehicle status change commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the sales-side
// repositories within a transaction
type TransactionalRepositories interface {
	// SaleRepo returns the sale repository scoped to the current transaction
	SaleRepo() sales.SaleRepository
	// InvoiceRepo returns the invoice repository scoped to the current transaction
	InvoiceRepo() sales.InvoiceRepository
	// VehicleRepo returns the vehicle repository scoped to the current transaction
	VehicleRepo() inventory.VehicleRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Used in tests.
type NoOpTransactionScope struct {
	saleRepo    sales.SaleRepository
	invoiceRepo sales.InvoiceRepository
	vehicleRepo inventory.VehicleRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	saleRepo sales.SaleRepository,
	invoiceRepo sales.InvoiceRepository,
	vehicleRepo inventory.VehicleRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		saleRepo:    saleRepo,
		invoiceRepo: invoiceRepo,
		vehicleRepo: vehicleRepo,
	}
}

// Execute runs the function without transaction semantics
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// SaleRepo returns the sale repository
func (s *NoOpTransactionScope) SaleRepo() sales.SaleRepository { return s.saleRepo }

// InvoiceRepo returns the invoice repository
func (s *NoOpTransactionScope) InvoiceRepo() sales.InvoiceRepository { return s.invoiceRepo }

// VehicleRepo returns the vehicle repository
func (s *NoOpTransactionScope) VehicleRepo() inventory.VehicleRepository { return s.vehicleRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
