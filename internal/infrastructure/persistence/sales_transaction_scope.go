package persistence

import (
	"context"

	appsales "github.com/cartrade/backend/internal/application/sales"
	"github.com/cartrade/backend/internal/domain/inventory"
	"github.com/cartrade/backend/internal/domain/sales"
	"gorm.io/gorm"
)

// GormSalesTransactionScope implements the sales TransactionScope using
// GORM transactions. Number allocation, the sale write and the vehicle
// status change commit or roll back together.
type GormSalesTransactionScope struct {
	db *gorm.DB
}

// NewGormSalesTransactionScope creates a new GormSalesTransactionScope
func NewGormSalesTransactionScope(db *gorm.DB) *GormSalesTransactionScope {
	return &GormSalesTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormSalesTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSalesRepositories{tx: tx})
	})
}

// gormSalesRepositories provides transaction-scoped sales repositories
type gormSalesRepositories struct {
	tx *gorm.DB
}

// SaleRepo returns the sale repository scoped to the current transaction
func (r *gormSalesRepositories) SaleRepo() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

// InvoiceRepo returns the invoice repository scoped to the current transaction
func (r *gormSalesRepositories) InvoiceRepo() sales.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

// VehicleRepo returns the vehicle repository scoped to the current transaction
func (r *gormSalesRepositories) VehicleRepo() inventory.VehicleRepository {
	return NewGormVehicleRepository(r.tx)
}

var _ appsales.TransactionScope = (*GormSalesTransactionScope)(nil)
var _ appsales.TransactionalRepositories = (*gormSalesRepositories)(nil)
