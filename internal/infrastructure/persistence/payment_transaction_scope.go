package persistence

import (
	"context"

	apppayment "github.com/cartrade/backend/internal/application/payment"
	"github.com/cartrade/backend/internal/domain/payment"
	"github.com/cartrade/backend/internal/domain/sales"
	"gorm.io/gorm"
)

// GormPaymentTransactionScope implements the payment TransactionScope
// using GORM transactions. The payment write, the number allocation
// and the invoice balance recompute commit or roll back together; the
// invoice row stays locked for the duration.
type GormPaymentTransactionScope struct {
	db *gorm.DB
}

// NewGormPaymentTransactionScope creates a new GormPaymentTransactionScope
func NewGormPaymentTransactionScope(db *gorm.DB) *GormPaymentTransactionScope {
	return &GormPaymentTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormPaymentTransactionScope) Execute(ctx context.Context, fn func(repos apppayment.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPaymentRepositories{tx: tx})
	})
}

// gormPaymentRepositories provides transaction-scoped payment repositories
type gormPaymentRepositories struct {
	tx *gorm.DB
}

// PaymentRepo returns the payment repository scoped to the current transaction
func (r *gormPaymentRepositories) PaymentRepo() payment.Repository {
	return NewGormPaymentRepository(r.tx)
}

// InvoiceRepo returns the invoice repository scoped to the current transaction
func (r *gormPaymentRepositories) InvoiceRepo() sales.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

var _ apppayment.TransactionScope = (*GormPaymentTransactionScope)(nil)
var _ apppayment.TransactionalRepositories = (*gormPaymentRepositories)(nil)
