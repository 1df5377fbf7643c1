package payment

import (
	"context"

	"github.com/cartrade/backend/internal/domain/payment"
	"github.com/cartrade/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the payment and
// invoice repositories. A payment write, the invoice balance
// recompute and the payment-number allocation commit or roll back
// together; the invoice row stays locked for the duration.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories
// within a transaction
type TransactionalRepositories interface {
	// PaymentRepo returns the payment repository scoped to the current transaction
	PaymentRepo() payment.Repository
	// InvoiceRepo returns the invoice repository scoped to the current transaction
	InvoiceRepo() sales.InvoiceRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Used in tests.
type NoOpTransactionScope struct {
	paymentRepo payment.Repository
	invoiceRepo sales.InvoiceRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(paymentRepo payment.Repository, invoiceRepo sales.InvoiceRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{paymentRepo: paymentRepo, invoiceRepo: invoiceRepo}
}

// Execute runs the function without transaction semantics
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PaymentRepo returns the payment repository
func (s *NoOpTransactionScope) PaymentRepo() payment.Repository { return s.paymentRepo }

// InvoiceRepo returns the invoice repository
func (s *NoOpTransactionScope) InvoiceRepo() sales.InvoiceRepository { return s.invoiceRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
