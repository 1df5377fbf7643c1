package commission

import (
	"context"

	"github.com/cartrade/backend/internal/domain/commission"
	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/cartrade/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the repositories
// the period close and payout touch. The close writes the period flag
// and every trader summary atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the commission-side
// repositories within a transaction
type TransactionalRepositories interface {
	// PeriodRepo returns the period repository scoped to the current transaction
	PeriodRepo() commission.PeriodRepository
	// SummaryRepo returns the summary repository scoped to the current transaction
	SummaryRepo() commission.SummaryRepository
	// TierRepo returns the tier repository scoped to the current transaction
	TierRepo() commission.TierRepository
	// PayoutRepo returns the payout repository scoped to the current transaction
	PayoutRepo() commission.PayoutRepository
	// SaleRepo returns the sale repository scoped to the current transaction
	SaleRepo() sales.SaleRepository
	// UserRepo returns the user repository scoped to the current transaction
	UserRepo() identity.UserRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Used in tests.
type NoOpTransactionScope struct {
	periodRepo  commission.PeriodRepository
	summaryRepo commission.SummaryRepository
	tierRepo    commission.TierRepository
	payoutRepo  commission.PayoutRepository
	saleRepo    sales.SaleRepository
	userRepo    identity.UserRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	periodRepo commission.PeriodRepository,
	summaryRepo commission.SummaryRepository,
	tierRepo commission.TierRepository,
	payoutRepo commission.PayoutRepository,
	saleRepo sales.SaleRepository,
	userRepo identity.UserRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		periodRepo:  periodRepo,
		summaryRepo: summaryRepo,
		tierRepo:    tierRepo,
		payoutRepo:  payoutRepo,
		saleRepo:    saleRepo,
		userRepo:    userRepo,
	}
}

// Execute runs the function without transaction semantics
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PeriodRepo returns the period repository
func (s *NoOpTransactionScope) PeriodRepo() commission.PeriodRepository { return s.periodRepo }

// SummaryRepo returns the summary repository
func (s *NoOpTransactionScope) SummaryRepo() commission.SummaryRepository { return s.summaryRepo }

// TierRepo returns the tier repository
func (s *NoOpTransactionScope) TierRepo() commission.TierRepository { return s.tierRepo }

// PayoutRepo returns the payout repository
func (s *NoOpTransactionScope) PayoutRepo() commission.PayoutRepository { return s.payoutRepo }

// SaleRepo returns the sale repository
func (s *NoOpTransactionScope) SaleRepo() sales.SaleRepository { return s.saleRepo }

// UserRepo returns the user repository
func (s *NoOpTransactionScope) UserRepo() identity.UserRepository { return s.userRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
