package persistence

import (
	"context"

	appcommission "github.com/cartrade/backend/internal/application/commission"
	"github.com/cartrade/backend/internal/domain/commission"
	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/cartrade/backend/internal/domain/sales"
	"gorm.io/gorm"
)

// GormCommissionTransactionScope implements the commission
// TransactionScope using GORM transactions. A period close writes the
// period flag and every trader summary atomically; a payout writes the
// payout and the summary state together.
type GormCommissionTransactionScope struct {
	db *gorm.DB
}

// NewGormCommissionTransactionScope creates a new GormCommissionTransactionScope
func NewGormCommissionTransactionScope(db *gorm.DB) *GormCommissionTransactionScope {
	return &GormCommissionTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormCommissionTransactionScope) Execute(ctx context.Context, fn func(repos appcommission.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCommissionRepositories{tx: tx})
	})
}

// gormCommissionRepositories provides transaction-scoped commission repositories
type gormCommissionRepositories struct {
	tx *gorm.DB
}

// PeriodRepo returns the period repository scoped to the current transaction
func (r *gormCommissionRepositories) PeriodRepo() commission.PeriodRepository {
	return NewGormCommissionPeriodRepository(r.tx)
}

// SummaryRepo returns the summary repository scoped to the current transaction
func (r *gormCommissionRepositories) SummaryRepo() commission.SummaryRepository {
	return NewGormCommissionSummaryRepository(r.tx)
}

// TierRepo returns the tier repository scoped to the current transaction
func (r *gormCommissionRepositories) TierRepo() commission.TierRepository {
	return NewGormCommissionTierRepository(r.tx)
}

// PayoutRepo returns the payout repository scoped to the current transaction
func (r *gormCommissionRepositories) PayoutRepo() commission.PayoutRepository {
	return NewGormCommissionPayoutRepository(r.tx)
}

// SaleRepo returns the sale repository scoped to the current transaction
func (r *gormCommissionRepositories) SaleRepo() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

// UserRepo returns the user repository scoped to the current transaction
func (r *gormCommissionRepositories) UserRepo() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

var _ appcommission.TransactionScope = (*GormCommissionTransactionScope)(nil)
var _ appcommission.TransactionalRepositories = (*gormCommissionRepositories)(nil)
