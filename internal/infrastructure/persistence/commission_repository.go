package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/cartrade/backend/internal/domain/commission"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCommissionTierRepository implements TierRepository using GORM
type GormCommissionTierRepository struct {
	db *gorm.DB
}

// NewGormCommissionTierRepository creates a new GormCommissionTierRepository
func NewGormCommissionTierRepository(db *gorm.DB) *GormCommissionTierRepository {
	return &GormCommissionTierRepository{db: db}
}

// FindByID finds a tier by its ID
func (r *GormCommissionTierRepository) FindByID(ctx context.Context, id uuid.UUID) (*commission.Tier, error) {
	var model models.CommissionTierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActive returns active tiers ordered ascending by minimum
func (r *GormCommissionTierRepository) FindActive(ctx context.Context) ([]commission.Tier, error) {
	var tierModels []models.CommissionTierModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("min_sales_count ASC").
		Find(&tierModels).Error; err != nil {
		return nil, err
	}

	tiers := make([]commission.Tier, len(tierModels))
	for i, model := range tierModels {
		tiers[i] = *model.ToDomain()
	}
	return tiers, nil
}

// Save creates or updates a tier
func (r *GormCommissionTierRepository) Save(ctx context.Context, tier *commission.Tier) error {
	model := models.CommissionTierModelFromDomain(tier)
	return r.db.WithContext(ctx).Save(model).Error
}

// GormCommissionPeriodRepository implements PeriodRepository using GORM
type GormCommissionPeriodRepository struct {
	db *gorm.DB
}

// NewGormCommissionPeriodRepository creates a new GormCommissionPeriodRepository
func NewGormCommissionPeriodRepository(db *gorm.DB) *GormCommissionPeriodRepository {
	return &GormCommissionPeriodRepository{db: db}
}

// FindByID finds a period by its ID
func (r *GormCommissionPeriodRepository) FindByID(ctx context.Context, id uuid.UUID) (*commission.Period, error) {
	var model models.CommissionPeriodModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByYearMonth finds the period for (year, month)
func (r *GormCommissionPeriodRepository) FindByYearMonth(ctx context.Context, year int, month time.Month) (*commission.Period, error) {
	var model models.CommissionPeriodModel
	if err := r.db.WithContext(ctx).
		Where("year = ? AND month = ?", year, int(month)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a period by ID holding a row lock for the
// remainder of the surrounding transaction. Two concurrent closes of
// the same month serialize here; the loser then sees IsClosed and is
// rejected.
func (r *GormCommissionPeriodRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*commission.Period, error) {
	var model models.CommissionPeriodModel
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

// Save creates or updates a period
func (r *GormCommissionPeriodRepository) Save(ctx context.Context, period *commission.Period) error {
	model := models.CommissionPeriodModelFromDomain(period)
	return r.db.WithContext(ctx).Save(model).Error
}

// GormCommissionSummaryRepository implements SummaryRepository using GORM
type GormCommissionSummaryRepository struct {
	db *gorm.DB
}

// NewGormCommissionSummaryRepository creates a new GormCommissionSummaryRepository
func NewGormCommissionSummaryRepository(db *gorm.DB) *GormCommissionSummaryRepository {
	return &GormCommissionSummaryRepository{db: db}
}

// FindByID finds a summary by its ID
func (r *GormCommissionSummaryRepository) FindByID(ctx context.Context, id uuid.UUID) (*commission.Summary, error) {
	var model models.CommissionSummaryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTraderAndPeriod finds the unique summary for (trader, period)
func (r *GormCommissionSummaryRepository) FindByTraderAndPeriod(ctx context.Context, traderID, periodID uuid.UUID) (*commission.Summary, error) {
	var model models.CommissionSummaryModel
	if err := r.db.WithContext(ctx).
		Where("trader_id = ? AND period_id = ?", traderID, periodID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPeriod finds all summaries for a period
func (r *GormCommissionSummaryRepository) FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]commission.Summary, error) {
	var summaryModels []models.CommissionSummaryModel
	if err := r.db.WithContext(ctx).
		Where("period_id = ?", periodID).
		Order("total_commission_dzd DESC").
		Find(&summaryModels).Error; err != nil {
		return nil, err
	}

	summaries := make([]commission.Summary, len(summaryModels))
	for i, model := range summaryModels {
		summaries[i] = *model.ToDomain()
	}
	return summaries, nil
}

// Save creates or updates a summary
func (r *GormCommissionSummaryRepository) Save(ctx context.Context, summary *commission.Summary) error {
	model := models.CommissionSummaryModelFromDomain(summary)
	return r.db.WithContext(ctx).Save(model).Error
}

// GormCommissionPayoutRepository implements PayoutRepository using GORM
type GormCommissionPayoutRepository struct {
	db *gorm.DB
}

// NewGormCommissionPayoutRepository creates a new GormCommissionPayoutRepository
func NewGormCommissionPayoutRepository(db *gorm.DB) *GormCommissionPayoutRepository {
	return &GormCommissionPayoutRepository{db: db}
}

// FindByID finds a payout by its ID
func (r *GormCommissionPayoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*commission.Payout, error) {
	var model models.CommissionPayoutModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySummary finds the payout for a summary, if any
func (r *GormCommissionPayoutRepository) FindBySummary(ctx context.Context, summaryID uuid.UUID) (*commission.Payout, error) {
	var model models.CommissionPayoutModel
	if err := r.db.WithContext(ctx).First(&model, "summary_id = ?", summaryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates a payout
func (r *GormCommissionPayoutRepository) Save(ctx context.Context, payout *commission.Payout) error {
	model := models.CommissionPayoutModelFromDomain(payout)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure the commission repositories implement their interfaces
var _ commission.TierRepository = (*GormCommissionTierRepository)(nil)
var _ commission.PeriodRepository = (*GormCommissionPeriodRepository)(nil)
var _ commission.SummaryRepository = (*GormCommissionSummaryRepository)(nil)
var _ commission.PayoutRepository = (*GormCommissionPayoutRepository)(nil)
