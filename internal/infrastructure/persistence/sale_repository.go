package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/cartrade/backend/internal/domain/sales"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// saleNumberPrefix is the document prefix for sale numbers
const saleNumberPrefix = "VTE"

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a sale by its unique sale number
func (r *GormSaleRepository) FindByNumber(ctx context.Context, saleNumber string) (*sales.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).First(&model, "sale_number = ?", saleNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByVehicle finds the non-cancelled sale referencing a vehicle, if any
func (r *GormSaleRepository) FindByVehicle(ctx context.Context, vehicleID uuid.UUID) (*sales.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND status <> ?", vehicleID, sales.SaleStatusCancelled).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindFinalizedByTraderAndMonth finds a trader's finalized sales whose
// sale date falls inside the given calendar month
func (r *GormSaleRepository) FindFinalizedByTraderAndMonth(ctx context.Context, traderID uuid.UUID, year int, month time.Month) ([]sales.Sale, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var saleModels []models.SaleModel
	if err := r.db.WithContext(ctx).
		Where("trader_id = ? AND status = ? AND sale_date >= ? AND sale_date < ?",
			traderID, sales.SaleStatusFinalized, monthStart, nextMonth).
		Order("sale_date ASC").
		Find(&saleModels).Error; err != nil {
		return nil, err
	}

	result := make([]sales.Sale, len(saleModels))
	for i, model := range saleModels {
		result[i] = *model.ToDomain()
	}
	return result, nil
}

// NextSaleNumber allocates the next VTE-YYYYMMDD-NNN number for the
// given date. Must be called inside the saving transaction.
func (r *GormSaleRepository) NextSaleNumber(ctx context.Context, date time.Time) (string, error) {
	return nextSequencedNumber(r.db.WithContext(ctx), "sales", "sale_number", saleNumberPrefix, date)
}

// Save creates or updates a sale
func (r *GormSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	model := models.SaleModelFromDomain(sale)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormSaleRepository implements SaleRepository
var _ sales.SaleRepository = (*GormSaleRepository)(nil)
