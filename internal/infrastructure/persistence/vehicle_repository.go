package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/cartrade/backend/internal/domain/inventory"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// FindByID finds a vehicle by its ID
func (r *GormVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Vehicle, error) {
	var model models.VehicleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByVIN finds a vehicle by its unique VIN/chassis number
func (r *GormVehicleRepository) FindByVIN(ctx context.Context, vin string) (*inventory.Vehicle, error) {
	var model models.VehicleModel
	if err := r.db.WithContext(ctx).First(&model, "vin = ?", vin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds vehicles matching the filter, newest first
func (r *GormVehicleRepository) FindAll(ctx context.Context, filter inventory.VehicleFilter) ([]inventory.Vehicle, error) {
	query := r.db.WithContext(ctx).Model(&models.VehicleModel{}).Order("created_at DESC")

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Make != nil {
		query = query.Where("make = ?", *filter.Make)
	}
	if filter.YearFrom != nil {
		query = query.Where("year >= ?", *filter.YearFrom)
	}
	if filter.YearTo != nil {
		query = query.Where("year <= ?", *filter.YearTo)
	}
	if filter.PurchaseID != nil {
		query = query.Where("purchase_id = ?", *filter.PurchaseID)
	}

	var vehicleModels []models.VehicleModel
	if err := query.Find(&vehicleModels).Error; err != nil {
		return nil, err
	}

	vehicles := make([]inventory.Vehicle, len(vehicleModels))
	for i, model := range vehicleModels {
		vehicles[i] = *model.ToDomain()
	}
	return vehicles, nil
}

// FindExpiredReservations finds reserved vehicles whose hold has lapsed
func (r *GormVehicleRepository) FindExpiredReservations(ctx context.Context) ([]inventory.Vehicle, error) {
	var vehicleModels []models.VehicleModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND reservation_expires < ?", inventory.VehicleStatusReserved, time.Now()).
		Find(&vehicleModels).Error; err != nil {
		return nil, err
	}

	vehicles := make([]inventory.Vehicle, len(vehicleModels))
	for i, model := range vehicleModels {
		vehicles[i] = *model.ToDomain()
	}
	return vehicles, nil
}

// CountByPurchase counts vehicles referencing a purchase
func (r *GormVehicleRepository) CountByPurchase(ctx context.Context, purchaseID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.VehicleModel{}).
		Where("purchase_id = ?", purchaseID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a vehicle
func (r *GormVehicleRepository) Save(ctx context.Context, vehicle *inventory.Vehicle) error {
	model := models.VehicleModelFromDomain(vehicle)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormVehicleRepository implements VehicleRepository
var _ inventory.VehicleRepository = (*GormVehicleRepository)(nil)
