package persistence

import (
	"context"
	"errors"

	"github.com/cartrade/backend/internal/domain/purchasing"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a supplier by its unique name
func (r *GormSupplierRepository) FindByName(ctx context.Context, name string) (*purchasing.Supplier, error) {
	var model models.SupplierModel
	if err := r.db.WithContext(ctx).First(&model, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all suppliers ordered by name
func (r *GormSupplierRepository) FindAll(ctx context.Context, activeOnly bool) ([]purchasing.Supplier, error) {
	query := r.db.WithContext(ctx).Model(&models.SupplierModel{}).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var supplierModels []models.SupplierModel
	if err := query.Find(&supplierModels).Error; err != nil {
		return nil, err
	}

	suppliers := make([]purchasing.Supplier, len(supplierModels))
	for i, model := range supplierModels {
		suppliers[i] = *model.ToDomain()
	}
	return suppliers, nil
}

// Save creates or updates a supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *purchasing.Supplier) error {
	model := models.SupplierModelFromDomain(supplier)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormSupplierRepository implements SupplierRepository
var _ purchasing.SupplierRepository = (*GormSupplierRepository)(nil)
