package persistence

import (
	"context"
	"errors"

	"github.com/cartrade/backend/internal/domain/purchasing"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPurchaseRepository implements PurchaseRepository using GORM.
// The freight and customs cost segments are saved and loaded with the
// aggregate root.
type GormPurchaseRepository struct {
	db *gorm.DB
}

// NewGormPurchaseRepository creates a new GormPurchaseRepository
func NewGormPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

// FindByID finds a purchase with its cost segments
func (r *GormPurchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.Purchase, error) {
	var model models.PurchaseModel
	if err := r.db.WithContext(ctx).
		Preload("Freight").
		Preload("Customs").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySupplier finds all purchases from a supplier, newest first
func (r *GormPurchaseRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]purchasing.Purchase, error) {
	var purchaseModels []models.PurchaseModel
	if err := r.db.WithContext(ctx).
		Preload("Freight").
		Preload("Customs").
		Where("supplier_id = ?", supplierID).
		Order("purchase_date DESC").
		Find(&purchaseModels).Error; err != nil {
		return nil, err
	}

	purchases := make([]purchasing.Purchase, len(purchaseModels))
	for i, model := range purchaseModels {
		purchases[i] = *model.ToDomain()
	}
	return purchases, nil
}

// FindByDeclarationNumber finds the purchase owning a customs declaration
func (r *GormPurchaseRepository) FindByDeclarationNumber(ctx context.Context, declarationNumber string) (*purchasing.Purchase, error) {
	var customs models.CustomsDeclarationModel
	if err := r.db.WithContext(ctx).
		First(&customs, "declaration_number = ?", declarationNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return r.FindByID(ctx, customs.PurchaseID)
}

// Save creates or updates a purchase with its cost segments. The root
// row and the child rows are written in one transaction.
func (r *GormPurchaseRepository) Save(ctx context.Context, purchase *purchasing.Purchase) error {
	model := models.PurchaseModelFromDomain(purchase)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return err
		}
		if model.Freight != nil {
			if err := tx.Save(model.Freight).Error; err != nil {
				return err
			}
		}
		if model.Customs != nil {
			if err := tx.Save(model.Customs).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a purchase and its cost segments
func (r *GormPurchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.FreightCostModel{}, "purchase_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.CustomsDeclarationModel{}, "purchase_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PurchaseModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormPurchaseRepository implements PurchaseRepository
var _ purchasing.PurchaseRepository = (*GormPurchaseRepository)(nil)
