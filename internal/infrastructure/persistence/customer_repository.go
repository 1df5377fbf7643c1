package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/cartrade/backend/internal/domain/partner"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/cartrade/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindDuplicate finds an active customer with the same name
// (case-insensitive) or the same phone, excluding the given ID.
// Returns nil when no duplicate exists.
func (r *GormCustomerRepository) FindDuplicate(ctx context.Context, name, phone string, excludeID uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("LOWER(name) = ? OR phone = ?", strings.ToLower(name), phone)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns customers ordered by name
func (r *GormCustomerRepository) FindAll(ctx context.Context, activeOnly bool) ([]partner.Customer, error) {
	query := r.db.WithContext(ctx).Model(&models.CustomerModel{}).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var customerModels []models.CustomerModel
	if err := query.Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]partner.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
