package purchasing

import (
	"context"

	"github.com/google/uuid"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)

	// FindByName finds a supplier by its unique name
	FindByName(ctx context.Context, name string) (*Supplier, error)

	// FindAll returns all suppliers, optionally restricted to active ones
	FindAll(ctx context.Context, activeOnly bool) ([]Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error
}

// PurchaseRepository defines the interface for purchase persistence.
// The freight and customs child entities are loaded and saved together
// with the aggregate root.
type PurchaseRepository interface {
	// FindByID finds a purchase with its cost segments
	FindByID(ctx context.Context, id uuid.UUID) (*Purchase, error)

	// FindBySupplier finds all purchases from a supplier
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]Purchase, error)

	// FindByDeclarationNumber finds the purchase owning a customs declaration
	FindByDeclarationNumber(ctx context.Context, declarationNumber string) (*Purchase, error)

	// Save creates or updates a purchase with its cost segments
	Save(ctx context.Context, purchase *Purchase) error

	// Delete removes a purchase. Deletion is refused with
	// shared.ErrProtectedReference while a vehicle references it.
	Delete(ctx context.Context, id uuid.UUID) error
}
