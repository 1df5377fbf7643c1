package partner

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindDuplicate finds an active customer with the same name
	// (case-insensitive) or the same phone, excluding the given ID.
	// Returns nil when no duplicate exists.
	FindDuplicate(ctx context.Context, name, phone string, excludeID uuid.UUID) (*Customer, error)

	// FindAll returns customers, optionally restricted to active ones
	FindAll(ctx context.Context, activeOnly bool) ([]Customer, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error
}
