package inventory

import (
	"context"

	"github.com/google/uuid"
)

// VehicleFilter defines filtering options for vehicle queries
type VehicleFilter struct {
	Status     *VehicleStatus
	Make       *string
	YearFrom   *int
	YearTo     *int
	PurchaseID *uuid.UUID
}

// VehicleRepository defines the interface for vehicle persistence
type VehicleRepository interface {
	// FindByID finds a vehicle by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)

	// FindByVIN finds a vehicle by its unique VIN/chassis number
	FindByVIN(ctx context.Context, vin string) (*Vehicle, error)

	// FindAll finds vehicles matching the filter
	FindAll(ctx context.Context, filter VehicleFilter) ([]Vehicle, error)

	// FindExpiredReservations finds reserved vehicles whose hold has lapsed
	FindExpiredReservations(ctx context.Context) ([]Vehicle, error)

	// CountByPurchase counts vehicles referencing a purchase
	CountByPurchase(ctx context.Context, purchaseID uuid.UUID) (int64, error)

	// Save creates or updates a vehicle
	Save(ctx context.Context, vehicle *Vehicle) error
}
