package inventory

import (
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Event types for the inventory bounded context
const (
	EventTypeVehicleRegistered = "inventory.vehicle.registered"
	EventTypeVehicleReserved   = "inventory.vehicle.reserved"
	EventTypeVehicleSold       = "inventory.vehicle.sold"
)

// VehicleRegisteredEvent is raised when a vehicle enters the inventory
type VehicleRegisteredEvent struct {
	shared.BaseDomainEvent
	VIN        string `json:"vin"`
	PurchaseID string `json:"purchase_id"`
}

// NewVehicleRegisteredEvent creates a new VehicleRegisteredEvent
func NewVehicleRegisteredEvent(v *Vehicle) *VehicleRegisteredEvent {
	return &VehicleRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVehicleRegistered, "Vehicle", v.ID),
		VIN:             v.VIN,
		PurchaseID:      v.PurchaseID.String(),
	}
}

// VehicleReservedEvent is raised when a trader reserves a vehicle
type VehicleReservedEvent struct {
	shared.BaseDomainEvent
	VIN      string    `json:"vin"`
	TraderID uuid.UUID `json:"trader_id"`
}

// NewVehicleReservedEvent creates a new VehicleReservedEvent
func NewVehicleReservedEvent(v *Vehicle, traderID uuid.UUID) *VehicleReservedEvent {
	return &VehicleReservedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVehicleReserved, "Vehicle", v.ID),
		VIN:             v.VIN,
		TraderID:        traderID,
	}
}

// VehicleSoldEvent is raised when a vehicle is marked sold
type VehicleSoldEvent struct {
	shared.BaseDomainEvent
	VIN string `json:"vin"`
}

// NewVehicleSoldEvent creates a new VehicleSoldEvent
func NewVehicleSoldEvent(v *Vehicle) *VehicleSoldEvent {
	return &VehicleSoldEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVehicleSold, "Vehicle", v.ID),
		VIN:             v.VIN,
	}
}
