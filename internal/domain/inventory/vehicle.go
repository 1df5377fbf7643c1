package inventory

import (
	"fmt"
	"time"

	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// VehicleStatus represents where a vehicle is in its import lifecycle
type VehicleStatus string

const (
	VehicleStatusInTransit VehicleStatus = "in_transit"
	VehicleStatusAtCustoms VehicleStatus = "at_customs"
	VehicleStatusAvailable VehicleStatus = "available"
	VehicleStatusReserved  VehicleStatus = "reserved"
	VehicleStatusSold      VehicleStatus = "sold"
)

// IsValid checks if the status is a valid VehicleStatus
func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleStatusInTransit, VehicleStatusAtCustoms, VehicleStatusAvailable,
		VehicleStatusReserved, VehicleStatusSold:
		return true
	}
	return false
}

// String returns the string representation of VehicleStatus
func (s VehicleStatus) String() string {
	return string(s)
}

// IsSellable returns true if a sale can be opened against this status
func (s VehicleStatus) IsSellable() bool {
	return s == VehicleStatusAvailable || s == VehicleStatusReserved
}

// MinVINLength is the minimum accepted VIN/chassis length
const MinVINLength = 10

// MinVehicleYear is the oldest model year the company imports
const MinVehicleYear = 2000

// DefaultReservationDays is how long a reservation holds a vehicle
const DefaultReservationDays = 7

// SlowMovingThresholdDays is the stock age after which an available
// vehicle is flagged as slow moving
const SlowMovingThresholdDays = 90

// Vehicle represents a vehicle in stock. It references exactly one
// purchase, from which its landed cost is derived.
type Vehicle struct {
	shared.AuditedAggregateRoot
	VIN                string        `json:"vin"`
	Make               string        `json:"make"`
	Model              string        `json:"model"`
	Year               int           `json:"year"`
	Color              string        `json:"color"`
	EngineType         string        `json:"engine_type"`
	Specifications     string        `json:"specifications"`
	PurchaseID         uuid.UUID     `json:"purchase_id"`
	Status             VehicleStatus `json:"status"`
	ReservedBy         *uuid.UUID    `json:"reserved_by,omitempty"`
	ReservationDate    *time.Time    `json:"reservation_date,omitempty"`
	ReservationExpires *time.Time    `json:"reservation_expires,omitempty"`
}

// NewVehicle registers a vehicle against a purchase.
// New vehicles start in transit.
func NewVehicle(vin, make, model string, year int, color string, purchaseID uuid.UUID) (*Vehicle, error) {
	if len(vin) < MinVINLength {
		return nil, shared.NewDomainError("INVALID_VIN", fmt.Sprintf("VIN/chassis must contain at least %d characters", MinVINLength))
	}
	if make == "" {
		return nil, shared.NewDomainError("INVALID_MAKE", "Vehicle make cannot be empty")
	}
	if model == "" {
		return nil, shared.NewDomainError("INVALID_MODEL", "Vehicle model cannot be empty")
	}
	maxYear := time.Now().Year() + 1
	if year < MinVehicleYear || year > maxYear {
		return nil, shared.NewDomainError("INVALID_YEAR", fmt.Sprintf("Year must be between %d and %d", MinVehicleYear, maxYear))
	}
	if purchaseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PURCHASE", "Purchase ID cannot be empty")
	}

	v := &Vehicle{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		VIN:                  vin,
		Make:                 make,
		Model:                model,
		Year:                 year,
		Color:                color,
		PurchaseID:           purchaseID,
		Status:               VehicleStatusInTransit,
	}

	v.AddDomainEvent(NewVehicleRegisteredEvent(v))

	return v, nil
}

// MarkAtCustoms records arrival at the customs port
func (v *Vehicle) MarkAtCustoms() error {
	if v.Status != VehicleStatusInTransit {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot move vehicle in %s status to customs", v.Status))
	}
	v.setStatus(VehicleStatusAtCustoms)
	return nil
}

// MarkAvailable puts the vehicle on the lot after clearance
func (v *Vehicle) MarkAvailable() error {
	if v.Status != VehicleStatusInTransit && v.Status != VehicleStatusAtCustoms {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot mark vehicle in %s status as available", v.Status))
	}
	v.setStatus(VehicleStatusAvailable)
	return nil
}

// Reserve holds the vehicle for a trader. Only available vehicles can
// be reserved; the reservation expires after the given number of days.
func (v *Vehicle) Reserve(traderID uuid.UUID, days int) error {
	if v.Status != VehicleStatusAvailable {
		return shared.NewDomainError("NOT_AVAILABLE", fmt.Sprintf("Vehicle in %s status is not available for reservation", v.Status))
	}
	if traderID == uuid.Nil {
		return shared.NewDomainError("INVALID_TRADER", "Trader ID cannot be empty")
	}
	if days <= 0 {
		days = DefaultReservationDays
	}

	now := time.Now()
	expires := now.AddDate(0, 0, days)
	v.ReservedBy = &traderID
	v.ReservationDate = &now
	v.ReservationExpires = &expires
	v.setStatus(VehicleStatusReserved)

	v.AddDomainEvent(NewVehicleReservedEvent(v, traderID))

	return nil
}

// ReleaseReservation returns a reserved vehicle to available
func (v *Vehicle) ReleaseReservation() error {
	if v.Status != VehicleStatusReserved {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot release reservation on vehicle in %s status", v.Status))
	}
	v.clearReservation()
	v.setStatus(VehicleStatusAvailable)
	return nil
}

// MarkSold finalizes the vehicle as sold and clears any reservation
func (v *Vehicle) MarkSold() error {
	if !v.Status.IsSellable() {
		return shared.NewDomainError("NOT_AVAILABLE", fmt.Sprintf("Vehicle in %s status cannot be sold", v.Status))
	}
	v.clearReservation()
	v.setStatus(VehicleStatusSold)

	v.AddDomainEvent(NewVehicleSoldEvent(v))

	return nil
}

// ReservationExpired returns true if the reservation window has lapsed
func (v *Vehicle) ReservationExpired() bool {
	if v.Status != VehicleStatusReserved || v.ReservationExpires == nil {
		return false
	}
	return time.Now().After(*v.ReservationExpires)
}

// DaysInStock returns the number of days since the vehicle entered stock
func (v *Vehicle) DaysInStock() int {
	if v.Status != VehicleStatusAvailable && v.Status != VehicleStatusReserved && v.Status != VehicleStatusSold {
		return 0
	}
	return int(time.Since(v.CreatedAt).Hours() / 24)
}

// IsSlowMoving returns true if the vehicle has sat available for too long
func (v *Vehicle) IsSlowMoving() bool {
	return v.Status == VehicleStatusAvailable && v.DaysInStock() > SlowMovingThresholdDays
}

func (v *Vehicle) setStatus(status VehicleStatus) {
	v.Status = status
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

func (v *Vehicle) clearReservation() {
	v.ReservedBy = nil
	v.ReservationDate = nil
	v.ReservationExpires = nil
}
