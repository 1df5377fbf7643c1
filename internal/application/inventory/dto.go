package inventory

import (
	"time"

	"github.com/cartrade/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterVehicleRequest carries the fields to register a vehicle
type RegisterVehicleRequest struct {
	VIN            string     `json:"vin" binding:"required,min=10"`
	Make           string     `json:"make" binding:"required"`
	Model          string     `json:"model" binding:"required"`
	Year           int        `json:"year" binding:"required"`
	Color          string     `json:"color"`
	EngineType     string     `json:"engine_type"`
	Specifications string     `json:"specifications"`
	PurchaseID     uuid.UUID  `json:"purchase_id" binding:"required"`
	CreatedBy      *uuid.UUID `json:"-"`
}

// ReserveVehicleRequest carries a reservation request
type ReserveVehicleRequest struct {
	TraderID uuid.UUID `json:"trader_id" binding:"required"`
	Days     int       `json:"days"`
}

// VehicleListFilter carries the query parameters for vehicle listing
type VehicleListFilter struct {
	Status   string `form:"status"`
	Make     string `form:"make"`
	YearFrom int    `form:"year_from"`
	YearTo   int    `form:"year_to"`
}

// VehicleResponse is the API representation of a vehicle
type VehicleResponse struct {
	ID                 uuid.UUID        `json:"id"`
	VIN                string           `json:"vin"`
	Make               string           `json:"make"`
	Model              string           `json:"model"`
	Year               int              `json:"year"`
	Color              string           `json:"color"`
	EngineType         string           `json:"engine_type"`
	PurchaseID         uuid.UUID        `json:"purchase_id"`
	Status             string           `json:"status"`
	LandedCostDZD      *decimal.Decimal `json:"landed_cost_dzd,omitempty"`
	ReservedBy         *uuid.UUID       `json:"reserved_by,omitempty"`
	ReservationExpires *time.Time       `json:"reservation_expires,omitempty"`
	DaysInStock        int              `json:"days_in_stock"`
	IsSlowMoving       bool             `json:"is_slow_moving"`
	CreatedAt          time.Time        `json:"created_at"`
}

// ToVehicleResponse converts a vehicle aggregate to its response.
// landedCost is optional; listings skip the purchase-chain lookup.
func ToVehicleResponse(v *inventory.Vehicle, landedCost *decimal.Decimal) *VehicleResponse {
	return &VehicleResponse{
		ID:                 v.ID,
		VIN:                v.VIN,
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		Color:              v.Color,
		EngineType:         v.EngineType,
		PurchaseID:         v.PurchaseID,
		Status:             string(v.Status),
		LandedCostDZD:      landedCost,
		ReservedBy:         v.ReservedBy,
		ReservationExpires: v.ReservationExpires,
		DaysInStock:        v.DaysInStock(),
		IsSlowMoving:       v.IsSlowMoving(),
		CreatedAt:          v.CreatedAt,
	}
}
