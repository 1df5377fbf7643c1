package models

import (
	"time"

	"github.com/cartrade/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// VehicleModel is the persistence model for the Vehicle aggregate.
type VehicleModel struct {
	AuditedAggregateModel
	VIN                string                  `gorm:"type:varchar(50);not null;uniqueIndex"`
	Make               string                  `gorm:"type:varchar(100);not null;index"`
	Model              string                  `gorm:"type:varchar(100);not null"`
	Year               int                     `gorm:"not null"`
	Color              string                  `gorm:"type:varchar(50)"`
	EngineType         string                  `gorm:"type:varchar(100)"`
	Specifications     string                  `gorm:"type:text"`
	PurchaseID         uuid.UUID               `gorm:"type:uuid;not null;index"`
	Status             inventory.VehicleStatus `gorm:"type:varchar(20);not null;index"`
	ReservedBy         *uuid.UUID              `gorm:"type:uuid"`
	ReservationDate    *time.Time              ``
	ReservationExpires *time.Time              `gorm:"index"`
}

// TableName returns the table name for GORM
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToDomain converts the persistence model to a domain Vehicle.
func (m *VehicleModel) ToDomain() *inventory.Vehicle {
	return &inventory.Vehicle{
		AuditedAggregateRoot: m.ToDomainAuditedAggregateRoot(),
		VIN:                  m.VIN,
		Make:                 m.Make,
		Model:                m.Model,
		Year:                 m.Year,
		Color:                m.Color,
		EngineType:           m.EngineType,
		Specifications:       m.Specifications,
		PurchaseID:           m.PurchaseID,
		Status:               m.Status,
		ReservedBy:           m.ReservedBy,
		ReservationDate:      m.ReservationDate,
		ReservationExpires:   m.ReservationExpires,
	}
}

// FromDomain populates the persistence model from a domain Vehicle.
func (m *VehicleModel) FromDomain(v *inventory.Vehicle) {
	m.FromDomainAuditedAggregateRoot(v.AuditedAggregateRoot)
	m.VIN = v.VIN
	m.Make = v.Make
	m.Model = v.Model
	m.Year = v.Year
	m.Color = v.Color
	m.EngineType = v.EngineType
	m.Specifications = v.Specifications
	m.PurchaseID = v.PurchaseID
	m.Status = v.Status
	m.ReservedBy = v.ReservedBy
	m.ReservationDate = v.ReservationDate
	m.ReservationExpires = v.ReservationExpires
}

// VehicleModelFromDomain creates a new persistence model from a domain Vehicle.
func VehicleModelFromDomain(v *inventory.Vehicle) *VehicleModel {
	m := &VehicleModel{}
	m.FromDomain(v)
	return m
}
