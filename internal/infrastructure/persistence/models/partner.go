package models

import (
	"github.com/cartrade/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer aggregate.
type CustomerModel struct {
	AuditedAggregateModel
	Name     string               `gorm:"type:varchar(200);not null;index"`
	Type     partner.CustomerType `gorm:"type:varchar(20);not null;default:'individual'"`
	NIF      string               `gorm:"type:varchar(50)"`
	Phone    string               `gorm:"type:varchar(20);not null;index"`
	Email    string               `gorm:"type:varchar(200)"`
	Address  string               `gorm:"type:text"`
	Wilaya   string               `gorm:"type:varchar(2);not null"`
	Notes    string               `gorm:"type:text"`
	IsActive bool                 `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		AuditedAggregateRoot: m.ToDomainAuditedAggregateRoot(),
		Name:                 m.Name,
		Type:                 m.Type,
		NIF:                  m.NIF,
		Phone:                m.Phone,
		Email:                m.Email,
		Address:              m.Address,
		Wilaya:               m.Wilaya,
		Notes:                m.Notes,
		IsActive:             m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Customer.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainAuditedAggregateRoot(c.AuditedAggregateRoot)
	m.Name = c.Name
	m.Type = c.Type
	m.NIF = c.NIF
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.Wilaya = c.Wilaya
	m.Notes = c.Notes
	m.IsActive = c.IsActive
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
