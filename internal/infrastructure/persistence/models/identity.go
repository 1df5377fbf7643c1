package models

import (
	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// UserModel is the persistence model for the User aggregate.
type UserModel struct {
	AggregateModel
	Username              string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	FullName              string          `gorm:"type:varchar(200)"`
	Role                  identity.Role   `gorm:"type:varchar(20);not null;index"`
	Phone                 string          `gorm:"type:varchar(20)"`
	PasswordHash          string          `gorm:"type:varchar(100);not null"`
	DefaultCommissionRate decimal.Decimal `gorm:"type:decimal(8,4);not null;default:10"`
	IsActive              bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: m.BaseModel.ToDomain(),
			Version:    m.Version,
		},
		Username:              m.Username,
		FullName:              m.FullName,
		Role:                  m.Role,
		Phone:                 m.Phone,
		PasswordHash:          m.PasswordHash,
		DefaultCommissionRate: m.DefaultCommissionRate,
		IsActive:              m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain User.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Username = u.Username
	m.FullName = u.FullName
	m.Role = u.Role
	m.Phone = u.Phone
	m.PasswordHash = u.PasswordHash
	m.DefaultCommissionRate = u.DefaultCommissionRate
	m.IsActive = u.IsActive
}

// UserModelFromDomain creates a new persistence model from a domain User.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
