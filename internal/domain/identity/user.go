package identity

import (
	"time"

	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCommissionRate is the commission rate assigned to new traders
var DefaultCommissionRate = decimal.NewFromInt(10)

// Password cost for bcrypt
const bcryptCost = 12

// MinPasswordLength is the minimum password length
const MinPasswordLength = 8

// User represents a staff member of the company
type User struct {
	shared.BaseAggregateRoot
	Username              string          `json:"username"`
	FullName              string          `json:"full_name"`
	Role                  Role            `json:"role"`
	Phone                 string          `json:"phone"`
	PasswordHash          string          `json:"-"`
	DefaultCommissionRate decimal.Decimal `json:"default_commission_rate"`
	IsActive              bool            `json:"is_active"`
}

// NewUser creates a new user with the given role
func NewUser(username, fullName string, role Role) (*User, error) {
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role is not valid")
	}

	return &User{
		BaseAggregateRoot:     shared.NewBaseAggregateRoot(),
		Username:              username,
		FullName:              fullName,
		Role:                  role,
		DefaultCommissionRate: DefaultCommissionRate,
		IsActive:              true,
	}, nil
}

// DisplayName returns the full name, falling back to the username
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// SetDefaultCommissionRate updates the trader's default rate (0-100)
func (u *User) SetDefaultCommissionRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_COMMISSION_RATE", "Commission rate must be between 0 and 100")
	}
	u.DefaultCommissionRate = rate
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// SetPassword hashes and stores the password
func (u *User) SetPassword(password string) error {
	if len(password) < MinPasswordLength {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_FAILED", "Failed to hash password")
	}
	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// VerifyPassword checks the password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword verifies the old password and sets the new one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_CREDENTIALS", "Current password is incorrect")
	}
	return u.SetPassword(newPassword)
}

// Deactivate marks the user as inactive
func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}
