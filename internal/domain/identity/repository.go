package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindActiveByRoles finds active users holding any of the given roles
	FindActiveByRoles(ctx context.Context, roles ...Role) ([]User, error)

	// FindAll returns all users ordered by username
	FindAll(ctx context.Context) ([]User, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error
}
