package identity

import (
	"context"
	"errors"

	"github.com/cartrade/backend/internal/domain/identity"
	"github.com/cartrade/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserService manages staff accounts
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create creates a new user with a hashed password
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("USERNAME_TAKEN", "Username is already in use")
	}

	user, err := identity.NewUser(req.Username, req.FullName, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}
	user.Phone = req.Phone

	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}
	if req.DefaultCommissionRate != nil {
		if err := user.SetDefaultCommissionRate(*req.DefaultCommissionRate); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Get retrieves a user by ID
func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

// List retrieves all users
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toUserResponse(&users[i]))
	}
	return responses, nil
}

// ListCommissionEarners retrieves the active traders and managers
func (s *UserService) ListCommissionEarners(ctx context.Context) ([]UserResponse, error) {
	users, err := s.userRepo.FindActiveByRoles(ctx, identity.RoleTrader, identity.RoleManager)
	if err != nil {
		return nil, err
	}
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toUserResponse(&users[i]))
	}
	return responses, nil
}

// SetCommissionRate updates a user's default commission rate
func (s *UserService) SetCommissionRate(ctx context.Context, userID uuid.UUID, rate decimal.Decimal) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}

	if err := user.SetDefaultCommissionRate(rate); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Deactivate marks a user as inactive; they drop out of commission
// aggregation and can no longer log in
func (s *UserService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return err
	}

	user.Deactivate()
	return s.userRepo.Save(ctx, user)
}
