package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bucky/internal/errors"
	"bucky/internal/model"
	"bucky/internal/repository"
)

const bcryptCost = 10

// UserService handles user registration and account operations.
type UserService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	ChangePassword(ctx context.Context, currentUserID, targetUserID uint, password string) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Register creates a new user with a hashed password. Usernames are
// globally unique.
func (s *userService) Register(ctx context.Context, username, password string) (*model.User, error) {
	existing, err := s.users.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, errors.ErrUserExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Get fetches a user with their bucket lists.
func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByIDWithBucketLists(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// ChangePassword replaces the target user's password. Only the password
// field is mutable, and only by the same user; the existence check runs
// first so an absent target reports not-found rather than forbidden.
func (s *userService) ChangePassword(ctx context.Context, currentUserID, targetUserID uint, password string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, targetUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if currentUserID != targetUserID {
		// cannot change someone else's details
		return nil, errors.ErrForbidden
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hashed)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	return user, nil
}
