package services

import (
	"errors"
	"fmt"

	"bookmarks/internal/models"
	"bookmarks/internal/repositories"
)

// UserPatch carries a partial profile update. Nil fields are left
// unchanged.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// UserService handles business logic for user profiles.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Update applies a partial profile update to the given user. Changing
// the email to one registered to another user returns ErrEmailTaken.
func (s *UserService) Update(id string, patch UserPatch) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if existing, err := s.userRepo.GetByEmail(*patch.Email); err == nil && existing != nil && existing.ID != id {
			return nil, ErrEmailTaken
		}
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
