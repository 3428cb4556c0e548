package service

import (
	"context"
	"unicode/utf8"

	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/repository"
)

const MaxNameLength = 20

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Current returns the owner account, or repository.ErrNotFound when the
// database was never seeded.
func (s *UserService) Current(ctx context.Context) (*domain.User, error) {
	return s.userRepo.First(ctx)
}

// UpdateName changes the owner's display name (1-20 characters).
func (s *UserService) UpdateName(ctx context.Context, name string) (*domain.User, error) {
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.First(ctx)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
