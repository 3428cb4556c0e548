package repository

import (
	"context"

	"github.com/martijn/watchlist/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// First returns the first user row by id. With a single-owner site
	// this is "the" user; ErrNotFound means no account was created yet.
	First(ctx context.Context) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
