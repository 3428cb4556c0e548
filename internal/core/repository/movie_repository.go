package repository

import (
	"context"

	"github.com/martijn/watchlist/internal/core/domain"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	FindByID(ctx context.Context, id int64) (*domain.Movie, error)
	// FindByTitle returns the first movie with the given title, or
	// ErrNotFound. Used for the duplicate-title check at creation.
	FindByTitle(ctx context.Context, title string) (*domain.Movie, error)
	List(ctx context.Context) ([]*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id int64) error
}
