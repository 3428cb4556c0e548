package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/repository"
)

const (
	MaxTitleLength = 60
	MaxYearLength  = 4
)

type MovieService struct {
	movieRepo repository.MovieRepository
}

func NewMovieService(movieRepo repository.MovieRepository) *MovieService {
	return &MovieService{movieRepo: movieRepo}
}

func (s *MovieService) List(ctx context.Context) ([]*domain.Movie, error) {
	return s.movieRepo.List(ctx)
}

// Get returns the movie with the given id, or repository.ErrNotFound.
func (s *MovieService) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	return s.movieRepo.FindByID(ctx, id)
}

// Create validates the submitted fields, rejects a duplicate title and
// persists a new movie. The duplicate check happens at creation only;
// the store does not enforce title uniqueness.
func (s *MovieService) Create(ctx context.Context, title, year string) (*domain.Movie, error) {
	if err := validateMovieFields(title, year); err != nil {
		return nil, err
	}

	_, err := s.movieRepo.FindByTitle(ctx, title)
	if err == nil {
		return nil, ErrDuplicateTitle
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for duplicate title: %w", err)
	}

	movie := domain.NewMovie(title, year)
	if err := s.movieRepo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// Update validates the submitted fields and overwrites the movie's title
// and year. Duplicate titles are not re-checked on update.
func (s *MovieService) Update(ctx context.Context, id int64, title, year string) (*domain.Movie, error) {
	if err := validateMovieFields(title, year); err != nil {
		return nil, err
	}

	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	movie.Title = title
	movie.Year = year
	if err := s.movieRepo.Update(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *MovieService) Delete(ctx context.Context, id int64) error {
	if _, err := s.movieRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.movieRepo.Delete(ctx, id)
}

func validateMovieFields(title, year string) error {
	if title == "" || utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrInvalidInput
	}
	if year == "" || utf8.RuneCountInString(year) > MaxYearLength {
		return ErrInvalidInput
	}
	return nil
}
