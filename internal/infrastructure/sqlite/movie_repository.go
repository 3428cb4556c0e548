package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/repository"
)

type movieRepository struct {
	db *DB
}

func NewMovieRepository(db *DB) repository.MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	query := `
		INSERT INTO movie (title, year)
		VALUES (?, ?)
	`
	result, err := r.db.ExecContext(ctx, query, movie.Title, movie.Year)
	if err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted id: %w", err)
	}
	movie.ID = id
	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*domain.Movie, error) {
	query := `
		SELECT id, title, year
		FROM movie
		WHERE id = ?
	`
	var movie domain.Movie
	err := r.db.GetContext(ctx, &movie, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	return &movie, nil
}

func (r *movieRepository) FindByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	query := `
		SELECT id, title, year
		FROM movie
		WHERE title = ?
		ORDER BY id
		LIMIT 1
	`
	var movie domain.Movie
	err := r.db.GetContext(ctx, &movie, query, title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	return &movie, nil
}

func (r *movieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	query := `
		SELECT id, title, year
		FROM movie
		ORDER BY id
	`
	movies := []*domain.Movie{}
	err := r.db.SelectContext(ctx, &movies, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	query := `
		UPDATE movie
		SET title = ?, year = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query, movie.Title, movie.Year, movie.ID)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM movie WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
