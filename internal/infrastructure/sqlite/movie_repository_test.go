package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/repository"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMovieRepositoryCRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	movie := domain.NewMovie("WALL-E", "2008")
	if err := repo.Create(ctx, movie); err != nil {
		t.Fatalf("failed to create movie: %v", err)
	}
	if movie.ID == 0 {
		t.Fatal("expected id to be assigned on create")
	}

	found, err := repo.FindByID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("failed to find movie: %v", err)
	}
	if found.Title != "WALL-E" || found.Year != "2008" {
		t.Errorf("unexpected movie: %+v", found)
	}

	found.Title = "Leon"
	found.Year = "1994"
	if err := repo.Update(ctx, found); err != nil {
		t.Fatalf("failed to update movie: %v", err)
	}
	updated, err := repo.FindByID(ctx, movie.ID)
	if err != nil {
		t.Fatalf("failed to find updated movie: %v", err)
	}
	if updated.Title != "Leon" || updated.Year != "1994" {
		t.Errorf("update not persisted: %+v", updated)
	}

	if err := repo.Delete(ctx, movie.ID); err != nil {
		t.Fatalf("failed to delete movie: %v", err)
	}
	if _, err := repo.FindByID(ctx, movie.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMovieRepositoryFindByTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	if _, err := repo.FindByTitle(ctx, "Mahjong"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing title, got %v", err)
	}

	first := domain.NewMovie("Mahjong", "1996")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("failed to create movie: %v", err)
	}
	// The store does not enforce uniqueness; FindByTitle must return
	// the first row.
	second := domain.NewMovie("Mahjong", "2020")
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("failed to create duplicate movie: %v", err)
	}

	found, err := repo.FindByTitle(ctx, "Mahjong")
	if err != nil {
		t.Fatalf("failed to find movie by title: %v", err)
	}
	if found.ID != first.ID || found.Year != "1996" {
		t.Errorf("expected first matching row, got %+v", found)
	}
}

func TestMovieRepositoryList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	movies, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("failed to list movies: %v", err)
	}
	if len(movies) != 0 {
		t.Errorf("expected empty list, got %d movies", len(movies))
	}

	titles := []string{"My Neighbor Totoro", "Dead Poets Society", "A Perfect World"}
	for i, title := range titles {
		if err := repo.Create(ctx, domain.NewMovie(title, fmt.Sprintf("199%d", i))); err != nil {
			t.Fatalf("failed to create movie %q: %v", title, err)
		}
	}

	movies, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("failed to list movies: %v", err)
	}
	if len(movies) != len(titles) {
		t.Fatalf("expected %d movies, got %d", len(titles), len(movies))
	}
	for i, movie := range movies {
		if movie.Title != titles[i] {
			t.Errorf("expected movie %d to be %q, got %q", i, titles[i], movie.Title)
		}
	}
}

func TestMovieRepositoryUpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	err := repo.Update(ctx, &domain.Movie{ID: 9999, Title: "Ghost", Year: "1990"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := repo.Delete(ctx, 9999); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
