package cli

import (
	"errors"
	"fmt"

	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/repository"
	"github.com/spf13/cobra"
)

// Demo owner and watchlist used by the forge command.
var (
	demoOwnerName = "Grey Li"

	demoMovies = []struct {
		title string
		year  string
	}{
		{"My Neighbor Totoro", "1988"},
		{"Dead Poets Society", "1989"},
		{"A Perfect World", "1993"},
		{"Leon", "1994"},
		{"Mahjong", "1996"},
		{"Swallowtail Butterfly", "1996"},
		{"King of Comedy", "1999"},
		{"Devils on the Doorstep", "1999"},
		{"WALL-E", "2008"},
		{"The Pork of Music", "2012"},
	}
)

var forgeCmd = &cobra.Command{
	Use:   "forge",
	Short: "Seed demo data",
	Long:  "Create the demo owner account and a starter set of movies",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		ctx := cmd.Context()

		// Keep an existing owner; the admin command manages credentials.
		_, err = services.UserRepo.First(ctx)
		if errors.Is(err, repository.ErrNotFound) {
			owner := domain.NewUser(demoOwnerName, "", "")
			if err := services.UserRepo.Create(ctx, owner); err != nil {
				return fmt.Errorf("failed to create demo owner: %w", err)
			}
		} else if err != nil {
			return err
		}

		for _, m := range demoMovies {
			movie := domain.NewMovie(m.title, m.year)
			if err := services.MovieRepo.Create(ctx, movie); err != nil {
				return fmt.Errorf("failed to create movie %q: %w", m.title, err)
			}
		}

		fmt.Printf("Seeded %d movies. Run 'watchlist admin' to set login credentials.\n", len(demoMovies))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(forgeCmd)
}
