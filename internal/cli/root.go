package cli

import (
	"fmt"

	"github.com/martijn/watchlist/internal/core/repository"
	"github.com/martijn/watchlist/internal/core/service"
	"github.com/martijn/watchlist/internal/infrastructure/sqlite"
	"github.com/martijn/watchlist/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "Watchlist - a single-user movie watchlist",
	Long: `Watchlist is a small server-rendered web application for keeping a
personal movie watchlist.

It provides:
- A public listing page and an owner-only edit flow
- Password login with a signed-cookie session
- A SQLite database file as the only state
- Commands for schema setup, demo data and the owner account`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./watchlist.yml)")
}

// initServices initializes the database, repositories and services
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	movieRepo := sqlite.NewMovieRepository(db)

	return &Services{
		DB:           db,
		UserRepo:     userRepo,
		MovieRepo:    movieRepo,
		AuthService:  service.NewAuthService(userRepo),
		MovieService: service.NewMovieService(movieRepo),
		UserService:  service.NewUserService(userRepo),
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB           *sqlite.DB
	UserRepo     repository.UserRepository
	MovieRepo    repository.MovieRepository
	AuthService  *service.AuthService
	MovieService *service.MovieService
	UserService  *service.UserService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
