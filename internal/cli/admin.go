package cli

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/martijn/watchlist/internal/core/domain"
	"github.com/martijn/watchlist/internal/core/repository"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var adminUsername string

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Create or update the owner account",
	Long:  "Set the login username and password of the single owner account",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		ctx := cmd.Context()

		// Prompt for password
		fmt.Print("Enter password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		fmt.Print("Confirm password: ")
		confirmPassword, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		if string(password) != string(confirmPassword) {
			return fmt.Errorf("passwords do not match")
		}

		if len(password) < 8 {
			return fmt.Errorf("password must be at least 8 characters")
		}

		hashedPassword, err := services.AuthService.HashPassword(string(password))
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		// One owner account: update it when it exists, create otherwise.
		user, err := services.UserRepo.First(ctx)
		switch {
		case err == nil:
			user.Username = adminUsername
			user.PasswordHash = hashedPassword
			if err := services.UserRepo.Update(ctx, user); err != nil {
				return fmt.Errorf("failed to update owner account: %w", err)
			}
			fmt.Println("Updated owner account.")
		case errors.Is(err, repository.ErrNotFound):
			user = domain.NewUser("Admin", adminUsername, hashedPassword)
			if err := services.UserRepo.Create(ctx, user); err != nil {
				return fmt.Errorf("failed to create owner account: %w", err)
			}
			fmt.Println("Created owner account.")
		default:
			return err
		}

		return nil
	},
}

func init() {
	adminCmd.Flags().StringVar(&adminUsername, "username", "admin", "login username for the owner account")
	rootCmd.AddCommand(adminCmd)
}
