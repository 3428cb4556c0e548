package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dropTables bool

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Initialize the database",
	Long:  "Create the database schema; use --drop to recreate it from scratch",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		if dropTables {
			if err := services.DB.Reset(); err != nil {
				return fmt.Errorf("failed to reset database: %w", err)
			}
			fmt.Println("Dropped and recreated tables.")
		}

		fmt.Printf("Initialized database at %s\n", cfg.DBPath)
		return nil
	},
}

func init() {
	initdbCmd.Flags().BoolVar(&dropTables, "drop", false, "drop existing tables before creating")
	rootCmd.AddCommand(initdbCmd)
}
