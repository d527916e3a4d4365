package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/workdeck-dev/workdeck/db"
	"github.com/workdeck-dev/workdeck/internal/auth"
	"github.com/workdeck-dev/workdeck/internal/router"
	"github.com/workdeck-dev/workdeck/internal/store"
)

func connect() error {
	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		return fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connect(); err != nil {
				return err
			}

			if err := db.MigrateDatabase(); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			if err := auth.InitJWTSecret(); err != nil {
				return err
			}

			r := router.NewRouter()

			port := os.Getenv("PORT")

			if port == "" {
				port = "3000"
				log.Println("PORT not set, defaulting to 3000")
			}

			return r.Run(":" + port)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connect(); err != nil {
				return err
			}

			if err := db.MigrateDatabase(); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			log.Println("Database schema is up to date")
			return nil
		},
	}
}

func newCreateSuperuserCmd() *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "createsuperuser",
		Short: "Create or promote an account with staff and superuser privileges",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connect(); err != nil {
				return err
			}

			if err := db.MigrateDatabase(); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			user, err := store.PromoteSuperuser(db.DB, email, password, name)

			if err != nil {
				return err
			}

			log.Printf("Superuser %s (id=%d) is ready", user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address of the superuser")
	cmd.Flags().StringVar(&password, "password", "", "password, used only when the account does not exist yet")
	cmd.Flags().StringVar(&name, "name", "", "display name, used only when the account does not exist yet")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "workdeck",
		Short:        "Multi-tenant task-management backend",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := godotenv.Load(); err != nil {
				log.Println("No .env file found, using process environment")
			}
		},
	}

	rootCmd.AddCommand(newServeCmd(), newMigrateCmd(), newCreateSuperuserCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("workdeck: %v", err)
	}
}
