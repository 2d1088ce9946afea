package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	postgresRepo "github.com/Nebur23/bizsense-ai/internal/adapter/repository/postgres"
	"github.com/Nebur23/bizsense-ai/internal/infrastructure/config"
	"github.com/Nebur23/bizsense-ai/internal/infrastructure/postgres"
	"github.com/Nebur23/bizsense-ai/internal/usecase"
)

// bcryptGenerate is swappable for tests.
var bcryptGenerate = bcrypt.GenerateFromPassword

func main() {
	rootCmd := &cobra.Command{
		Use:   "bizsense-cli",
		Short: "BizSense admin tool",
		Long:  `Administrative commands for the BizSense bookkeeping service.`,
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}
	migrateCmd.AddCommand(migrateUpCmd(), migrateDownCmd())

	rootCmd.AddCommand(migrateCmd, seedCmd(), verifyCmd(), hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func migrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
		},
	}
}

func migrateDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return postgres.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsPath)
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the default category catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, 2, 1)
			if err != nil {
				return err
			}
			defer pool.Close()

			categoryUC := usecase.NewCategoryUseCase(
				postgresRepo.NewCategoryRepository(pool),
				nil,
				postgresRepo.NewULIDGenerator(),
			)

			if err := categoryUC.SeedCategories(ctx); err != nil {
				return err
			}

			fmt.Println("categories seeded")
			return nil
		},
	}
}

// verifyCmd checks that every cached account balance matches the balance
// reconstructed from its movements, across all businesses.
func verifyCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify ledger consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, 2, 1)
			if err != nil {
				return err
			}
			defer pool.Close()

			reportUC := usecase.NewReportUseCase(postgresRepo.NewReportRepository(pool))

			drifts, err := reportUC.VerifyConsistency(ctx)
			if err != nil {
				return err
			}

			if len(drifts) == 0 {
				fmt.Println("ledger consistent")
				return nil
			}

			if asJSON {
				printJSON(drifts)
			} else {
				fmt.Printf("%-26s %-20s %15s %15s\n", "ACCOUNT", "NAME", "BALANCE", "RECONSTRUCTED")
				for _, d := range drifts {
					fmt.Printf("%-26s %-20s %15s %15s\n",
						d.AccountID,
						truncate(d.AccountName, 20),
						d.Balance.String(),
						d.MovementSum.String(),
					)
				}
			}

			return fmt.Errorf("%d account(s) drifted", len(drifts))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print drifts as JSON")
	return cmd
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a password for manual user setup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to marshal: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
