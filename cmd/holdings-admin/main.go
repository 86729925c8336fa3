package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/holdings-api/cmd/holdings-admin/ui"
	"github.com/redmonkez12/holdings-api/internal/auth"
	"github.com/redmonkez12/holdings-api/internal/config"
	"github.com/redmonkez12/holdings-api/internal/database"
	"github.com/redmonkez12/holdings-api/internal/portfolio"
	"github.com/redmonkez12/holdings-api/internal/user"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "holdings-admin",
		Short:         "Administer the holdings database",
		Long:          "Apply migrations, reset demo data, create users and inspect the demo portfolio without going through the HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE:  runMigrate,
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Delete ALL users and portfolio data, then create the demo set",
		RunE:  runSeed,
	}
	seedCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")

	createUserCmd := &cobra.Command{
		Use:   "create-user",
		Short: "Register a user",
		RunE:  runCreateUser,
	}
	createUserCmd.Flags().String("email", "", "User email")
	createUserCmd.Flags().String("password", "", "User password (6-100 characters)")

	holdingsCmd := &cobra.Command{
		Use:   "holdings",
		Short: "Print the demo portfolio with P/L and allocation",
		RunE:  runHoldings,
	}

	rootCmd.AddCommand(migrateCmd, seedCmd, createUserCmd, holdingsCmd)

	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}

// app is the subset of the server's dependency graph the commands need.
type app struct {
	cfg    *config.Config
	db     *bun.DB
	hasher auth.Hasher
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	hasher, err := auth.NewHasher(cfg.Auth.PasswordHasher, cfg.Auth.BcryptCost)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &app{cfg: cfg, db: db, hasher: hasher}, nil
}

func (a *app) portfolioService() *portfolio.Service {
	return portfolio.NewService(portfolio.NewRepository(a.db), a.hasher, a.cfg.Demo.Email, a.cfg.Demo.Password)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.db.Close()

	if err := database.Migrate(cmd.Context(), a.db.DB); err != nil {
		return err
	}

	ui.PrintSuccess("Migrations applied")
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")

	if !yes {
		confirmed, err := ui.ConfirmSeed()
		if err != nil {
			return fmt.Errorf("prompt cancelled: %w", err)
		}
		if !confirmed {
			ui.PrintNote("Aborted.")
			return nil
		}
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.db.Close()

	result, err := a.portfolioService().Seed(cmd.Context())
	if err != nil {
		return err
	}

	ui.PrintSeedResult(result)
	ui.PrintNote(fmt.Sprintf("Log in as %s with DEMO_PASSWORD.", result.User.Email))
	return nil
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	if email == "" || password == "" {
		var err error
		email, password, err = ui.CredentialsForm()
		if err != nil {
			return fmt.Errorf("form cancelled: %w", err)
		}
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.db.Close()

	tokens, err := auth.NewTokenService(a.cfg.Auth.TokenFormat, a.cfg.Auth.Secret)
	if err != nil {
		return err
	}
	service, err := auth.NewService(user.NewRepository(a.db), a.hasher, tokens)
	if err != nil {
		return err
	}

	created, err := service.Register(cmd.Context(), email, password)
	if err != nil {
		var verr *auth.ValidationError
		if errors.As(err, &verr) {
			for _, issue := range verr.Issues {
				ui.PrintError(fmt.Sprintf("%s: %s", issue.Field, issue.Message))
			}
			return errors.New("invalid input")
		}
		if errors.Is(err, user.ErrDuplicateEmail) {
			return errors.New("user already exists")
		}
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Created user %s (id %d)", created.Email, created.ID))
	return nil
}

func runHoldings(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.db.Close()

	holdings, err := a.portfolioService().DemoHoldings(cmd.Context())
	if err != nil {
		if errors.Is(err, portfolio.ErrDemoUserNotFound) {
			return errors.New("demo user not found, run `holdings-admin seed` first")
		}
		return err
	}

	fmt.Println(ui.RenderHoldings(holdings))
	return nil
}
