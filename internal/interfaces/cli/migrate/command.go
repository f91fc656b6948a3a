package migrate

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sdc/internal/domain/admin"
	infraauth "sdc/internal/infrastructure/auth"
	"sdc/internal/infrastructure/config"
	"sdc/internal/infrastructure/database"
	"sdc/internal/infrastructure/migration"
	"sdc/internal/infrastructure/repository"
	"sdc/internal/shared/logger"
)

var (
	env           string
	adminName     string
	adminEmail    string
	adminPassword string
	adminContact  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run schema migrations and seed the initial admin account.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newCreateAdminCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the database schema",
		RunE:  runUp,
	}
}

func newCreateAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE:  runCreateAdmin,
	}

	cmd.Flags().StringVar(&adminName, "name", "", "Admin display name")
	cmd.Flags().StringVar(&adminEmail, "email", "", "Admin email address")
	cmd.Flags().StringVar(&adminPassword, "password", "", "Admin password")
	cmd.Flags().StringVar(&adminContact, "contact", "", "Admin contact number")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func setup() (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("database schema is up to date")
	return nil
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	hasher := infraauth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	hash, err := hasher.Hash(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	adm, err := admin.NewAdmin(adminName, adminEmail, adminContact, hash)
	if err != nil {
		return fmt.Errorf("invalid admin details: %w", err)
	}

	repo := repository.NewAdminRepository(database.Get(), logger.NewLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repo.Create(ctx, adm); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	logger.Info("admin account created", "sid", adm.SID(), "email", adm.Email())
	return nil
}
