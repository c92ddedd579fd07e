// Package main CareConnect API
//
// @title           CareConnect API
// @version         1.0
// @description     Учёт пожертвований: доноры, подопечные и выплаты из общего баланса.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	_ "github.com/cyb3erasad/Donor-Management-System/docs"
	"github.com/cyb3erasad/Donor-Management-System/internal/app/careconnect"
	"github.com/cyb3erasad/Donor-Management-System/internal/config"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/jwt"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	"github.com/cyb3erasad/Donor-Management-System/internal/migrations"
	authservice "github.com/cyb3erasad/Donor-Management-System/internal/services/auth"
	"github.com/cyb3erasad/Donor-Management-System/internal/storage/repository"
)

// Version задаётся при сборке через -ldflags.
var Version = "dev"

func main() {
	// .env нужен только локально
	_ = godotenv.Load()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "careconnect",
		Short:         "CareConnect donation manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_PATH"), "Config file path (YAML)")

	load := func() (*config.Config, *slog.Logger, error) {
		if configPath == "" {
			return nil, nil, errors.New("config path is not set: use --config or CONFIG_PATH")
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		return cfg, setupLogger(cfg.Env), nil
	}

	serve := serveCmd(load)
	cmd.RunE = serve.RunE
	cmd.AddCommand(
		serve,
		migrateCmd(load),
		createAdminCmd(load),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				cmd.Printf("careconnect version %s\n", Version)
			},
		},
	)
	return cmd
}

type loader func() (*config.Config, *slog.Logger, error)

func serveCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			logger.Info("starting careconnect", slog.String("env", cfg.Env), slog.String("version", Version))

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := careconnect.New(ctx, cfg, logger, prometheus.DefaultRegisterer)
			if err != nil {
				logger.Error("failed to initialize app", sl.Err(err))
				return err
			}
			if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("app stopped with error", sl.Err(err))
				return err
			}
			logger.Info("careconnect stopped gracefully")
			return nil
		},
	}
}

func migrateCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema",
	}

	withStorage := func(fn func(cfg *config.Config, logger *slog.Logger, db *repository.Storage) error) func(*cobra.Command, []string) error {
		return func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			db, err := repository.New(cfg.StorageConnectionString)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()
			return fn(cfg, logger, db)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withStorage(func(cfg *config.Config, logger *slog.Logger, db *repository.Storage) error {
				if err := migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
					return err
				}
				logger.Info("migrations applied")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			RunE: withStorage(func(cfg *config.Config, logger *slog.Logger, db *repository.Storage) error {
				if err := migrations.Down(db.DB, cfg.MigrationsPath); err != nil {
					return err
				}
				logger.Info("migrations rolled back")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print current schema version",
			RunE: withStorage(func(cfg *config.Config, logger *slog.Logger, db *repository.Storage) error {
				version, dirty, err := migrations.Version(db.DB, cfg.MigrationsPath)
				if err != nil {
					return err
				}
				logger.Info("schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
				return nil
			}),
		},
	)
	return cmd
}

func createAdminCmd(load loader) *cobra.Command {
	var acc authservice.AdminAccount

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the admin account if it does not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := load()
			if err != nil {
				return err
			}
			if acc.Email == "" {
				acc.Email = cfg.AdminEmail
			}
			if acc.Password == "" {
				acc.Password = cfg.AdminPassword
			}
			if acc.FullName == "" {
				acc.FullName = cfg.AdminName
			}
			if acc.Phone == "" {
				acc.Phone = cfg.AdminPhone
			}

			db, err := repository.New(cfg.StorageConnectionString)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			// Отзыв сессий при создании администратора не нужен.
			auth := authservice.NewAuthService(db, jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL), nil)
			created, err := auth.EnsureAdmin(cmd.Context(), acc)
			if err != nil {
				return err
			}
			if created {
				logger.Info("admin account created", slog.String("email", acc.Email))
			} else {
				logger.Info("admin account already exists", slog.String("email", acc.Email))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&acc.Email, "email", "", "Admin email (defaults to config)")
	cmd.Flags().StringVar(&acc.Password, "password", "", "Admin password (defaults to config)")
	cmd.Flags().StringVar(&acc.FullName, "name", "", "Admin full name (defaults to config)")
	cmd.Flags().StringVar(&acc.Phone, "phone", "", "Admin phone (defaults to config)")
	return cmd
}

func setupLogger(env string) *slog.Logger {
	if env == "local" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
