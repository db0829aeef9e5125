// Package main creates the initial admin account. It is idempotent: if an
// account already uses the admin email, it is left untouched and the command
// exits successfully.
//
// Usage:
//
//	ADMIN_PASSWORD=... seed-admin -email admin@example.com -name Admin
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jsamuelsen11/todo-service/internal/adapters/store"
	"github.com/jsamuelsen11/todo-service/internal/app"
	"github.com/jsamuelsen11/todo-service/internal/platform/auth"
	"github.com/jsamuelsen11/todo-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-service/internal/platform/logging"
)

const (
	defaultProfile = "local"
	seedTimeout    = 30 * time.Second
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fset := flag.NewFlagSet("seed-admin", flag.ContinueOnError)
	name := fset.String("name", "Admin", "display name of the admin account")
	email := fset.String("email", "admin@example.com", "email of the admin account")
	if err := fset.Parse(args); err != nil {
		return err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return errors.New("ADMIN_PASSWORD environment variable is required")
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	backend, err := store.Open(ctx, &cfg.Store, nil, logger)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() {
		if err := backend.Close(context.Background()); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}()

	tokens, err := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)
	if err != nil {
		return fmt.Errorf("creating token issuer: %w", err)
	}

	users := app.NewUserService(backend.Users, auth.NewHasher(cfg.Auth.BcryptCost), tokens, nil, logger)

	u, created, err := users.EnsureAdmin(ctx, *name, *email, password)
	if err != nil {
		return fmt.Errorf("seeding admin: %w", err)
	}

	if created {
		logger.Info("admin user created", slog.String("user_id", u.ID), slog.String("email", u.Email))
	} else {
		logger.Info("admin user already exists, nothing to do", slog.String("user_id", u.ID))
	}
	return nil
}
