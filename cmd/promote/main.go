// Command promote gives a user the admin role by email address. It is used
// to bootstrap the first admin, who can then manage roles from the console.
//
// Usage:
//
//	promote --email=user@example.com
//
// Reads DATABASE_DSN like the other processes. Exit codes: 0 = success,
// 1 = error or unknown email.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/learnhub/internal/adapter/postgres"
	"github.com/heartmarshall/learnhub/internal/adapter/postgres/profile"
	"github.com/heartmarshall/learnhub/internal/app"
	"github.com/heartmarshall/learnhub/internal/config"
	"github.com/heartmarshall/learnhub/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of user to promote to admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	cfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(os.Stderr, cfg.Log, "promote")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	p, err := profile.New(pool).SetRoleByEmail(ctx, *email, domain.UserRoleAdmin)
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		pool.Close()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("update role", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("user promoted to admin", slog.String("user_id", p.ID.String()))
	fmt.Printf("User %q promoted to admin.\n", p.Email)
}
