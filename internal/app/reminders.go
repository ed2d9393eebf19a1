package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/learnhub/internal/adapter/postgres"
	pgbooking "github.com/heartmarshall/learnhub/internal/adapter/postgres/booking"
	"github.com/heartmarshall/learnhub/internal/config"
	"github.com/heartmarshall/learnhub/internal/service/reminder"
	"github.com/heartmarshall/learnhub/internal/transport/middleware"
	"github.com/heartmarshall/learnhub/internal/transport/rest"
)

// RunReminders starts the booking reminder function and blocks until ctx is
// cancelled. A scheduler triggers a run with GET or POST on the root path.
func RunReminders(ctx context.Context) error {
	cfg, err := config.LoadReminder()
	if err != nil {
		return err
	}

	logger := NewLogger(os.Stderr, cfg.Log, cfg.Telemetry.ServiceName)
	logger.Info("starting booking reminders",
		slog.String("version", BuildVersion()),
		slog.Duration("window", cfg.Reminder.Window),
		slog.Uint64("limit", cfg.Reminder.Limit),
	)

	shutdownTracing, err := setupTracing(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer flush(logger, cfg.Server, "tracing", shutdownTracing)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	svc := reminder.NewService(logger, postgres.NewTxManager(pool), pgbooking.New(pool),
		reminder.NewNoopDispatcher(logger),
		reminder.Config{
			SiteURL: cfg.Reminder.SiteURL,
			Window:  cfg.Reminder.Window,
			Limit:   cfg.Reminder.Limit,
		})

	router := rest.NewReminderRouter(
		rest.NewHealthHandler(map[string]rest.Pinger{"database": pool}, Version),
		rest.NewReminderHandler(logger, svc),
	)
	handler := middleware.Wrap(router,
		middleware.Recovery(logger),
		middleware.Tracing(),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)

	return serve(ctx, logger, cfg.Server, handler)
}
