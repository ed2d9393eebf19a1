// Package app wires the processes of the platform: the web BFF and the
// booking reminder function.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/adapter/gotrue"
	"github.com/heartmarshall/learnhub/internal/adapter/httpapi"
	"github.com/heartmarshall/learnhub/internal/adapter/objectstore"
	"github.com/heartmarshall/learnhub/internal/adapter/postgrest"
	bookingrepo "github.com/heartmarshall/learnhub/internal/adapter/postgrest/booking"
	contentrepo "github.com/heartmarshall/learnhub/internal/adapter/postgrest/content"
	notificationrepo "github.com/heartmarshall/learnhub/internal/adapter/postgrest/notification"
	profilerepo "github.com/heartmarshall/learnhub/internal/adapter/postgrest/profile"
	progressrepo "github.com/heartmarshall/learnhub/internal/adapter/postgrest/progress"
	rewardrepo "github.com/heartmarshall/learnhub/internal/adapter/postgrest/reward"
	"github.com/heartmarshall/learnhub/internal/auth"
	"github.com/heartmarshall/learnhub/internal/authsync"
	"github.com/heartmarshall/learnhub/internal/config"
	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/guard"
	"github.com/heartmarshall/learnhub/internal/i18n"
	"github.com/heartmarshall/learnhub/internal/querycache"
	"github.com/heartmarshall/learnhub/internal/service/admin"
	"github.com/heartmarshall/learnhub/internal/service/booking"
	"github.com/heartmarshall/learnhub/internal/service/learning"
	"github.com/heartmarshall/learnhub/internal/service/notification"
	"github.com/heartmarshall/learnhub/internal/service/profile"
	"github.com/heartmarshall/learnhub/internal/service/rewards"
	"github.com/heartmarshall/learnhub/internal/transport/middleware"
	"github.com/heartmarshall/learnhub/internal/transport/rest"
)

// Run starts the web process and blocks until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(os.Stderr, cfg.Log, cfg.Telemetry.ServiceName)
	logger.Info("starting web server",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("tracing", cfg.Telemetry.Enabled()),
	)

	shutdownTracing, err := setupTracing(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer flush(logger, cfg.Server, "tracing", shutdownTracing)

	client, err := httpapi.New(cfg.Backend.URL, cfg.Backend.AnonKey, cfg.Backend.RequestTimeout)
	if err != nil {
		return fmt.Errorf("backend client: %w", err)
	}
	loc, err := i18n.New(cfg.I18n.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n: %w", err)
	}

	// Adapters
	db := postgrest.New(client)
	profiles := profilerepo.New(db)
	content := contentrepo.New(db)
	progress := progressrepo.New(db)
	rewardRepo := rewardrepo.New(db)
	bookingRepo := bookingrepo.New(db)
	notificationRepo := notificationrepo.New(db)
	objects := objectstore.New(client)
	parser := auth.NewTokenParser(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	cache := querycache.New(logger, querycache.Config{
		FreshWindow: cfg.Cache.FreshWindow,
		EvictWindow: cfg.Cache.EvictWindow,
		RetryDelay:  cfg.Cache.RetryDelay,
	})
	go cache.Run(ctx, cfg.Cache.SweepInterval)

	sessions := authsync.NewRegistry(logger, cfg.Auth.MaxSessions, cfg.Auth.SessionIdleTTL,
		func() (*authsync.Synchronizer, authsync.TokenSource) {
			store := gotrue.NewStore(logger, client, parser, cfg.Auth.RefreshMargin)
			synchronizer := authsync.New(logger, store, sessionProfiles{repo: profiles, tokens: store}, cfg.Backend.RequestTimeout)
			return synchronizer, store
		})
	defer sessions.Close()

	// Services
	profileSvc := profile.NewService(logger, profiles, objects, cache, profile.Config{
		AvatarBucket:   cfg.Storage.AvatarBucket,
		MaxAvatarBytes: cfg.Storage.MaxAvatarBytes,
		URLTTL:         cfg.Storage.AvatarURLTTL,
	})
	learningSvc := learning.NewService(logger, content, progress, cache, learning.Config{
		StatsFresh: cfg.Cache.StatsFreshWindow,
		BatchWait:  cfg.Backend.BatchWait,
		BatchSize:  cfg.Backend.BatchSize,
	})
	rewardSvc := rewards.NewService(logger, rewardRepo, cache)
	bookingSvc := booking.NewService(logger, bookingRepo, cache)
	notificationSvc := notification.NewService(logger, notificationRepo, cache)
	adminSvc := admin.NewService(logger, profiles, content, rewardRepo, objects, cache, admin.Config{
		CoverBucket:   cfg.Storage.CoverBucket,
		MaxCoverBytes: cfg.Storage.MaxCoverBytes,
	})

	// Transport
	cookie := middleware.SessionCookie{
		Name:   cfg.Auth.CookieName,
		Secure: cfg.Auth.CookieSecure,
		MaxAge: cfg.Auth.SessionIdleTTL,
	}
	limiter := middleware.NewRateLimiter(cfg.Auth.MaxSessions, cfg.Auth.LoginRateWindow)
	router := rest.NewRouter(rest.Handlers{
		Health:        rest.NewHealthHandler(map[string]rest.Pinger{"backend": client}, Version),
		Auth:          rest.NewAuthHandler(logger, loc, sessions, profileSvc, cache, cookie),
		Learning:      rest.NewLearningHandler(logger, loc, learningSvc),
		Rewards:       rest.NewRewardHandler(logger, loc, rewardSvc),
		Bookings:      rest.NewBookingHandler(logger, loc, bookingSvc),
		Notifications: rest.NewNotificationHandler(logger, loc, notificationSvc),
		Profile:       rest.NewProfileHandler(logger, loc, profileSvc, cfg.Storage.MaxAvatarBytes),
		Admin:         rest.NewAdminHandler(logger, loc, adminSvc, bookingSvc, cfg.Storage.MaxCoverBytes),
	}, guard.New(logger, loc), limiter.Limit(cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow))

	handler := middleware.Wrap(router,
		middleware.Recovery(logger),
		middleware.Tracing(),
		middleware.RequestID,
		loc.Middleware,
		middleware.Session(sessions, cookie),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)

	return serve(ctx, logger, cfg.Server, handler)
}

// sessionProfiles reads profiles with the session's own token, so the
// synchronizer's detached fetches still run under row-level security.
type sessionProfiles struct {
	repo   *profilerepo.Repo
	tokens httpapi.TokenSource
}

func (p sessionProfiles) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return p.repo.GetByID(httpapi.WithTokenSource(ctx, p.tokens), id)
}
