// Package profile manages the signed-in user's own profile and avatar.
package profile

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/querycache"
)

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.Profile, error)
}

type objectStore interface {
	Upload(ctx context.Context, bucket, path, contentType string, body io.Reader) error
	Remove(ctx context.Context, bucket string, paths ...string) error
	SignURL(ctx context.Context, bucket, path string, ttl time.Duration) (string, error)
}

// Config holds avatar storage settings.
type Config struct {
	AvatarBucket   string
	MaxAvatarBytes int64
	// URLTTL is the lifetime of a signed avatar URL.
	URLTTL time.Duration
}

// Service provides profile operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	store    objectStore
	cache    *querycache.Client
	cfg      Config
}

// NewService creates a profile Service.
func NewService(logger *slog.Logger, profiles profileRepo, store objectStore, cache *querycache.Client, cfg Config) *Service {
	if cfg.URLTTL <= 0 {
		cfg.URLTTL = time.Hour
	}
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
		store:    store,
		cache:    cache,
		cfg:      cfg,
	}
}

func avatarKey(bucket, path string) querycache.Key {
	return querycache.NewKey("avatar", bucket, path)
}
