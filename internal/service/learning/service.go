// Package learning serves the catalogue of categories, subjects and episodes,
// the signed-in user's progress through it and the dashboard statistics.
// Every read goes through the process-wide query cache.
package learning

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/querycache"
	"github.com/heartmarshall/learnhub/pkg/ctxutil"
)

type contentRepo interface {
	ListCategories(ctx context.Context, includeUnpublished bool) ([]domain.Category, error)
	ListSubjects(ctx context.Context, categoryID uuid.UUID, includeUnpublished bool) ([]domain.Subject, error)
	GetSubject(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
	ListEpisodes(ctx context.Context, subjectID uuid.UUID, includeUnpublished bool) ([]domain.Episode, error)
	ListEpisodesBySubjects(ctx context.Context, subjectIDs []uuid.UUID, includeUnpublished bool) ([]domain.Episode, error)
	GetEpisode(ctx context.Context, id uuid.UUID) (*domain.Episode, error)
}

type progressRepo interface {
	ListByEpisodes(ctx context.Context, userID uuid.UUID, episodeIDs []uuid.UUID) ([]domain.EpisodeProgress, error)
	ListUpdatedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
	CountCompleted(ctx context.Context, userID uuid.UUID) (int, error)
	Upsert(ctx context.Context, p domain.EpisodeProgress) (*domain.EpisodeProgress, error)
	GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetStreak(ctx context.Context, userID uuid.UUID) (*domain.Streak, error)
}

// ActivityWindow is how far back progress updates count towards activity.
const ActivityWindow = 30 * 24 * time.Hour

// Service provides learning operations.
type Service struct {
	log      *slog.Logger
	content  contentRepo
	progress progressRepo
	cache    *querycache.Client
	cfg      Config
	now      func() time.Time
}

// Config tunes caching and request batching.
type Config struct {
	// StatsFresh overrides the cache's fresh window for dashboard statistics;
	// zero keeps the cache default.
	StatsFresh time.Duration
	// BatchWait and BatchSize bound how long and how many lookups are
	// collected into one backend request.
	BatchWait time.Duration
	BatchSize int
}

// NewService creates a learning Service.
func NewService(
	logger *slog.Logger,
	content contentRepo,
	progress progressRepo,
	cache *querycache.Client,
	cfg Config,
) *Service {
	if cfg.BatchWait <= 0 {
		cfg.BatchWait = defaultBatchWait
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	return &Service{
		log:      logger.With("service", "learning"),
		content:  content,
		progress: progress,
		cache:    cache,
		cfg:      cfg,
		now:      time.Now,
	}
}

// audience selects the content rows visible to the caller.
func audience(ctx context.Context) domain.ContentAudience {
	if ctxutil.IsAdminCtx(ctx) {
		return domain.AudienceAdmin
	}
	return domain.AudienceMember
}

func (s *Service) contentKey(ctx context.Context, parts ...string) querycache.Key {
	return querycache.NewKey(append([]string{"content", string(audience(ctx))}, parts...)...)
}

// ContentPrefix covers every cached content read, for both audiences.
func ContentPrefix() querycache.Key {
	return querycache.NewKey("content").Prefix()
}
