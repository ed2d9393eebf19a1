// Package admin implements the back-office operations: user management,
// learning content authoring, cover uploads and the reward catalog.
// Every operation requires the admin role in the context; row-level security
// enforces the same rule on the backend.
package admin

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	profilerepo "github.com/heartmarshall/learnhub/internal/adapter/postgrest/profile"
	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/querycache"
	"github.com/heartmarshall/learnhub/pkg/ctxutil"
)

type profileRepo interface {
	List(ctx context.Context, f profilerepo.ListFilter) ([]domain.Profile, int, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Profile, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.Profile, error)
}

type contentRepo interface {
	CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error)
	UpdateSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error)
	DeleteSubject(ctx context.Context, id uuid.UUID) error
	CreateEpisode(ctx context.Context, e domain.Episode) (*domain.Episode, error)
	UpdateEpisode(ctx context.Context, e domain.Episode) (*domain.Episode, error)
	DeleteEpisode(ctx context.Context, id uuid.UUID) error
}

type rewardRepo interface {
	CreateReward(ctx context.Context, rw domain.Reward) (*domain.Reward, error)
	UpdateReward(ctx context.Context, rw domain.Reward) (*domain.Reward, error)
}

type objectStore interface {
	Upload(ctx context.Context, bucket, path, contentType string, body io.Reader) error
	PublicURL(bucket, path string) string
}

// Config holds cover upload settings.
type Config struct {
	CoverBucket   string
	MaxCoverBytes int64
}

// Service provides admin operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	content  contentRepo
	rewards  rewardRepo
	store    objectStore
	cache    *querycache.Client
	cfg      Config
}

// NewService creates an admin Service.
func NewService(
	logger *slog.Logger,
	profiles profileRepo,
	content contentRepo,
	rewards rewardRepo,
	store objectStore,
	cache *querycache.Client,
	cfg Config,
) *Service {
	return &Service{
		log:      logger.With("service", "admin"),
		profiles: profiles,
		content:  content,
		rewards:  rewards,
		store:    store,
		cache:    cache,
		cfg:      cfg,
	}
}

// caller returns the admin's user id, or an error when the context does not
// carry an admin.
func caller(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return id, nil
}
