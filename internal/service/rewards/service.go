// Package rewards lists redeemable rewards and exchanges wallet points for them.
package rewards

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/querycache"
	"github.com/heartmarshall/learnhub/pkg/ctxutil"
)

const (
	DefaultRedemptionLimit = 50
	MaxRedemptionLimit     = 200
)

type rewardRepo interface {
	ListRewards(ctx context.Context, includeInactive bool) ([]domain.Reward, error)
	GetReward(ctx context.Context, id uuid.UUID) (*domain.Reward, error)
	Redeem(ctx context.Context, rewardID uuid.UUID) (*domain.Redemption, error)
	ListRedemptions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Redemption, error)
}

// Service provides reward operations for members.
type Service struct {
	log     *slog.Logger
	rewards rewardRepo
	cache   *querycache.Client
}

// NewService creates a rewards Service.
func NewService(logger *slog.Logger, rewards rewardRepo, cache *querycache.Client) *Service {
	return &Service{
		log:     logger.With("service", "rewards"),
		rewards: rewards,
		cache:   cache,
	}
}

// CatalogKey is the cache key of the active reward list.
func CatalogKey() querycache.Key {
	return querycache.NewKey("rewards", "active")
}

// ListRewards returns the active rewards, cheapest first.
func (s *Service) ListRewards(ctx context.Context) ([]domain.Reward, error) {
	res, err := querycache.Get(ctx, s.cache, querycache.Request[[]domain.Reward]{
		Key: CatalogKey(),
		Fetch: func(ctx context.Context) ([]domain.Reward, error) {
			return s.rewards.ListRewards(ctx, false)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("rewards.ListRewards: %w", err)
	}
	return res.Value, nil
}

// Redeem exchanges the caller's points for a reward. Balance and stock are
// enforced by the redeem_reward function; inactive and sold-out rewards are
// rejected up front.
func (s *Service) Redeem(ctx context.Context, rewardID uuid.UUID) (*domain.Redemption, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if rewardID == uuid.Nil {
		return nil, domain.NewValidationError("reward_id", "required")
	}

	reward, err := s.rewards.GetReward(ctx, rewardID)
	if err != nil {
		return nil, fmt.Errorf("rewards.Redeem: %w", err)
	}
	if !reward.IsActive {
		return nil, domain.ErrNotFound
	}
	if !reward.InStock() {
		return nil, domain.NewValidationError("reward_id", "out of stock")
	}

	redemption, err := s.rewards.Redeem(ctx, rewardID)
	if err != nil {
		return nil, fmt.Errorf("rewards.Redeem: %w", err)
	}

	s.cache.Invalidate(CatalogKey())
	s.cache.InvalidatePrefix(querycache.UserScope(userID))

	s.log.InfoContext(ctx, "reward redeemed",
		slog.String("user_id", userID.String()),
		slog.String("reward_id", rewardID.String()),
		slog.Int("cost", redemption.Cost),
	)
	return redemption, nil
}

// ListRedemptions returns the caller's most recent redemptions.
func (s *Service) ListRedemptions(ctx context.Context, limit int) ([]domain.Redemption, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit <= 0 {
		limit = DefaultRedemptionLimit
	}
	limit = min(limit, MaxRedemptionLimit)

	res, err := querycache.Get(ctx, s.cache, querycache.Request[[]domain.Redemption]{
		Key: querycache.ForUser(userID, "redemptions", fmt.Sprint(limit)),
		Fetch: func(ctx context.Context) ([]domain.Redemption, error) {
			return s.rewards.ListRedemptions(ctx, userID, limit)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("rewards.ListRedemptions: %w", err)
	}
	return res.Value, nil
}
