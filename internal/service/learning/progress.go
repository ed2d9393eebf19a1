package learning

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/querycache"
	"github.com/heartmarshall/learnhub/internal/stats"
	"github.com/heartmarshall/learnhub/pkg/ctxutil"
)

// EpisodesProgress returns the caller's progress keyed by episode id.
// Episodes without progress are absent. The cache key is order-insensitive
// in ids.
func (s *Service) EpisodesProgress(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.EpisodeProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	res, err := querycache.Get(ctx, s.cache, querycache.Request[map[uuid.UUID]domain.EpisodeProgress]{
		Key:      querycache.ForUser(userID, "progress", querycache.IDSet(ids)),
		Disabled: len(ids) == 0,
		Fetch: func(ctx context.Context) (map[uuid.UUID]domain.EpisodeProgress, error) {
			rows, err := s.progress.ListByEpisodes(ctx, userID, ids)
			if err != nil {
				return nil, err
			}
			out := make(map[uuid.UUID]domain.EpisodeProgress, len(rows))
			for _, p := range rows {
				out[p.EpisodeID] = p
			}
			return out, nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("learning.EpisodesProgress: %w", err)
	}
	if res.Value == nil {
		return map[uuid.UUID]domain.EpisodeProgress{}, nil
	}
	return res.Value, nil
}

// SaveProgress records the watch state of an episode. An episode is completed
// once ProgressPercent reaches domain.CompletionThreshold; a completed episode
// stays completed.
func (s *Service) SaveProgress(ctx context.Context, input SaveProgressInput) (*domain.EpisodeProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.progress.ListByEpisodes(ctx, userID, []uuid.UUID{input.EpisodeID})
	if err != nil {
		return nil, fmt.Errorf("learning.SaveProgress: load: %w", err)
	}

	p := domain.EpisodeProgress{
		UserID:          userID,
		EpisodeID:       input.EpisodeID,
		WatchedSeconds:  input.WatchedSeconds,
		ProgressPercent: input.ProgressPercent,
	}
	switch {
	case len(existing) > 0 && existing[0].Completed:
		p.Completed = true
		p.CompletedAt = existing[0].CompletedAt
		p.ProgressPercent = max(p.ProgressPercent, existing[0].ProgressPercent)
	case input.ProgressPercent >= domain.CompletionThreshold:
		now := s.now().UTC()
		p.Completed = true
		p.CompletedAt = &now
	}

	saved, err := s.progress.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("learning.SaveProgress: %w", err)
	}

	s.cache.InvalidatePrefix(querycache.UserScope(userID))

	if saved.Completed && (len(existing) == 0 || !existing[0].Completed) {
		s.log.InfoContext(ctx, "episode completed",
			slog.String("user_id", userID.String()),
			slog.String("episode_id", input.EpisodeID.String()),
		)
	}
	return saved, nil
}

// Statistics returns the caller's dashboard summary.
func (s *Service) Statistics(ctx context.Context) (stats.Summary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return stats.Summary{}, domain.ErrUnauthorized
	}

	res, err := querycache.Get(ctx, s.cache, querycache.Request[stats.Summary]{
		Key:         querycache.ForUser(userID, "stats"),
		FreshWindow: s.cfg.StatsFresh,
		Fetch: func(ctx context.Context) (stats.Summary, error) {
			return s.loadStatistics(ctx, userID)
		},
	})
	if err != nil {
		return stats.Summary{}, fmt.Errorf("learning.Statistics: %w", err)
	}
	return res.Value, nil
}

func (s *Service) loadStatistics(ctx context.Context, userID uuid.UUID) (stats.Summary, error) {
	now := s.now()

	var (
		wallet    *domain.Wallet
		streak    *domain.Streak
		updates   []time.Time
		completed int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		wallet, err = s.progress.GetWallet(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		streak, err = s.progress.GetStreak(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		updates, err = s.progress.ListUpdatedSince(gctx, userID, now.Add(-ActivityWindow))
		return err
	})
	g.Go(func() (err error) {
		completed, err = s.progress.CountCompleted(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return stats.Summary{}, err
	}

	return stats.Summarize(wallet, streak, updates, completed, now), nil
}
