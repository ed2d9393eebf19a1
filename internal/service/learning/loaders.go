package learning

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/learnhub/internal/domain"
)

const (
	defaultBatchSize = 100
	defaultBatchWait = 2 * time.Millisecond
)

// loaders batch the per-subject and per-episode lookups of one overview.
// They are created per call: a batch runs under the caller's bearer token,
// so results must never be shared across users.
type loaders struct {
	episodesBySubjectID *dataloader.Loader[uuid.UUID, []domain.Episode]
	progressByEpisodeID *dataloader.Loader[uuid.UUID, *domain.EpisodeProgress]
}

func (s *Service) newLoaders(userID uuid.UUID, includeUnpublished bool) *loaders {
	return &loaders{
		episodesBySubjectID: newLoader(s.cfg, newEpisodesBatchFn(s.content, includeUnpublished)),
		progressByEpisodeID: newLoader(s.cfg, newProgressBatchFn(s.progress, userID)),
	}
}

// newLoader creates a dataloader.Loader with the configured batch parameters.
func newLoader[V any](cfg Config, batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](cfg.BatchWait),
		dataloader.WithBatchCapacity[uuid.UUID, V](cfg.BatchSize),
	)
}

// ---------------------------------------------------------------------------
// Episodes by SubjectID
// ---------------------------------------------------------------------------

func newEpisodesBatchFn(repo contentRepo, includeUnpublished bool) dataloader.BatchFunc[uuid.UUID, []domain.Episode] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Episode] {
		episodes, err := repo.ListEpisodesBySubjects(ctx, keys, includeUnpublished)
		if err != nil {
			return errorResults[[]domain.Episode](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Episode, len(keys))
		for _, e := range episodes {
			grouped[e.SubjectID] = append(grouped[e.SubjectID], e)
		}

		return mapResults(keys, grouped, emptySlice[domain.Episode])
	}
}

// ---------------------------------------------------------------------------
// Progress by EpisodeID (1:1 nullable)
// ---------------------------------------------------------------------------

func newProgressBatchFn(repo progressRepo, userID uuid.UUID) dataloader.BatchFunc[uuid.UUID, *domain.EpisodeProgress] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.EpisodeProgress] {
		rows, err := repo.ListByEpisodes(ctx, userID, keys)
		if err != nil {
			return errorResults[*domain.EpisodeProgress](len(keys), err)
		}

		byEpisode := make(map[uuid.UUID]*domain.EpisodeProgress, len(rows))
		for i := range rows {
			byEpisode[rows[i].EpisodeID] = &rows[i]
		}

		results := make([]*dataloader.Result[*domain.EpisodeProgress], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.EpisodeProgress]{Data: byEpisode[key]}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}
