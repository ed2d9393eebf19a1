package learning

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/querycache"
	"github.com/heartmarshall/learnhub/pkg/ctxutil"
)

// SubjectOverview is one subject card of a category page.
type SubjectOverview struct {
	Subject           domain.Subject
	Episodes          int
	CompletedEpisodes int
	// Percent is the share of completed episodes, 0 to 100.
	Percent      int
	PointsEarned int
	PointsTotal  int
}

// CategoryOverview returns the subjects of a category with the caller's
// completion of each. Episode and progress lookups of all subjects are
// batched into one request each.
func (s *Service) CategoryOverview(ctx context.Context, categoryID uuid.UUID) ([]SubjectOverview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	subjects, err := s.ListSubjects(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	aud := audience(ctx)
	res, err := querycache.Get(ctx, s.cache, querycache.Request[[]SubjectOverview]{
		Key: querycache.ForUser(userID, "overview", string(aud), categoryID.String()),
		Fetch: func(ctx context.Context) ([]SubjectOverview, error) {
			return s.buildOverview(ctx, userID, subjects, aud == domain.AudienceAdmin)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("learning.CategoryOverview: %w", err)
	}
	return res.Value, nil
}

func (s *Service) buildOverview(ctx context.Context, userID uuid.UUID, subjects []domain.Subject, includeUnpublished bool) ([]SubjectOverview, error) {
	l := s.newLoaders(userID, includeUnpublished)
	out := make([]SubjectOverview, len(subjects))

	g, gctx := errgroup.WithContext(ctx)
	for i, subj := range subjects {
		g.Go(func() error {
			episodes, err := l.episodesBySubjectID.Load(gctx, subj.ID)()
			if err != nil {
				return err
			}

			ids := make([]uuid.UUID, len(episodes))
			for j, e := range episodes {
				ids[j] = e.ID
			}
			progress, errs := l.progressByEpisodeID.LoadMany(gctx, ids)()
			if err := errors.Join(errs...); err != nil {
				return err
			}

			ov := SubjectOverview{Subject: subj, Episodes: len(episodes)}
			for j, e := range episodes {
				ov.PointsTotal += e.Points
				if p := progress[j]; p != nil && p.Completed {
					ov.CompletedEpisodes++
					ov.PointsEarned += e.Points
				}
			}
			if ov.Episodes > 0 {
				ov.Percent = ov.CompletedEpisodes * 100 / ov.Episodes
			}
			out[i] = ov
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
