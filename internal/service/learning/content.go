package learning

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/querycache"
)

// ListCategories returns the categories visible to the caller.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	admin := audience(ctx) == domain.AudienceAdmin
	res, err := querycache.Get(ctx, s.cache, querycache.Request[[]domain.Category]{
		Key: s.contentKey(ctx, "categories"),
		Fetch: func(ctx context.Context) ([]domain.Category, error) {
			return s.content.ListCategories(ctx, admin)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("learning.ListCategories: %w", err)
	}
	return res.Value, nil
}

// ListSubjects returns the subjects of a category.
func (s *Service) ListSubjects(ctx context.Context, categoryID uuid.UUID) ([]domain.Subject, error) {
	if categoryID == uuid.Nil {
		return nil, domain.NewValidationError("category_id", "required")
	}
	admin := audience(ctx) == domain.AudienceAdmin
	res, err := querycache.Get(ctx, s.cache, querycache.Request[[]domain.Subject]{
		Key: s.contentKey(ctx, "subjects", categoryID.String()),
		Fetch: func(ctx context.Context) ([]domain.Subject, error) {
			return s.content.ListSubjects(ctx, categoryID, admin)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("learning.ListSubjects: %w", err)
	}
	return res.Value, nil
}

// GetSubject returns one subject.
func (s *Service) GetSubject(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("subject_id", "required")
	}
	res, err := querycache.Get(ctx, s.cache, querycache.Request[*domain.Subject]{
		Key: s.contentKey(ctx, "subject", id.String()),
		Fetch: func(ctx context.Context) (*domain.Subject, error) {
			return s.content.GetSubject(ctx, id)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("learning.GetSubject: %w", err)
	}
	return res.Value, nil
}

// ListEpisodes returns the episodes of a subject in play order.
func (s *Service) ListEpisodes(ctx context.Context, subjectID uuid.UUID) ([]domain.Episode, error) {
	if subjectID == uuid.Nil {
		return nil, domain.NewValidationError("subject_id", "required")
	}
	admin := audience(ctx) == domain.AudienceAdmin
	res, err := querycache.Get(ctx, s.cache, querycache.Request[[]domain.Episode]{
		Key: s.contentKey(ctx, "episodes", subjectID.String()),
		Fetch: func(ctx context.Context) ([]domain.Episode, error) {
			return s.content.ListEpisodes(ctx, subjectID, admin)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("learning.ListEpisodes: %w", err)
	}
	return res.Value, nil
}

// GetEpisode returns one episode.
func (s *Service) GetEpisode(ctx context.Context, id uuid.UUID) (*domain.Episode, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("episode_id", "required")
	}
	res, err := querycache.Get(ctx, s.cache, querycache.Request[*domain.Episode]{
		Key: s.contentKey(ctx, "episode", id.String()),
		Fetch: func(ctx context.Context) (*domain.Episode, error) {
			return s.content.GetEpisode(ctx, id)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("learning.GetEpisode: %w", err)
	}
	return res.Value, nil
}
