package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/service/learning"
	"github.com/heartmarshall/learnhub/internal/validate"
)

// CategoryInput holds the editable fields of a category.
type CategoryInput struct {
	Name        string  `json:"name" validate:"notblank,max=100"`
	Description string  `json:"description" validate:"max=2000"`
	CoverPath   *string `json:"cover_path" validate:"omitnil,max=512"`
	SortOrder   int     `json:"sort_order" validate:"gte=0"`
	IsPublished bool    `json:"is_published"`
}

func (in CategoryInput) toDomain(id uuid.UUID) domain.Category {
	return domain.Category{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		CoverPath:   in.CoverPath,
		SortOrder:   in.SortOrder,
		IsPublished: in.IsPublished,
	}
}

// SubjectInput holds the editable fields of a subject.
type SubjectInput struct {
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Title       string    `json:"title" validate:"notblank,max=200"`
	Description string    `json:"description" validate:"max=5000"`
	CoverPath   *string   `json:"cover_path" validate:"omitnil,max=512"`
	SortOrder   int       `json:"sort_order" validate:"gte=0"`
	IsPublished bool      `json:"is_published"`
}

func (in SubjectInput) toDomain(id uuid.UUID) domain.Subject {
	return domain.Subject{
		ID:          id,
		CategoryID:  in.CategoryID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		CoverPath:   in.CoverPath,
		SortOrder:   in.SortOrder,
		IsPublished: in.IsPublished,
	}
}

// EpisodeInput holds the editable fields of an episode.
type EpisodeInput struct {
	SubjectID       uuid.UUID `json:"subject_id" validate:"required"`
	Title           string    `json:"title" validate:"notblank,max=200"`
	Description     string    `json:"description" validate:"max=5000"`
	VideoURL        string    `json:"video_url" validate:"required,url,max=1024"`
	DurationSeconds int       `json:"duration_seconds" validate:"gte=0"`
	Points          int       `json:"points" validate:"gte=0,lte=10000"`
	SortOrder       int       `json:"sort_order" validate:"gte=0"`
	IsPublished     bool      `json:"is_published"`
}

func (in EpisodeInput) toDomain(id uuid.UUID) domain.Episode {
	return domain.Episode{
		ID:              id,
		SubjectID:       in.SubjectID,
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		VideoURL:        strings.TrimSpace(in.VideoURL),
		DurationSeconds: in.DurationSeconds,
		Points:          in.Points,
		SortOrder:       in.SortOrder,
		IsPublished:     in.IsPublished,
	}
}

// write runs one content mutation after the admin and input checks, then
// marks every cached content listing stale.
func write[T any](ctx context.Context, s *Service, op string, input any, fn func() (T, error)) (T, error) {
	var zero T
	if _, err := caller(ctx); err != nil {
		return zero, err
	}
	if input != nil {
		if err := validate.Struct(input); err != nil {
			return zero, err
		}
	}
	out, err := fn()
	if err != nil {
		return zero, fmt.Errorf("admin.%s: %w", op, err)
	}
	s.cache.InvalidatePrefix(learning.ContentPrefix())
	return out, nil
}

func requireID(id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

func (s *Service) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	return write(ctx, s, "CreateCategory", input, func() (*domain.Category, error) {
		return s.content.CreateCategory(ctx, input.toDomain(uuid.Nil))
	})
}

func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, input CategoryInput) (*domain.Category, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return write(ctx, s, "UpdateCategory", input, func() (*domain.Category, error) {
		return s.content.UpdateCategory(ctx, input.toDomain(id))
	})
}

// DeleteCategory removes a category. The backend cascades to its subjects
// and their episodes.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := requireID(id); err != nil {
		return err
	}
	_, err := write(ctx, s, "DeleteCategory", nil, func() (struct{}, error) {
		return struct{}{}, s.content.DeleteCategory(ctx, id)
	})
	return err
}

// ---------------------------------------------------------------------------
// Subjects
// ---------------------------------------------------------------------------

func (s *Service) CreateSubject(ctx context.Context, input SubjectInput) (*domain.Subject, error) {
	return write(ctx, s, "CreateSubject", input, func() (*domain.Subject, error) {
		return s.content.CreateSubject(ctx, input.toDomain(uuid.Nil))
	})
}

func (s *Service) UpdateSubject(ctx context.Context, id uuid.UUID, input SubjectInput) (*domain.Subject, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return write(ctx, s, "UpdateSubject", input, func() (*domain.Subject, error) {
		return s.content.UpdateSubject(ctx, input.toDomain(id))
	})
}

func (s *Service) DeleteSubject(ctx context.Context, id uuid.UUID) error {
	if err := requireID(id); err != nil {
		return err
	}
	_, err := write(ctx, s, "DeleteSubject", nil, func() (struct{}, error) {
		return struct{}{}, s.content.DeleteSubject(ctx, id)
	})
	return err
}

// ---------------------------------------------------------------------------
// Episodes
// ---------------------------------------------------------------------------

func (s *Service) CreateEpisode(ctx context.Context, input EpisodeInput) (*domain.Episode, error) {
	return write(ctx, s, "CreateEpisode", input, func() (*domain.Episode, error) {
		return s.content.CreateEpisode(ctx, input.toDomain(uuid.Nil))
	})
}

func (s *Service) UpdateEpisode(ctx context.Context, id uuid.UUID, input EpisodeInput) (*domain.Episode, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return write(ctx, s, "UpdateEpisode", input, func() (*domain.Episode, error) {
		return s.content.UpdateEpisode(ctx, input.toDomain(id))
	})
}

func (s *Service) DeleteEpisode(ctx context.Context, id uuid.UUID) error {
	if err := requireID(id); err != nil {
		return err
	}
	_, err := write(ctx, s, "DeleteEpisode", nil, func() (struct{}, error) {
		return struct{}{}, s.content.DeleteEpisode(ctx, id)
	})
	return err
}
