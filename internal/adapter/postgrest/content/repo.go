// Package content reads and writes categories, subjects and episodes.
// Unpublished rows are only visible to admins; row-level security enforces
// that, and includeUnpublished only widens the query for admin callers.
package content

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/adapter/postgrest"
	"github.com/heartmarshall/learnhub/internal/domain"
)

const (
	categoriesTable = "categories"
	subjectsTable   = "subjects"
	episodesTable   = "episodes"
)

type db interface {
	Select(ctx context.Context, q *postgrest.Query, out any) error
	SelectOne(ctx context.Context, q *postgrest.Query, out any) error
	Insert(ctx context.Context, table string, rows any, out any) error
	Update(ctx context.Context, q *postgrest.Query, patch any, out any) error
	Delete(ctx context.Context, q *postgrest.Query) error
}

// Repo provides content persistence through the data API.
type Repo struct {
	db db
}

// New creates a new content repository.
func New(client db) *Repo {
	return &Repo{db: client}
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type categoryRow struct {
	ID          uuid.UUID `json:"id,omitzero"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CoverPath   *string   `json:"cover_path"`
	SortOrder   int       `json:"sort_order"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

func (r categoryRow) toDomain() domain.Category {
	return domain.Category(r)
}

type subjectRow struct {
	ID          uuid.UUID `json:"id,omitzero"`
	CategoryID  uuid.UUID `json:"category_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CoverPath   *string   `json:"cover_path"`
	SortOrder   int       `json:"sort_order"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

func (r subjectRow) toDomain() domain.Subject {
	return domain.Subject(r)
}

type episodeRow struct {
	ID              uuid.UUID `json:"id,omitzero"`
	SubjectID       uuid.UUID `json:"subject_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	VideoURL        string    `json:"video_url"`
	DurationSeconds int       `json:"duration_seconds"`
	Points          int       `json:"points"`
	SortOrder       int       `json:"sort_order"`
	IsPublished     bool      `json:"is_published"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
}

func (r episodeRow) toDomain() domain.Episode {
	return domain.Episode(r)
}

func mapRows[R any, D any](rows []R, conv func(R) D) []D {
	out := make([]D, 0, len(rows))
	for _, r := range rows {
		out = append(out, conv(r))
	}
	return out
}

func published(q *postgrest.Query, includeUnpublished bool) *postgrest.Query {
	if includeUnpublished {
		return q
	}
	return q.Eq("is_published", true)
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// ListCategories returns categories by sort order.
func (r *Repo) ListCategories(ctx context.Context, includeUnpublished bool) ([]domain.Category, error) {
	q := published(postgrest.From(categoriesTable).Select("*"), includeUnpublished).Order("sort_order", true).Order("name", true)
	var rows []categoryRow
	if err := r.db.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("content.ListCategories: %w", err)
	}
	return mapRows(rows, categoryRow.toDomain), nil
}

// ListSubjects returns the subjects of a category by sort order.
func (r *Repo) ListSubjects(ctx context.Context, categoryID uuid.UUID, includeUnpublished bool) ([]domain.Subject, error) {
	q := published(postgrest.From(subjectsTable).Select("*").Eq("category_id", categoryID), includeUnpublished).
		Order("sort_order", true)
	var rows []subjectRow
	if err := r.db.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("content.ListSubjects: %w", err)
	}
	return mapRows(rows, subjectRow.toDomain), nil
}

// GetSubject returns one subject.
func (r *Repo) GetSubject(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	var row subjectRow
	if err := r.db.SelectOne(ctx, postgrest.From(subjectsTable).Select("*").Eq("id", id), &row); err != nil {
		return nil, fmt.Errorf("content.GetSubject: %w", err)
	}
	s := row.toDomain()
	return &s, nil
}

// ListEpisodes returns the episodes of a subject by sort order.
func (r *Repo) ListEpisodes(ctx context.Context, subjectID uuid.UUID, includeUnpublished bool) ([]domain.Episode, error) {
	return r.ListEpisodesBySubjects(ctx, []uuid.UUID{subjectID}, includeUnpublished)
}

// ListEpisodesBySubjects returns the episodes of several subjects in one query.
func (r *Repo) ListEpisodesBySubjects(ctx context.Context, subjectIDs []uuid.UUID, includeUnpublished bool) ([]domain.Episode, error) {
	if len(subjectIDs) == 0 {
		return []domain.Episode{}, nil
	}
	q := postgrest.In(postgrest.From(episodesTable).Select("*"), "subject_id", subjectIDs)
	q = published(q, includeUnpublished).Order("subject_id", true).Order("sort_order", true)
	var rows []episodeRow
	if err := r.db.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("content.ListEpisodesBySubjects: %w", err)
	}
	return mapRows(rows, episodeRow.toDomain), nil
}

// GetEpisode returns one episode.
func (r *Repo) GetEpisode(ctx context.Context, id uuid.UUID) (*domain.Episode, error) {
	var row episodeRow
	if err := r.db.SelectOne(ctx, postgrest.From(episodesTable).Select("*").Eq("id", id), &row); err != nil {
		return nil, fmt.Errorf("content.GetEpisode: %w", err)
	}
	e := row.toDomain()
	return &e, nil
}

// ---------------------------------------------------------------------------
// Writes (admin only, enforced by row-level security)
// ---------------------------------------------------------------------------

// CreateCategory inserts c and returns the stored row.
func (r *Repo) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	out, err := insertOne(ctx, r.db, categoriesTable, categoryRow(c), categoryRow.toDomain)
	if err != nil {
		return nil, fmt.Errorf("content.CreateCategory: %w", err)
	}
	return out, nil
}

// UpdateCategory replaces the editable fields of c.
func (r *Repo) UpdateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	row := categoryRow(c)
	row.ID, row.CreatedAt = uuid.Nil, time.Time{}
	out, err := updateOne(ctx, r.db, categoriesTable, c.ID, row, categoryRow.toDomain)
	if err != nil {
		return nil, fmt.Errorf("content.UpdateCategory: %w", err)
	}
	return out, nil
}

// DeleteCategory removes a category.
func (r *Repo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := r.db.Delete(ctx, postgrest.From(categoriesTable).Eq("id", id)); err != nil {
		return fmt.Errorf("content.DeleteCategory: %w", err)
	}
	return nil
}

// CreateSubject inserts s and returns the stored row.
func (r *Repo) CreateSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error) {
	out, err := insertOne(ctx, r.db, subjectsTable, subjectRow(s), subjectRow.toDomain)
	if err != nil {
		return nil, fmt.Errorf("content.CreateSubject: %w", err)
	}
	return out, nil
}

// UpdateSubject replaces the editable fields of s.
func (r *Repo) UpdateSubject(ctx context.Context, s domain.Subject) (*domain.Subject, error) {
	row := subjectRow(s)
	row.ID, row.CreatedAt = uuid.Nil, time.Time{}
	out, err := updateOne(ctx, r.db, subjectsTable, s.ID, row, subjectRow.toDomain)
	if err != nil {
		return nil, fmt.Errorf("content.UpdateSubject: %w", err)
	}
	return out, nil
}

// DeleteSubject removes a subject.
func (r *Repo) DeleteSubject(ctx context.Context, id uuid.UUID) error {
	if err := r.db.Delete(ctx, postgrest.From(subjectsTable).Eq("id", id)); err != nil {
		return fmt.Errorf("content.DeleteSubject: %w", err)
	}
	return nil
}

// CreateEpisode inserts e and returns the stored row.
func (r *Repo) CreateEpisode(ctx context.Context, e domain.Episode) (*domain.Episode, error) {
	out, err := insertOne(ctx, r.db, episodesTable, episodeRow(e), episodeRow.toDomain)
	if err != nil {
		return nil, fmt.Errorf("content.CreateEpisode: %w", err)
	}
	return out, nil
}

// UpdateEpisode replaces the editable fields of e.
func (r *Repo) UpdateEpisode(ctx context.Context, e domain.Episode) (*domain.Episode, error) {
	row := episodeRow(e)
	row.ID, row.CreatedAt = uuid.Nil, time.Time{}
	out, err := updateOne(ctx, r.db, episodesTable, e.ID, row, episodeRow.toDomain)
	if err != nil {
		return nil, fmt.Errorf("content.UpdateEpisode: %w", err)
	}
	return out, nil
}

// DeleteEpisode removes an episode.
func (r *Repo) DeleteEpisode(ctx context.Context, id uuid.UUID) error {
	if err := r.db.Delete(ctx, postgrest.From(episodesTable).Eq("id", id)); err != nil {
		return fmt.Errorf("content.DeleteEpisode: %w", err)
	}
	return nil
}

func insertOne[R any, D any](ctx context.Context, db db, table string, row R, conv func(R) D) (*D, error) {
	var out []R
	if err := db.Insert(ctx, table, row, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("insert returned no rows")
	}
	d := conv(out[0])
	return &d, nil
}

func updateOne[R any, D any](ctx context.Context, db db, table string, id uuid.UUID, row R, conv func(R) D) (*D, error) {
	var out []R
	if err := db.Update(ctx, postgrest.From(table).Eq("id", id), row, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.ErrNotFound
	}
	d := conv(out[0])
	return &d, nil
}
