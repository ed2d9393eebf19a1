// Package progress reads and writes per-user episode progress, wallets and streaks.
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/adapter/postgrest"
	"github.com/heartmarshall/learnhub/internal/domain"
)

const (
	progressTable = "episode_progress"
	walletsTable  = "wallets"
	streaksTable  = "streaks"
)

type db interface {
	Select(ctx context.Context, q *postgrest.Query, out any) error
	SelectOne(ctx context.Context, q *postgrest.Query, out any) error
	Count(ctx context.Context, q *postgrest.Query) (int, error)
	Upsert(ctx context.Context, table, onConflict string, rows any, out any) error
}

// Repo provides progress persistence through the data API.
type Repo struct {
	db db
}

// New creates a new progress repository.
func New(client db) *Repo {
	return &Repo{db: client}
}

type progressRow struct {
	UserID          uuid.UUID  `json:"user_id"`
	EpisodeID       uuid.UUID  `json:"episode_id"`
	WatchedSeconds  int        `json:"watched_seconds"`
	ProgressPercent int        `json:"progress_percent"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completed_at"`
	UpdatedAt       time.Time  `json:"updated_at,omitzero"`
}

type walletRow struct {
	UserID      uuid.UUID `json:"user_id"`
	TotalPoints int       `json:"total_points"`
	Level       int       `json:"level"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type streakRow struct {
	UserID         uuid.UUID `json:"user_id"`
	CurrentStreak  int       `json:"current_streak"`
	MaxStreak      int       `json:"max_streak"`
	LastActiveDate *string   `json:"last_active_date"`
}

func (r streakRow) toDomain() (domain.Streak, error) {
	s := domain.Streak{UserID: r.UserID, CurrentStreak: r.CurrentStreak, MaxStreak: r.MaxStreak}
	if r.LastActiveDate != nil {
		d, err := time.Parse(time.DateOnly, *r.LastActiveDate)
		if err != nil {
			return s, fmt.Errorf("last_active_date: %w", err)
		}
		s.LastActiveDate = &d
	}
	return s, nil
}

func toDomain(rows []progressRow) []domain.EpisodeProgress {
	out := make([]domain.EpisodeProgress, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.EpisodeProgress(r))
	}
	return out
}

// ListByEpisodes returns the user's progress for the given episodes.
// Episodes without progress are absent from the result.
func (r *Repo) ListByEpisodes(ctx context.Context, userID uuid.UUID, episodeIDs []uuid.UUID) ([]domain.EpisodeProgress, error) {
	if len(episodeIDs) == 0 {
		return []domain.EpisodeProgress{}, nil
	}
	q := postgrest.In(postgrest.From(progressTable).Select("*").Eq("user_id", userID), "episode_id", episodeIDs)
	var rows []progressRow
	if err := r.db.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("progress.ListByEpisodes: %w", err)
	}
	return toDomain(rows), nil
}

// ListUpdatedSince returns the update timestamps of the user's progress rows
// changed at or after since, newest first.
func (r *Repo) ListUpdatedSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	q := postgrest.From(progressTable).Select("updated_at").
		Eq("user_id", userID).Gte("updated_at", since).Order("updated_at", false)
	var rows []struct {
		UpdatedAt time.Time `json:"updated_at"`
	}
	if err := r.db.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("progress.ListUpdatedSince: %w", err)
	}
	out := make([]time.Time, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.UpdatedAt)
	}
	return out, nil
}

// CountCompleted returns how many episodes the user has completed.
func (r *Repo) CountCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := r.db.Count(ctx, postgrest.From(progressTable).Eq("user_id", userID).Eq("completed", true))
	if err != nil {
		return 0, fmt.Errorf("progress.CountCompleted: %w", err)
	}
	return n, nil
}

// Upsert stores p, replacing any previous progress for the same episode.
func (r *Repo) Upsert(ctx context.Context, p domain.EpisodeProgress) (*domain.EpisodeProgress, error) {
	in := progressRow(p)
	in.UpdatedAt = time.Time{}
	var out []progressRow
	if err := r.db.Upsert(ctx, progressTable, "user_id,episode_id", in, &out); err != nil {
		return nil, fmt.Errorf("progress.Upsert: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("progress.Upsert: no row returned")
	}
	res := domain.EpisodeProgress(out[0])
	return &res, nil
}

// GetWallet returns the user's wallet. A user who never earned points has
// an empty level-1 wallet.
func (r *Repo) GetWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	var row walletRow
	err := r.db.SelectOne(ctx, postgrest.From(walletsTable).Select("*").Eq("user_id", userID), &row)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Wallet{UserID: userID, Level: 1}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("progress.GetWallet: %w", err)
	}
	w := domain.Wallet(row)
	return &w, nil
}

// GetStreak returns the user's streak, zero when none was recorded.
func (r *Repo) GetStreak(ctx context.Context, userID uuid.UUID) (*domain.Streak, error) {
	var row streakRow
	err := r.db.SelectOne(ctx, postgrest.From(streaksTable).Select("*").Eq("user_id", userID), &row)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.Streak{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("progress.GetStreak: %w", err)
	}
	s, err := row.toDomain()
	if err != nil {
		return nil, fmt.Errorf("progress.GetStreak: %w", err)
	}
	return &s, nil
}
