// Package reward reads the reward catalog and the user's redemptions.
package reward

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/adapter/postgrest"
	"github.com/heartmarshall/learnhub/internal/domain"
)

const (
	rewardsTable     = "rewards"
	redemptionsTable = "reward_redemptions"
	redeemFn         = "redeem_reward"
)

type db interface {
	Select(ctx context.Context, q *postgrest.Query, out any) error
	SelectOne(ctx context.Context, q *postgrest.Query, out any) error
	Insert(ctx context.Context, table string, rows any, out any) error
	Update(ctx context.Context, q *postgrest.Query, patch any, out any) error
	RPC(ctx context.Context, fn string, args any, out any) error
}

// Repo provides reward persistence through the data API.
type Repo struct {
	db db
}

// New creates a new reward repository.
func New(client db) *Repo {
	return &Repo{db: client}
}

type rewardRow struct {
	ID          uuid.UUID `json:"id,omitzero"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cost        int       `json:"cost"`
	Stock       *int      `json:"stock"`
	ImagePath   *string   `json:"image_path"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

type redemptionRow struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RewardID  uuid.UUID `json:"reward_id"`
	Cost      int       `json:"cost"`
	CreatedAt time.Time `json:"created_at"`
}

// ListRewards returns rewards cheapest first. Inactive rewards are included
// only when includeInactive is set.
func (r *Repo) ListRewards(ctx context.Context, includeInactive bool) ([]domain.Reward, error) {
	q := postgrest.From(rewardsTable).Select("*")
	if !includeInactive {
		q = q.Eq("is_active", true)
	}
	q = q.Order("cost", true).Order("name", true)

	var rows []rewardRow
	if err := r.db.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("reward.ListRewards: %w", err)
	}
	out := make([]domain.Reward, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.Reward(rw))
	}
	return out, nil
}

// GetReward returns one reward.
func (r *Repo) GetReward(ctx context.Context, id uuid.UUID) (*domain.Reward, error) {
	var row rewardRow
	if err := r.db.SelectOne(ctx, postgrest.From(rewardsTable).Select("*").Eq("id", id), &row); err != nil {
		return nil, fmt.Errorf("reward.GetReward: %w", err)
	}
	rw := domain.Reward(row)
	return &rw, nil
}

// CreateReward inserts a reward.
func (r *Repo) CreateReward(ctx context.Context, rw domain.Reward) (*domain.Reward, error) {
	var out []rewardRow
	if err := r.db.Insert(ctx, rewardsTable, rewardRow(rw), &out); err != nil {
		return nil, fmt.Errorf("reward.CreateReward: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("reward.CreateReward: no row returned")
	}
	res := domain.Reward(out[0])
	return &res, nil
}

// UpdateReward replaces the editable fields of rw.
func (r *Repo) UpdateReward(ctx context.Context, rw domain.Reward) (*domain.Reward, error) {
	row := rewardRow(rw)
	row.ID, row.CreatedAt = uuid.Nil, time.Time{}
	var out []rewardRow
	if err := r.db.Update(ctx, postgrest.From(rewardsTable).Eq("id", rw.ID), row, &out); err != nil {
		return nil, fmt.Errorf("reward.UpdateReward: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("reward.UpdateReward: %w", domain.ErrNotFound)
	}
	res := domain.Reward(out[0])
	return &res, nil
}

// Redeem exchanges wallet points for a reward. The database function checks
// the balance and stock and debits both in one transaction; an insufficient
// balance or empty stock surfaces as a check violation.
func (r *Repo) Redeem(ctx context.Context, rewardID uuid.UUID) (*domain.Redemption, error) {
	var row redemptionRow
	if err := r.db.RPC(ctx, redeemFn, map[string]any{"p_reward_id": rewardID}, &row); err != nil {
		return nil, fmt.Errorf("reward.Redeem: %w", err)
	}
	rd := domain.Redemption(row)
	return &rd, nil
}

// ListRedemptions returns the user's redemptions, newest first.
func (r *Repo) ListRedemptions(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Redemption, error) {
	q := postgrest.From(redemptionsTable).Select("*").Eq("user_id", userID).Order("created_at", false).Limit(limit)
	var rows []redemptionRow
	if err := r.db.Select(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("reward.ListRedemptions: %w", err)
	}
	out := make([]domain.Redemption, 0, len(rows))
	for _, rw := range rows {
		out = append(out, domain.Redemption(rw))
	}
	return out, nil
}
