package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/service/rewards"
	"github.com/heartmarshall/learnhub/internal/validate"
)

// RewardInput holds the editable fields of a reward. A nil stock is unlimited.
type RewardInput struct {
	Name        string  `json:"name" validate:"notblank,max=100"`
	Description string  `json:"description" validate:"max=2000"`
	Cost        int     `json:"cost" validate:"gt=0"`
	Stock       *int    `json:"stock" validate:"omitnil,gte=0"`
	ImagePath   *string `json:"image_path" validate:"omitnil,max=512"`
	IsActive    bool    `json:"is_active"`
}

func (in RewardInput) toDomain(id uuid.UUID) domain.Reward {
	return domain.Reward{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Cost:        in.Cost,
		Stock:       in.Stock,
		ImagePath:   in.ImagePath,
		IsActive:    in.IsActive,
	}
}

// CreateReward adds a reward to the catalog.
func (s *Service) CreateReward(ctx context.Context, input RewardInput) (*domain.Reward, error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	rw, err := s.rewards.CreateReward(ctx, input.toDomain(uuid.Nil))
	if err != nil {
		return nil, fmt.Errorf("admin.CreateReward: %w", err)
	}
	s.cache.Invalidate(rewards.CatalogKey())
	return rw, nil
}

// UpdateReward replaces the editable fields of a reward. Deactivated rewards
// disappear from the member catalog.
func (s *Service) UpdateReward(ctx context.Context, id uuid.UUID, input RewardInput) (*domain.Reward, error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	if err := requireID(id); err != nil {
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	rw, err := s.rewards.UpdateReward(ctx, input.toDomain(id))
	if err != nil {
		return nil, fmt.Errorf("admin.UpdateReward: %w", err)
	}
	s.cache.Invalidate(rewards.CatalogKey())
	return rw, nil
}
