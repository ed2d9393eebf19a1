package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reward is an item members can redeem with wallet points.
type Reward struct {
	ID          uuid.UUID
	Name        string
	Description string
	Cost        int
	Stock       *int
	ImagePath   *string
	IsActive    bool
	CreatedAt   time.Time
}

// InStock reports whether the reward can still be redeemed. Nil stock is unlimited.
func (r *Reward) InStock() bool {
	return r.Stock == nil || *r.Stock > 0
}

// Redemption records a reward exchanged for points.
type Redemption struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	RewardID  uuid.UUID
	Cost      int
	CreatedAt time.Time
}
