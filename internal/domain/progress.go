package domain

import (
	"time"

	"github.com/google/uuid"
)

// CompletionThreshold is the watched percentage at which an episode counts as completed.
const CompletionThreshold = 90

// EpisodeProgress is the per-user watch state of one episode.
type EpisodeProgress struct {
	UserID          uuid.UUID
	EpisodeID       uuid.UUID
	WatchedSeconds  int
	ProgressPercent int
	Completed       bool
	CompletedAt     *time.Time
	UpdatedAt       time.Time
}

// Wallet is the aggregate of points a user has earned.
type Wallet struct {
	UserID      uuid.UUID
	TotalPoints int
	Level       int
	UpdatedAt   time.Time
}

// Streak tracks consecutive active days.
type Streak struct {
	UserID         uuid.UUID
	CurrentStreak  int
	MaxStreak      int
	LastActiveDate *time.Time
}
