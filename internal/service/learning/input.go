package learning

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
)

// SaveProgressInput is the watch state reported by the player.
type SaveProgressInput struct {
	EpisodeID       uuid.UUID
	WatchedSeconds  int
	ProgressPercent int
}

// Validate checks all fields and collects all errors.
func (i SaveProgressInput) Validate() error {
	var errs []domain.FieldError
	if i.EpisodeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "episode_id", Message: "required"})
	}
	if i.WatchedSeconds < 0 {
		errs = append(errs, domain.FieldError{Field: "watched_seconds", Message: "must be non-negative"})
	}
	if i.ProgressPercent < 0 || i.ProgressPercent > 100 {
		errs = append(errs, domain.FieldError{Field: "progress_percent", Message: "must be between 0 and 100"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
