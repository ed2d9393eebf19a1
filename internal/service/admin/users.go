package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	profilerepo "github.com/heartmarshall/learnhub/internal/adapter/postgrest/profile"
	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/querycache"
	"github.com/heartmarshall/learnhub/internal/validate"
)

// ErrSelfLockout is returned when an admin tries to suspend or demote themselves.
var ErrSelfLockout = fmt.Errorf("%w: admins cannot suspend or demote themselves", domain.ErrValidation)

const (
	DefaultUserLimit = 50
	MaxUserLimit     = 200
)

// ListUsersInput filters the user list.
type ListUsersInput struct {
	Search string          `json:"search" validate:"max=100"`
	Role   domain.UserRole `json:"role" validate:"omitempty,oneof=member admin"`
	Limit  int             `json:"limit" validate:"gte=0,lte=200"`
	Offset int             `json:"offset" validate:"gte=0"`
}

// ListUsers returns a page of profiles and the total match count.
func (s *Service) ListUsers(ctx context.Context, input ListUsersInput) ([]domain.Profile, int, error) {
	if _, err := caller(ctx); err != nil {
		return nil, 0, err
	}
	if err := validate.Struct(input); err != nil {
		return nil, 0, err
	}
	if input.Limit == 0 {
		input.Limit = DefaultUserLimit
	}

	users, total, err := s.profiles.List(ctx, profilerepo.ListFilter{
		Search: input.Search,
		Role:   input.Role,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("admin.ListUsers: %w", err)
	}
	return users, total, nil
}

// SetUserActive suspends or reactivates a user. Admins cannot suspend themselves.
func (s *Service) SetUserActive(ctx context.Context, targetID uuid.UUID, active bool) (*domain.Profile, error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if targetID == callerID && !active {
		return nil, ErrSelfLockout
	}

	p, err := s.profiles.SetActive(ctx, targetID, active)
	if err != nil {
		return nil, fmt.Errorf("admin.SetUserActive: %w", err)
	}
	s.cache.InvalidatePrefix(querycache.UserScope(targetID))

	s.log.InfoContext(ctx, "user active flag updated",
		slog.String("target_user_id", targetID.String()),
		slog.Bool("active", active),
	)
	return p, nil
}

// SetUserRole changes the role of a user. Admins cannot demote themselves.
func (s *Service) SetUserRole(ctx context.Context, targetID uuid.UUID, role domain.UserRole) (*domain.Profile, error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of member admin")
	}
	if targetID == callerID && !role.IsAdmin() {
		return nil, ErrSelfLockout
	}

	p, err := s.profiles.SetRole(ctx, targetID, role)
	if err != nil {
		return nil, fmt.Errorf("admin.SetUserRole: %w", err)
	}
	s.cache.InvalidatePrefix(querycache.UserScope(targetID))

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetID.String()),
		slog.String("new_role", role.String()),
	)
	return p, nil
}
