package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/validate"
	"github.com/heartmarshall/learnhub/pkg/ctxutil"
)

// UpdateProfileInput holds the member-editable profile fields.
// Nil fields are left unchanged; an empty phone clears it.
type UpdateProfileInput struct {
	FullName *string `json:"full_name" validate:"omitnil,notblank,max=100"`
	Phone    *string `json:"phone" validate:"omitnil,max=32"`
}

// UpdateProfile changes the caller's own profile.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	upd := domain.ProfileUpdate{}
	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		upd.FullName = &name
	}
	if input.Phone != nil {
		phone := strings.TrimSpace(*input.Phone)
		upd.Phone = &phone
	}
	if upd.IsEmpty() {
		return nil, domain.NewValidationError("profile", "nothing to update")
	}

	p, err := s.profiles.Update(ctx, userID, upd)
	if err != nil {
		return nil, fmt.Errorf("profile.UpdateProfile: %w", err)
	}
	return p, nil
}
