// Package profile reads and updates rows of the profiles table.
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/adapter/postgrest"
	"github.com/heartmarshall/learnhub/internal/domain"
)

const table = "profiles"

type db interface {
	Select(ctx context.Context, q *postgrest.Query, out any) error
	SelectOne(ctx context.Context, q *postgrest.Query, out any) error
	Count(ctx context.Context, q *postgrest.Query) (int, error)
	Update(ctx context.Context, q *postgrest.Query, patch any, out any) error
}

// Repo provides profile persistence through the data API.
type Repo struct {
	db db
}

// New creates a new profile repository.
func New(client db) *Repo {
	return &Repo{db: client}
}

type row struct {
	ID         uuid.UUID `json:"id"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"is_active"`
	AvatarPath *string   `json:"avatar_path"`
	FullName   *string   `json:"full_name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r row) toDomain() domain.Profile {
	p := domain.Profile{
		ID:         r.ID,
		Role:       domain.UserRole(r.Role),
		IsActive:   r.IsActive,
		AvatarPath: r.AvatarPath,
		Email:      r.Email,
		Phone:      r.Phone,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.FullName != nil {
		p.FullName = *r.FullName
	}
	if !p.Role.IsValid() {
		p.Role = domain.UserRoleMember
	}
	return p
}

// GetByID returns the profile with the given id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var out row
	if err := r.db.SelectOne(ctx, postgrest.From(table).Select("*").Eq("id", id), &out); err != nil {
		return nil, fmt.Errorf("profile.GetByID: %w", err)
	}
	p := out.toDomain()
	return &p, nil
}

// Update applies the non-nil fields of upd to the profile.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.Profile, error) {
	patch := map[string]any{}
	if upd.FullName != nil {
		patch["full_name"] = *upd.FullName
	}
	if upd.Phone != nil {
		patch["phone"] = *upd.Phone
	}
	if upd.AvatarPath != nil {
		patch["avatar_path"] = *upd.AvatarPath
	}
	return r.patch(ctx, "profile.Update", id, patch)
}

// SetActive activates or suspends a profile.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.Profile, error) {
	return r.patch(ctx, "profile.SetActive", id, map[string]any{"is_active": active})
}

// SetRole changes the role of a profile.
func (r *Repo) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.Profile, error) {
	return r.patch(ctx, "profile.SetRole", id, map[string]any{"role": role.String()})
}

func (r *Repo) patch(ctx context.Context, op string, id uuid.UUID, patch map[string]any) (*domain.Profile, error) {
	var out []row
	if err := r.db.Update(ctx, postgrest.From(table).Eq("id", id), patch, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	p := out[0].toDomain()
	return &p, nil
}

// ListFilter selects profiles for the admin user list.
type ListFilter struct {
	Search string
	Role   domain.UserRole
	Limit  int
	Offset int
}

// List returns a page of profiles ordered by creation time, newest first,
// and the total number of matching profiles.
func (r *Repo) List(ctx context.Context, f ListFilter) ([]domain.Profile, int, error) {
	q := r.filtered(f).Select("*").Order("created_at", false).Limit(f.Limit).Offset(f.Offset)
	var rows []row
	if err := r.db.Select(ctx, q, &rows); err != nil {
		return nil, 0, fmt.Errorf("profile.List: %w", err)
	}

	total, err := r.db.Count(ctx, r.filtered(f))
	if err != nil {
		return nil, 0, fmt.Errorf("profile.List: count: %w", err)
	}

	out := make([]domain.Profile, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toDomain())
	}
	return out, total, nil
}

func (r *Repo) filtered(f ListFilter) *postgrest.Query {
	q := postgrest.From(table)
	if s := strings.TrimSpace(f.Search); s != "" {
		q = q.Ilike("email", "*"+s+"*")
	}
	if f.Role != "" {
		q = q.Eq("role", f.Role.String())
	}
	return q
}
