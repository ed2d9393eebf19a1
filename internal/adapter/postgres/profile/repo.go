// Package profile changes profiles directly in PostgreSQL with the service
// credential. It backs operator commands that run outside any user session.
package profile

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/learnhub/internal/adapter/postgres"
	"github.com/heartmarshall/learnhub/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides privileged profile updates.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// SetRoleByEmail gives the profile registered under email the role and
// reactivates it. The email match is case-insensitive. Returns
// domain.ErrNotFound when no profile matches.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.Profile, error) {
	query, args, err := psql.
		Update("profiles").
		Set("role", role.String()).
		Set("is_active", true).
		Set("updated_at", sq.Expr("now()")).
		Where("lower(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Suffix("RETURNING id, role::text, is_active, COALESCE(full_name, ''), email, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile.SetRoleByEmail: build")
	}

	var (
		p       domain.Profile
		roleStr string
	)
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&p.ID, &roleStr, &p.IsActive, &p.FullName, &p.Email, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "profile.SetRoleByEmail")
	}
	p.Role = domain.UserRole(roleStr)
	return &p, nil
}
