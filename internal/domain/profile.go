package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the application-level user record keyed by the session user id.
// It is only mutated through the data API.
type Profile struct {
	ID         uuid.UUID
	Role       UserRole
	IsActive   bool
	AvatarPath *string
	FullName   string
	Email      string
	Phone      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsAdmin reports whether the profile carries the admin role.
func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role.IsAdmin()
}

// DisplayName returns the full name, falling back to the email address.
func (p *Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Email
}

// Initials returns up to two upper-case initials for avatar placeholders.
func (p *Profile) Initials() string {
	name, _, _ := strings.Cut(p.DisplayName(), "@")
	var out []rune
	for _, word := range strings.Fields(name) {
		out = append(out, []rune(word)[0])
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}

// ProfileUpdate carries the fields a member may change on their own profile.
// Nil fields are left untouched.
type ProfileUpdate struct {
	FullName   *string
	Phone      *string
	AvatarPath *string
}

// IsEmpty reports whether the update changes nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Phone == nil && u.AvatarPath == nil
}
