package querycache

import (
	"fmt"
	"slices"
	"strings"
)

// Key identifies a cache entry. Keys are built from semantic identifiers with
// NewKey so that prefix invalidation works on whole identifier segments.
type Key string

const keySep = "/"

// NewKey joins parts into a Key.
func NewKey(parts ...string) Key {
	return Key(strings.Join(parts, keySep))
}

// Prefix returns the key followed by the separator, for use with
// InvalidatePrefix and Purge.
func (k Key) Prefix() Key {
	return k + keySep
}

// IDSet normalizes an order-insensitive set of identifiers into one key part.
// Duplicates are dropped.
func IDSet[T fmt.Stringer](ids []T) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}
	slices.Sort(parts)
	return strings.Join(slices.Compact(parts), ",")
}

// ForUser builds a key scoped to one user.
func ForUser(userID fmt.Stringer, parts ...string) Key {
	return NewKey(append([]string{"user", userID.String()}, parts...)...)
}

// UserScope is the prefix of every key built by ForUser for userID.
func UserScope(userID fmt.Stringer) Key {
	return NewKey("user", userID.String()).Prefix()
}
