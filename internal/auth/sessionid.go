package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// NewSessionID returns an opaque browser session identifier:
// 32 random bytes, base64url encoded.
func NewSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
