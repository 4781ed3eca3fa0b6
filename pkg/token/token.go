// Package token mints the opaque capability tokens used across the system:
// DLA outreach links, search-session continuations, upload links, and the
// one-shot guarantee link. Tokens are the only credential on their flows, so
// they always come from crypto/rand.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// NewHex returns a 32-character lowercase hex token (16 random bytes).
// Used for DLA outreach links.
func NewHex() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// NewURLSafe returns a ~44-character URL-safe token (32 random bytes,
// unpadded base64url). Used for search sessions, upload links, and the
// guarantee handoff.
func NewURLSafe() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
