package token

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHex(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := NewHex()
		require.NoError(t, err)
		assert.Len(t, tok, 32)
		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), tok)
		assert.False(t, seen[tok], "token collision")
		seen[tok] = true
	}
}

func TestNewURLSafe(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := NewURLSafe()
		require.NoError(t, err)
		assert.Len(t, tok, 43)
		assert.NotContains(t, tok, "+")
		assert.NotContains(t, tok, "/")
		assert.NotContains(t, tok, "=")
		assert.False(t, seen[tok], "token collision")
		seen[tok] = true
	}
}
