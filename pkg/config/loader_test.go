package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWexYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wex.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Clearing.MaxTier1)
	assert.Equal(t, 5, cfg.Clearing.MaxTier2)
	assert.InDelta(t, 1.0, cfg.Clearing.Weights.Sum(), 1e-9)
	assert.Equal(t, 48*time.Hour, cfg.DLA.TokenTTL)
	assert.Equal(t, 0.20, cfg.Pricing.MarginPct)
	assert.Equal(t, 0.06, cfg.Pricing.GuaranteePct)
	assert.Equal(t, 10000, cfg.Geo.CacheSize)
	assert.Equal(t, 480, cfg.SMS.MaxReplyChars)
	assert.Equal(t, 800, cfg.SMS.MaxFirstReplyChars)
}

func TestInitialize_YAMLOverridesMergeOverDefaults(t *testing.T) {
	dir := writeWexYAML(t, `
clearing:
  max_tier2: 8
sms:
  max_reply_chars: 320
  max_first_reply_chars: 900
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Overridden values.
	assert.Equal(t, 8, cfg.Clearing.MaxTier2)
	assert.Equal(t, 320, cfg.SMS.MaxReplyChars)

	// Untouched siblings keep defaults.
	assert.Equal(t, 3, cfg.Clearing.MaxTier1)
	assert.Equal(t, 20, cfg.SMS.MinReplyChars)
	assert.Equal(t, 3, cfg.SMS.MaxPolishAttempts)
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("WEX_TEST_BASE_URL", "https://deals.example.com")
	dir := writeWexYAML(t, `
system:
  base_url: "{{.WEX_TEST_BASE_URL}}"
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "https://deals.example.com", cfg.System.BaseURL)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "weights do not sum to one",
			yaml: "clearing:\n  weights:\n    location: 0.9\n    size: 0.9\n    use_type: 0.15\n    feature: 0.2\n    timing: 0.1\n    budget: 0.2\n",
		},
		{
			name: "bad daily time",
			yaml: "scheduler:\n  tour_reminders_at: \"6am\"\n",
		},
		{
			name: "unknown stall phase",
			yaml: "sms:\n  stall_rules:\n    negotiating:\n      delays: [1h]\n",
		},
		{
			name: "blend weights off",
			yaml: "dla:\n  budget_blend_weight: 0.9\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeWexYAML(t, tt.yaml)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeWexYAML(t, "clearing: [not, a, map")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
}

func TestUseTypeConfig_Lookups(t *testing.T) {
	u := DefaultUseTypeConfig()

	caps, ok := u.Capabilities("cold_storage")
	require.True(t, ok)
	assert.Contains(t, caps, "food_grade")

	_, ok = u.Capabilities("hangar")
	assert.False(t, ok)

	needs, ok := u.Needs("ecommerce_fulfillment")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"storage", "light_assembly"}, needs)
}
