package clearing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warehouse-exchange/wex/pkg/config"
)

func TestUseTypeMatrix_Score(t *testing.T) {
	m := NewUseTypeMatrix(config.DefaultUseTypeConfig())

	tests := []struct {
		name         string
		activityTier string
		useType      string
		hasOffice    bool
		expected     float64
		callout      string
	}{
		{
			name:         "exact capability match",
			activityTier: "storage_only",
			useType:      "storage",
			expected:     useTypeFull,
		},
		{
			name:         "capability superset still full",
			activityTier: "cold_storage",
			useType:      "storage",
			expected:     useTypeFull,
		},
		{
			name:         "plain storage cannot serve cold demand",
			activityTier: "storage_only",
			useType:      "cold_storage",
			expected:     useTypeNone,
			callout:      "Incompatible: no cold_storage",
		},
		{
			name:         "half-covered need set is partial",
			activityTier: "storage_only",
			useType:      "ecommerce_fulfillment",
			expected:     useTypePartial,
			callout:      "Incompatible: no light_assembly",
		},
		{
			name:         "office flag satisfies office demand",
			activityTier: "storage_only",
			useType:      "storage_office",
			hasOffice:    true,
			expected:     useTypeFull,
			callout:      "Bonus: office space",
		},
		{
			name:         "missing office noted",
			activityTier: "storage_only",
			useType:      "storage_office",
			expected:     useTypePartial,
			callout:      "No office space",
		},
		{
			name:         "unknown tier scores zero",
			activityTier: "underwater_basket_weaving",
			useType:      "storage",
			expected:     useTypeNone,
			callout:      `Unknown activity tier "underwater_basket_weaving"`,
		},
		{
			name:         "unknown use type scores zero",
			activityTier: "storage_only",
			useType:      "rocket_assembly",
			expected:     useTypeNone,
			callout:      `Unknown use type "rocket_assembly"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, callouts := m.Score(tt.activityTier, tt.useType, tt.hasOffice)
			assert.Equal(t, tt.expected, score)
			if tt.callout != "" {
				assert.Contains(t, callouts, tt.callout)
			}
		})
	}
}

func TestUseTypeMatrix_DisjointScoresZero(t *testing.T) {
	m := NewUseTypeMatrix(&config.UseTypeConfig{
		CapabilitySets: map[string][]string{"parking": {"vehicle_parking"}},
		NeedSets:       map[string][]string{"storage": {"storage"}},
	})

	score, callouts := m.Score("parking", "storage", false)
	assert.Equal(t, useTypeNone, score)
	assert.Contains(t, callouts, "Incompatible: no storage")
}

func TestUseTypeMatrix_MostlyMissingScoresWeak(t *testing.T) {
	m := NewUseTypeMatrix(&config.UseTypeConfig{
		CapabilitySets: map[string][]string{"storage_only": {"storage"}},
		NeedSets:       map[string][]string{"lab": {"storage", "climate_control", "clean_room"}},
	})

	score, _ := m.Score("storage_only", "lab", false)
	assert.Equal(t, useTypeWeak, score)
}
