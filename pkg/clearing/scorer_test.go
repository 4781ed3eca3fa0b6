package clearing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/warehouse-exchange/wex/pkg/config"
)

func fptr(v float64) *float64    { return &v }
func tptr(v time.Time) *time.Time { return &v }

func TestLocationScore(t *testing.T) {
	tests := []struct {
		name     string
		dist     *float64
		radius   float64
		knn      bool
		expected float64
	}{
		{name: "at the door", dist: fptr(0), radius: 50, expected: 100},
		{name: "half the radius", dist: fptr(25), radius: 50, expected: 50},
		{name: "near the edge", dist: fptr(45), radius: 50, expected: 10},
		{name: "at the edge", dist: fptr(50), radius: 50, expected: 0},
		{name: "knn decays over the fallback radius", dist: fptr(45), radius: 25, knn: true, expected: 55},
		{name: "missing coordinates are neutral", dist: nil, radius: 50, expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := locationScore(tt.dist, tt.radius, tt.knn, 100)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestSizeScore(t *testing.T) {
	tests := []struct {
		name               string
		buyerMin, buyerMax int
		whMin, whMax       int
		expected           float64
	}{
		{name: "target inside rentable range", buyerMin: 8000, buyerMax: 12000, whMin: 5000, whMax: 20000, expected: 100},
		{name: "warehouse slightly small stays in band", buyerMin: 8000, buyerMax: 12000, whMin: 1000, whMax: 9000, expected: 100},
		{name: "undersize penalized hard", buyerMin: 8000, buyerMax: 12000, whMin: 1000, whMax: 6000, expected: 50},
		{name: "oversize penalized gently", buyerMin: 8000, buyerMax: 12000, whMin: 15000, whMax: 30000, expected: 70},
		{name: "severe undersize floors at zero", buyerMin: 80000, buyerMax: 120000, whMin: 1000, whMax: 10000, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sizeScore(tt.buyerMin, tt.buyerMax, tt.whMin, tt.whMax)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestTimingScore(t *testing.T) {
	needed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		available *time.Time
		needed    *time.Time
		expected  float64
	}{
		{name: "available before need", available: tptr(needed.AddDate(0, 0, -10)), needed: &needed, expected: 100},
		{name: "available exactly on time", available: &needed, needed: &needed, expected: 100},
		{name: "sixty days late", available: tptr(needed.AddDate(0, 0, 60)), needed: &needed, expected: 70},
		{name: "two hundred days late scores zero", available: tptr(needed.AddDate(0, 0, 200)), needed: &needed, expected: 0},
		{name: "unstated need date imposes nothing", available: tptr(needed), needed: nil, expected: 100},
		{name: "unstated availability imposes nothing", available: nil, needed: &needed, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := timingScore(tt.available, tt.needed)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestBudgetScore(t *testing.T) {
	t.Run("within budget", func(t *testing.T) {
		score, within := budgetScore(1.00, fptr(1.20))
		assert.Equal(t, 100.0, score)
		assert.True(t, within)
	})

	t.Run("six percent over", func(t *testing.T) {
		score, within := budgetScore(6.36, fptr(6.00))
		assert.InDelta(t, 80.02, score, 0.01)
		assert.False(t, within)
	})

	t.Run("thirty percent over floors near zero", func(t *testing.T) {
		score, within := budgetScore(1.30, fptr(1.00))
		assert.InDelta(t, 0.1, score, 0.01)
		assert.False(t, within)
	})

	t.Run("no stated budget is neutral and within", func(t *testing.T) {
		score, within := budgetScore(9.99, nil)
		assert.Equal(t, neutralScore, score)
		assert.True(t, within)
	})
}

func TestDimensionScores_Composite(t *testing.T) {
	w := config.DefaultClearingConfig().Weights

	perfect := DimensionScores{Location: 100, Size: 100, UseType: 100, Feature: 100, Timing: 100, Budget: 100}
	assert.Equal(t, 100.0, perfect.Composite(w))

	mixed := DimensionScores{Location: 80, Size: 100, UseType: 60, Feature: 50, Timing: 100, Budget: 100}
	// .20*80 + .15*100 + .15*60 + .20*50 + .10*100 + .20*100 = 80.0
	assert.Equal(t, 80.0, mixed.Composite(w))

	// Rounded to exactly one decimal.
	odd := DimensionScores{Location: 33, Size: 33, UseType: 33, Feature: 33, Timing: 33, Budget: 34}
	assert.Equal(t, 33.2, odd.Composite(w))
}
