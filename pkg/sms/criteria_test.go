package sms

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warehouse-exchange/wex/pkg/config"
)

func TestCriteria_MergeNeverClears(t *testing.T) {
	c := Criteria{City: "Austin", State: "TX", SqftMin: 4000, SqftMax: 6000, UseType: "storage"}

	merged := c.Merge(MessageInterpretation{})
	assert.Equal(t, c, merged)

	merged = c.Merge(MessageInterpretation{SqftMin: 8000, SqftMax: 12000})
	assert.Equal(t, "Austin", merged.City)
	assert.Equal(t, 8000, merged.SqftMin)
	assert.Equal(t, 12000, merged.SqftMax)
}

func TestCriteria_MergeFeaturesDeduped(t *testing.T) {
	c := Criteria{Features: []string{"dock_doors"}}
	merged := c.Merge(MessageInterpretation{Features: []string{"dock_doors", "sprinkler"}})
	assert.Equal(t, []string{"dock_doors", "sprinkler"}, merged.Features)
}

func TestCriteria_MergeDealBreakerAnswer(t *testing.T) {
	c := Criteria{DealBreakerAsked: true}
	assert.False(t, c.Merge(MessageInterpretation{}).DealBreakerAnswer)
	assert.True(t, c.Merge(MessageInterpretation{SaidNo: true}).DealBreakerAnswer)
	assert.True(t, c.Merge(MessageInterpretation{SaidYes: true}).DealBreakerAnswer)

	// Not asked yet, a bare yes is not an answer.
	unasked := Criteria{}
	assert.False(t, unasked.Merge(MessageInterpretation{SaidYes: true}).DealBreakerAnswer)
}

func TestCriteria_Readiness(t *testing.T) {
	tests := []struct {
		name string
		c    Criteria
		want float64
	}{
		{"empty", Criteria{}, 0},
		{"location only", Criteria{City: "Miami"}, 0.30},
		{"core complete", Criteria{City: "Miami", SqftMin: 5000, UseType: "storage"}, 0.80},
		{"core plus timing and duration", Criteria{
			City: "Miami", SqftMin: 5000, UseType: "storage",
			Timing: "asap", DurationMonths: 12,
		}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.c.Readiness(), 1e-9)
		})
	}
}

func TestCriteria_CoreReady(t *testing.T) {
	cfg := config.DefaultSMSConfig()

	assert.False(t, Criteria{City: "Miami", SqftMin: 5000}.CoreReady(cfg))
	assert.False(t, Criteria{SqftMin: 5000, UseType: "storage"}.CoreReady(cfg))
	assert.True(t, Criteria{State: "FL", SqftMin: 5000, UseType: "storage"}.CoreReady(cfg))
}

func TestCriteria_QualifyingComplete(t *testing.T) {
	cfg := config.DefaultSMSConfig()
	base := Criteria{City: "Miami", SqftMin: 5000, UseType: "storage"}

	assert.False(t, base.QualifyingComplete(cfg))

	full := base
	full.Timing = "next month"
	full.DurationMonths = 6
	full.DealBreakerAnswer = true
	assert.True(t, full.QualifyingComplete(cfg))
}

func TestCriteria_MissingQualifying(t *testing.T) {
	missing := Criteria{}.MissingQualifying()
	assert.Len(t, missing, 3)

	c := Criteria{Timing: "asap", DurationMonths: 12, DealBreakerAnswer: true}
	assert.Empty(t, c.MissingQualifying())
}

func TestCriteria_MapRoundTrip(t *testing.T) {
	c := Criteria{
		City: "Austin", State: "TX", SqftMin: 4000, SqftMax: 6000,
		UseType: "storage", Features: []string{"dock_doors"},
		Timing: "asap", DurationMonths: 12, DealBreakerAsked: true,
	}
	got := CriteriaFromMap(c.ToMap())
	assert.Equal(t, c, got)
}
