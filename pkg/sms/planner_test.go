package sms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/pkg/config"
)

// Without an LLM client the planner runs its deterministic path end to end.
func TestPlanner_DeterministicPlan(t *testing.T) {
	p := NewPlanner(nil, config.DefaultSMSConfig())
	conv := &ent.Conversation{Phone: "+15550001111"}

	tests := []struct {
		name   string
		mi     MessageInterpretation
		intent string
		action string
	}{
		{"booking beats everything", MessageInterpretation{WantsBooking: true, WantsTour: true},
			IntentCommitment, ActionCommitmentHandoff},
		{"tour", MessageInterpretation{WantsTour: true}, IntentTourRequest, ActionScheduleTour},
		{"topic question", MessageInterpretation{Topics: []string{"clear_height"}},
			IntentFacilityInfo, ActionLookup},
		{"search data", MessageInterpretation{City: "Tampa", State: "FL"},
			IntentNewSearch, ActionSearch},
		{"identity only", MessageInterpretation{FirstName: "Sam"},
			IntentProvideInfo, ActionCollectInfo},
		{"bare greeting", MessageInterpretation{IsGreeting: true}, IntentGreeting, ""},
		{"nothing", MessageInterpretation{}, IntentUnknown, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := p.Plan(context.Background(), conv, tt.mi, Criteria{}, nil, "")
			assert.Equal(t, tt.intent, d.Intent)
			assert.Equal(t, tt.action, d.Action)
		})
	}
}

func TestPlanner_GreetingOverriddenBySearchData(t *testing.T) {
	p := NewPlanner(nil, config.DefaultSMSConfig())
	d := PlannerDecision{Intent: IntentGreeting}
	mi := MessageInterpretation{City: "Tampa", State: "FL", SqftMin: 4000, SqftMax: 6000}

	p.applyOverrides(&d, mi, Criteria{})

	assert.Equal(t, IntentNewSearch, d.Intent)
	assert.Equal(t, ActionSearch, d.Action)
	assert.Equal(t, "Tampa", d.Criteria.City)
}

func TestPlanner_DealBreakerNoSatisfiesRequirement(t *testing.T) {
	p := NewPlanner(nil, config.DefaultSMSConfig())
	d := PlannerDecision{Intent: IntentProvideInfo}

	p.applyOverrides(&d, MessageInterpretation{SaidNo: true}, Criteria{DealBreakerAsked: true})
	assert.True(t, d.Criteria.DealBreakerAnswer)

	// Not asked yet, "no" answers nothing.
	d = PlannerDecision{Intent: IntentProvideInfo}
	p.applyOverrides(&d, MessageInterpretation{SaidNo: true}, Criteria{})
	assert.False(t, d.Criteria.DealBreakerAnswer)
}

func TestPlanner_OverridesKeepExtractions(t *testing.T) {
	p := NewPlanner(nil, config.DefaultSMSConfig())
	d := PlannerDecision{Intent: IntentFacilityInfo, Action: ActionLookup}
	mi := MessageInterpretation{
		Topics:    []string{"power"},
		FirstName: "Jordan",
		LastName:  "Reyes",
	}

	p.applyOverrides(&d, mi, Criteria{})

	assert.Equal(t, []string{"power"}, d.AskedFields)
	assert.Equal(t, "Jordan Reyes", d.ExtractedName)
}
