package engagement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehouse-exchange/wex/ent"
	entengagement "github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
)

func TestIsTerminal(t *testing.T) {
	terminal := []Status{
		entengagement.StatusDealPingDeclined,
		entengagement.StatusDealPingExpired,
		entengagement.StatusDeclinedByBuyer,
		entengagement.StatusDeclinedBySupplier,
		entengagement.StatusExpired,
		entengagement.StatusCancelled,
		entengagement.StatusCompleted,
	}
	for _, s := range terminal {
		assert.True(t, IsTerminal(s), "expected %s to be terminal", s)
	}
	assert.False(t, IsTerminal(entengagement.StatusMatched))
	assert.False(t, IsTerminal(entengagement.StatusActive))
	assert.False(t, IsTerminal(entengagement.StatusOnboarding))
}

func TestTransitionTable_TerminalStatesHaveNoExits(t *testing.T) {
	for from := range transitions {
		assert.False(t, IsTerminal(from), "terminal state %s must not appear as a source", from)
	}
}

func TestTransitionTable_EveryStateReachableOrInitial(t *testing.T) {
	// matched and deal_ping_sent are entry points; buyer_accepted is also an
	// entry point for SMS commitment handoffs.
	targets := map[Status]bool{}
	for _, rules := range transitions {
		for _, r := range rules {
			targets[r.target] = true
		}
	}
	for _, s := range entengagement.StatusValues() {
		status := Status(s)
		if status == entengagement.StatusMatched ||
			status == entengagement.StatusDealPingSent ||
			status == entengagement.StatusCancelled {
			continue
		}
		assert.True(t, targets[status], "state %s is unreachable", status)
	}
}

func TestAllowedTargets(t *testing.T) {
	tests := []struct {
		name     string
		from     Status
		actor    Actor
		expected []Status
	}{
		{
			name:  "supplier on a fresh deal ping",
			from:  entengagement.StatusDealPingSent,
			actor: engagementevent.ActorRoleSupplier,
			expected: []Status{
				entengagement.StatusDealPingAccepted,
				entengagement.StatusDealPingDeclined,
			},
		},
		{
			name:  "buyer after the address reveal",
			from:  entengagement.StatusAddressRevealed,
			actor: engagementevent.ActorRoleBuyer,
			expected: []Status{
				entengagement.StatusTourRequested,
				entengagement.StatusInstantBookRequested,
				entengagement.StatusDeclinedByBuyer,
			},
		},
		{
			name:  "supplier cannot act after a tour completes",
			from:  entengagement.StatusTourCompleted,
			actor: engagementevent.ActorRoleSupplier,
		},
		{
			name:  "nothing leaves a terminal state",
			from:  entengagement.StatusCompleted,
			actor: engagementevent.ActorRoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AllowedTargets(tt.from, tt.actor))
		})
	}
}

func TestAllowedTargets_AdminOverride(t *testing.T) {
	targets := AllowedTargets(entengagement.StatusMatched, engagementevent.ActorRoleAdmin)
	require.NotEmpty(t, targets)

	set := map[Status]bool{}
	for _, s := range targets {
		set[s] = true
	}
	// Any non-terminal state is fair game for an admin.
	assert.True(t, set[entengagement.StatusOnboarding])
	assert.True(t, set[entengagement.StatusTourConfirmed])
	// Plus the table's own terminal exits from this state, and cancellation.
	assert.True(t, set[entengagement.StatusExpired])
	assert.True(t, set[entengagement.StatusCancelled])
	// Never the current state, never a foreign terminal.
	assert.False(t, set[entengagement.StatusMatched])
	assert.False(t, set[entengagement.StatusCompleted])
}

func TestGuardOnboardingComplete(t *testing.T) {
	e := &ent.Engagement{ID: "eng-1", InsuranceUploaded: true, CompanyDocsUploaded: true}
	err := guardOnboardingComplete(context.Background(), nil, e)
	var guardErr *GuardError
	require.ErrorAs(t, err, &guardErr)
	assert.Equal(t, entengagement.StatusActive, guardErr.Target)

	e.PaymentMethodAdded = true
	assert.NoError(t, guardOnboardingComplete(context.Background(), nil, e))
}

func TestGuardGuaranteeOnFile(t *testing.T) {
	e := &ent.Engagement{ID: "eng-1"}
	err := guardGuaranteeOnFile(context.Background(), nil, e)
	var guardErr *GuardError
	require.ErrorAs(t, err, &guardErr)

	now := time.Now()
	e.GuaranteeSignedAt = &now
	assert.NoError(t, guardGuaranteeOnFile(context.Background(), nil, e))
}

func TestVisitedAt(t *testing.T) {
	now := time.Now()
	e := &ent.Engagement{TourCompletedAt: &now}

	assert.NotNil(t, visitedAt(e, entengagement.StatusTourCompleted))
	assert.Nil(t, visitedAt(e, entengagement.StatusBuyerConfirmed))
	// The reschedule loop states are exempt from the visit-once rule.
	assert.True(t, revisitExempt[entengagement.StatusTourConfirmed])
	assert.True(t, revisitExempt[entengagement.StatusTourRescheduled])
}

func TestBillingPeriod(t *testing.T) {
	at := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)
	start, end, due := BillingPeriod(at)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC), due)

	// December rolls the year.
	start, end, _ = BillingPeriod(time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), end)
}
