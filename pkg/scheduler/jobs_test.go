package scheduler

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/conversation"
	entengagement "github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/pkg/config"
)

func TestRegister_WiresEveryJob(t *testing.T) {
	j := NewJobs(nil, config.DefaultSchedulerConfig(), config.DefaultSMSConfig(), nil)
	s := New()

	require.NoError(t, j.Register(s))
	assert.Len(t, s.jobs, 12)

	names := map[string]bool{}
	for _, job := range s.jobs {
		names[job.name] = true
		if job.dailyAt == "" {
			assert.Positive(t, job.interval, "interval job %s needs a cadence", job.name)
		}
	}
	for _, want := range []string{
		"deal_ping_expiry", "deadline_check", "tour_reminders",
		"post_tour_follow_up", "qa_deadline", "knowledge_backfill",
		"payment_generation", "payment_reminders", "stale_engagement_flag",
		"auto_activate_leases", "renewal_prompts", "reengagement_nudges",
	} {
		assert.True(t, names[want], "missing job %s", want)
	}
}

func TestTerminalStatuses_ExcludeInFlightStates(t *testing.T) {
	terminal := map[entengagement.Status]bool{}
	for _, s := range terminalStatuses() {
		terminal[s] = true
	}

	assert.True(t, terminal[entengagement.StatusCompleted])
	assert.True(t, terminal[entengagement.StatusCancelled])
	assert.True(t, terminal[entengagement.StatusExpired])
	assert.False(t, terminal[entengagement.StatusActive])
	assert.False(t, terminal[entengagement.StatusTourRequested])
	assert.False(t, terminal[entengagement.StatusOnboarding])
}

func TestNudgeBody_PhaseTemplates(t *testing.T) {
	tests := []struct {
		phase    conversation.Phase
		contains string
	}{
		{conversation.PhasePresenting, "number"},
		{conversation.PhaseQualifying, "what you need"},
		{conversation.PhasePropertyFocused, "in person"},
		{conversation.PhaseCollectingInfo, "name and email"},
		{conversation.PhaseCommitment, "guarantee"},
		{conversation.PhaseGuaranteePending, "guarantee"},
		{conversation.PhaseTourScheduling, "tour"},
		{conversation.PhaseIntake, "warehouse space"},
	}

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			body := nudgeBody(&ent.Conversation{Phase: tt.phase})
			assert.Contains(t, strings.ToLower(body), tt.contains)
		})
	}
}

func TestNudgeBody_UsesFirstName(t *testing.T) {
	body := nudgeBody(&ent.Conversation{
		Phase:           conversation.PhasePresenting,
		RenterFirstName: "Jordan",
	})
	assert.True(t, strings.HasPrefix(body, "Jordan, "))
}

func TestDefaultScheduleCadences(t *testing.T) {
	cfg := config.DefaultSchedulerConfig()

	assert.Equal(t, 15*time.Minute, cfg.DealPingCheckInterval)
	assert.Equal(t, 5*time.Minute, cfg.ReengagementInterval)
	assert.Equal(t, 12*time.Hour, cfg.TourRequestTimeout)
	assert.Equal(t, 72*time.Hour, cfg.PostTourDecisionTimeout)
	assert.Equal(t, 24*time.Hour, cfg.QARouteDeadline)

	for _, at := range []string{
		cfg.TourRemindersAt, cfg.PaymentGenerationAt, cfg.PaymentRemindersAt,
		cfg.StaleFlagAt, cfg.AutoActivateAt, cfg.RenewalPromptsAt,
	} {
		_, _, err := parseDailyAt(at)
		assert.NoError(t, err, "default daily time %q must parse", at)
	}
}
