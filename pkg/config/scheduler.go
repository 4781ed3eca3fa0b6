package config

import "time"

// SchedulerConfig holds the cadence of each background job plus the deadline
// constants the jobs enforce. Interval jobs run on tickers; daily jobs run at
// a fixed clock time (HH:MM, server local time).
type SchedulerConfig struct {
	// Interval jobs.
	DealPingCheckInterval   time.Duration `yaml:"deal_ping_check_interval"`
	DeadlineCheckInterval   time.Duration `yaml:"deadline_check_interval"`
	FollowUpInterval        time.Duration `yaml:"follow_up_interval"`
	QADeadlineInterval      time.Duration `yaml:"qa_deadline_interval"`
	KnowledgeBackfillInterval time.Duration `yaml:"knowledge_backfill_interval"`
	ReengagementInterval    time.Duration `yaml:"reengagement_interval"`

	// Daily jobs, HH:MM.
	TourRemindersAt      string `yaml:"tour_reminders_at"`
	PaymentGenerationAt  string `yaml:"payment_generation_at"`
	PaymentRemindersAt   string `yaml:"payment_reminders_at"`
	StaleFlagAt          string `yaml:"stale_flag_at"`
	AutoActivateAt       string `yaml:"auto_activate_at"`
	RenewalPromptsAt     string `yaml:"renewal_prompts_at"`

	// Deadline constants.
	TourRequestTimeout      time.Duration `yaml:"tour_request_timeout"`
	PostTourDecisionTimeout time.Duration `yaml:"post_tour_decision_timeout"`
	AddressRevealedIdleTimeout time.Duration `yaml:"address_revealed_idle_timeout"`
	QARouteDeadline         time.Duration `yaml:"qa_route_deadline"`
	FollowUpAfter           time.Duration `yaml:"follow_up_after"`
	StaleEngagementAfter    time.Duration `yaml:"stale_engagement_after"`
	PaymentReminderWindow   time.Duration `yaml:"payment_reminder_window"`
	RenewalWindow           time.Duration `yaml:"renewal_window"`
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		DealPingCheckInterval:     15 * time.Minute,
		DeadlineCheckInterval:     15 * time.Minute,
		FollowUpInterval:          1 * time.Hour,
		QADeadlineInterval:        1 * time.Hour,
		KnowledgeBackfillInterval: 6 * time.Hour,
		ReengagementInterval:      5 * time.Minute,

		TourRemindersAt:     "06:00",
		PaymentGenerationAt: "00:00",
		PaymentRemindersAt:  "09:00",
		StaleFlagAt:         "08:00",
		AutoActivateAt:      "00:00",
		RenewalPromptsAt:    "09:00",

		TourRequestTimeout:         12 * time.Hour,
		PostTourDecisionTimeout:    72 * time.Hour,
		AddressRevealedIdleTimeout: 7 * 24 * time.Hour,
		QARouteDeadline:            24 * time.Hour,
		FollowUpAfter:              24 * time.Hour,
		StaleEngagementAfter:       3 * 24 * time.Hour,
		PaymentReminderWindow:      3 * 24 * time.Hour,
		RenewalWindow:              30 * 24 * time.Hour,
	}
}
