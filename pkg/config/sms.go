package config

import "time"

// SMSConfig tunes the orchestrator pipeline: inbound limits, outbound
// gatekeeper thresholds, LLM step timeouts, and the phase-keyed stall rules
// that drive re-engagement nudges.
type SMSConfig struct {
	// Inbound gate.
	MaxInboundChars int `yaml:"max_inbound_chars"`

	// Outbound gate.
	MinReplyChars      int `yaml:"min_reply_chars"`
	MaxReplyChars      int `yaml:"max_reply_chars"`
	MaxFirstReplyChars int `yaml:"max_first_reply_chars"`
	MaxWordRepetition  int `yaml:"max_word_repetition"`

	// MaxPolishAttempts is how many polisher iterations run before the
	// deterministic fallback template is used.
	MaxPolishAttempts int `yaml:"max_polish_attempts"`

	// ReadinessCoreThreshold is the minimum readiness score over the core
	// fields (location, sqft, use type) before a search may fire.
	ReadinessCoreThreshold float64 `yaml:"readiness_core_threshold"`

	// Per-step LLM timeouts.
	PlannerTimeout   time.Duration `yaml:"planner_timeout"`
	ResponderTimeout time.Duration `yaml:"responder_timeout"`
	PolisherTimeout  time.Duration `yaml:"polisher_timeout"`

	// SearchSessionTTL is the lifetime of the web continuation token minted
	// when matches are presented.
	SearchSessionTTL time.Duration `yaml:"search_session_ttl"`

	// StallRules maps a conversation phase to the nudge ladder applied when
	// the buyer goes quiet in that phase. An absent phase never nudges.
	StallRules map[string]StallRule `yaml:"stall_rules"`
}

// StallRule is the re-engagement ladder for one phase: Delays[n] is the wait
// before nudge n+1, counted from the last outbound message.
type StallRule struct {
	Delays []time.Duration `yaml:"delays"`
}

// DefaultSMSConfig returns the built-in orchestrator defaults.
func DefaultSMSConfig() *SMSConfig {
	return &SMSConfig{
		MaxInboundChars:        1600,
		MinReplyChars:          20,
		MaxReplyChars:          480,
		MaxFirstReplyChars:     800,
		MaxWordRepetition:      5,
		MaxPolishAttempts:      3,
		ReadinessCoreThreshold: 0.8,
		PlannerTimeout:         30 * time.Second,
		ResponderTimeout:       60 * time.Second,
		PolisherTimeout:        30 * time.Second,
		SearchSessionTTL:       48 * time.Hour,
		StallRules: map[string]StallRule{
			"qualifying":        {Delays: []time.Duration{1 * time.Hour, 24 * time.Hour, 72 * time.Hour}},
			"presenting":        {Delays: []time.Duration{30 * time.Minute, 24 * time.Hour, 72 * time.Hour}},
			"property_focused":  {Delays: []time.Duration{1 * time.Hour, 24 * time.Hour}},
			"collecting_info":   {Delays: []time.Duration{1 * time.Hour, 24 * time.Hour}},
			"commitment":        {Delays: []time.Duration{15 * time.Minute, 2 * time.Hour, 24 * time.Hour}},
			"guarantee_pending": {Delays: []time.Duration{1 * time.Hour, 24 * time.Hour}},
			"tour_scheduling":   {Delays: []time.Duration{1 * time.Hour, 24 * time.Hour}},
		},
	}
}
