package config

// DefaultConfig assembles the complete built-in configuration. YAML sections
// merge over these values, so a missing wex.yaml yields a runnable (if
// locally scoped) system.
func DefaultConfig() *Config {
	return &Config{
		System:        DefaultSystemConfig(),
		Clearing:      DefaultClearingConfig(),
		Pricing:       DefaultPricingConfig(),
		DLA:           DefaultDLAConfig(),
		UseTypes:      DefaultUseTypeConfig(),
		SMS:           DefaultSMSConfig(),
		Scheduler:     DefaultSchedulerConfig(),
		Queue:         DefaultQueueConfig(),
		Geo:           DefaultGeoConfig(),
		LLM:           DefaultLLMConfig(),
		Notifications: DefaultNotificationsConfig(),
	}
}

// ConversationPhases lists every valid conversation phase. Stall rules are
// validated against this set at startup.
var ConversationPhases = []string{
	"intake",
	"qualifying",
	"presenting",
	"property_focused",
	"awaiting_answer",
	"collecting_info",
	"commitment",
	"guarantee_pending",
	"tour_scheduling",
}
