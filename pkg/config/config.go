package config

// Config is the umbrella configuration object returned by Initialize and
// threaded through the application. Every section is non-nil after a
// successful load; callers never need to nil-check.
type Config struct {
	configDir string // Configuration directory path (for reference)

	System        *SystemConfig
	Clearing      *ClearingConfig
	Pricing       *PricingConfig
	DLA           *DLAConfig
	UseTypes      *UseTypeConfig
	SMS           *SMSConfig
	Scheduler     *SchedulerConfig
	Queue         *QueueConfig
	Geo           *GeoConfig
	LLM           *LLMConfig
	Notifications *NotificationsConfig
}

// ConfigDir returns the directory wex.yaml was loaded from (empty when only
// built-in defaults were used).
func (c *Config) ConfigDir() string {
	return c.configDir
}
