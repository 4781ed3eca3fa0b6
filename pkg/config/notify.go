package config

import "time"

// NotificationsConfig tunes the delivery outbox drain loop. Senders are
// transport adapters; when a channel is disabled its rows are drained to the
// log sender so nothing piles up in local environments.
type NotificationsConfig struct {
	SMSEnabled   bool   `yaml:"sms_enabled"`
	EmailEnabled bool   `yaml:"email_enabled"`
	SMSFrom      string `yaml:"sms_from"`
	EmailFrom    string `yaml:"email_from"`

	// DrainInterval is how often pending rows are handed to senders.
	DrainInterval time.Duration `yaml:"drain_interval"`

	// DrainBatchSize bounds one drain pass.
	DrainBatchSize int `yaml:"drain_batch_size"`

	// MaxAttempts before a row is marked failed.
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultNotificationsConfig returns the built-in outbox defaults.
func DefaultNotificationsConfig() *NotificationsConfig {
	return &NotificationsConfig{
		SMSEnabled:     false,
		EmailEnabled:   false,
		EmailFrom:      "deals@wex.example.com",
		DrainInterval:  15 * time.Second,
		DrainBatchSize: 50,
		MaxAttempts:    5,
	}
}

// SystemConfig groups system-wide settings.
type SystemConfig struct {
	// BaseURL is the public origin used to mint links (guarantee, DLA,
	// uploads, search continuation).
	BaseURL string `yaml:"base_url"`

	// Environment tags log lines and health output.
	Environment string `yaml:"environment"`
}

// DefaultSystemConfig returns the built-in system defaults.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		BaseURL:     "http://localhost:8080",
		Environment: "development",
	}
}
