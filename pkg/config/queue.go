package config

import "time"

// QueueConfig contains the inbound SMS queue and worker pool configuration.
// These values control how messages are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes inbound messages.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentMessages is the global limit of messages being processed
	// across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentMessages int `yaml:"max_concurrent_messages"`

	// PollInterval is the base interval for checking pending messages.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval +/- PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// MessageTimeout is the maximum time one pipeline turn can run.
	MessageTimeout time.Duration `yaml:"message_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight turns
	// to complete during shutdown. Should match MessageTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned claims.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a claim can go without a heartbeat
	// before the message is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentMessages:   20,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MessageTimeout:          5 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         2 * time.Minute,
	}
}
