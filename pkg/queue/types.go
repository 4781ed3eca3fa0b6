// Package queue provides the durable inbound-message queue and its worker
// pool. Messages are claimed with FOR UPDATE SKIP LOCKED; a phone number is
// never processed by two workers at once, and messages from one phone are
// handled strictly in arrival order.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/warehouse-exchange/wex/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoMessagesAvailable indicates no claimable pending messages.
	ErrNoMessagesAvailable = errors.New("no messages available")

	// ErrAtCapacity indicates the global concurrent processing limit is hit.
	ErrAtCapacity = errors.New("at capacity")
)

// MessageExecutor processes one claimed inbound message. A nil return marks
// the message completed; sms.ErrDiscarded marks it discarded; any other error
// marks it failed. The executor writes its own domain state; the worker only
// handles claiming, heartbeat, and the terminal status.
type MessageExecutor interface {
	Execute(ctx context.Context, msg *ent.InboundMessage) error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveMessages   int            `json:"active_messages"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentMessageID  string    `json:"current_message_id,omitempty"`
	MessagesProcessed int       `json:"messages_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
