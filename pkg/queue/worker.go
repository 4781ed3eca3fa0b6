package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/inboundmessage"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/pkg/config"
	"github.com/warehouse-exchange/wex/pkg/sms"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// maxMessageAttempts bounds redelivery of a message whose claim was orphaned.
const maxMessageAttempts = 3

// Worker is a single queue worker that polls for and processes messages.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor MessageExecutor
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentMessageID  string
	messagesProcessed int
	lastActivity      time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor MessageExecutor) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish. The current
// message completes before the worker exits. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentMessageID:  w.currentMessageID,
		MessagesProcessed: w.messagesProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoMessagesAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing message", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a message, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Best-effort global capacity check; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter.
	activeCount, err := w.client.InboundMessage.Query().
		Where(inboundmessage.StatusEQ(inboundmessage.StatusProcessing)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active messages: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentMessages {
		return ErrAtCapacity
	}

	msg, err := w.claimNextMessage(ctx)
	if err != nil {
		return err
	}

	log := slog.With("message_id", msg.ID, "phone", msg.Phone, "worker_id", w.id)
	log.Info("Message claimed", "attempt", msg.Attempts)

	w.setStatus(WorkerStatusWorking, msg.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	msgCtx, cancel := context.WithTimeout(ctx, w.config.MessageTimeout)
	defer cancel()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(msgCtx)
	go w.runHeartbeat(heartbeatCtx, msg.ID)

	execErr := w.executor.Execute(msgCtx, msg)
	cancelHeartbeat()

	// Terminal status goes through a background context: the message context
	// may already be cancelled or expired.
	if err := w.finish(context.Background(), msg, msgCtx, execErr); err != nil {
		log.Error("Failed to update message terminal status", "error", err)
		return err
	}

	w.mu.Lock()
	w.messagesProcessed++
	w.mu.Unlock()

	return nil
}

// noActiveEarlierSibling keeps per-phone ordering: a message is claimable only
// when no older message from the same phone is still pending or processing.
// The oldest sibling stays visible until its terminal update commits, so a
// second worker can never jump the line for a phone.
func noActiveEarlierSibling() predicate.InboundMessage {
	return func(s *sql.Selector) {
		t := sql.Table(inboundmessage.Table)
		s.Where(sql.NotExists(
			sql.Select(t.C(inboundmessage.FieldID)).
				From(t).
				Where(sql.And(
					sql.ColumnsEQ(t.C(inboundmessage.FieldPhone), s.C(inboundmessage.FieldPhone)),
					sql.ColumnsNEQ(t.C(inboundmessage.FieldID), s.C(inboundmessage.FieldID)),
					sql.In(t.C(inboundmessage.FieldStatus),
						string(inboundmessage.StatusPending),
						string(inboundmessage.StatusProcessing)),
					sql.ColumnsLT(t.C(inboundmessage.FieldReceivedAt), s.C(inboundmessage.FieldReceivedAt)),
				)),
		))
	}
}

// claimNextMessage atomically claims the next claimable pending message using
// FOR UPDATE SKIP LOCKED, FIFO by received_at.
func (w *Worker) claimNextMessage(ctx context.Context) (*ent.InboundMessage, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	msg, err := tx.InboundMessage.Query().
		Where(
			inboundmessage.StatusEQ(inboundmessage.StatusPending),
			noActiveEarlierSibling(),
		).
		Order(ent.Asc(inboundmessage.FieldReceivedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoMessagesAvailable
		}
		return nil, fmt.Errorf("failed to query pending message: %w", err)
	}

	now := time.Now()
	msg, err = msg.Update().
		SetStatus(inboundmessage.StatusProcessing).
		SetClaimedBy(w.id).
		SetClaimedAt(now).
		SetHeartbeatAt(now).
		AddAttempts(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return msg, nil
}

// runHeartbeat periodically refreshes heartbeat_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, messageID string) {
	interval := w.config.OrphanThreshold / 4
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.InboundMessage.UpdateOneID(messageID).
				SetHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "message_id", messageID, "error", err)
			}
		}
	}
}

// finish writes the message's terminal status from the execution outcome.
func (w *Worker) finish(ctx context.Context, msg *ent.InboundMessage, msgCtx context.Context, execErr error) error {
	upd := w.client.InboundMessage.UpdateOneID(msg.ID).
		SetCompletedAt(time.Now())

	switch {
	case execErr == nil:
		upd.SetStatus(inboundmessage.StatusCompleted)
	case errors.Is(execErr, sms.ErrDiscarded):
		upd.SetStatus(inboundmessage.StatusDiscarded).
			SetFailureReason(execErr.Error())
	case errors.Is(msgCtx.Err(), context.DeadlineExceeded):
		upd.SetStatus(inboundmessage.StatusFailed).
			SetFailureReason(fmt.Sprintf("timed out after %v", w.config.MessageTimeout))
	default:
		upd.SetStatus(inboundmessage.StatusFailed).
			SetFailureReason(execErr.Error())
	}

	if err := upd.Exec(ctx); err != nil {
		return err
	}
	if execErr != nil && !errors.Is(execErr, sms.ErrDiscarded) {
		slog.Warn("Message processing failed",
			"message_id", msg.ID, "phone", msg.Phone, "error", execErr)
	} else {
		slog.Info("Message processing complete", "message_id", msg.ID)
	}
	return nil
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, messageID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentMessageID = messageID
	w.lastActivity = time.Now()
}
