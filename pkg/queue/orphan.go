package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/inboundmessage"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned claims. All pods run
// this independently; the recovery update is idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds processing messages with stale heartbeats and
// puts them back in the queue, or fails them once the attempt budget is spent.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.InboundMessage.Query().
		Where(
			inboundmessage.StatusEQ(inboundmessage.StatusProcessing),
			inboundmessage.HeartbeatAtNotNil(),
			inboundmessage.HeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned messages: %w", err)
	}

	recovered := 0
	for _, msg := range orphans {
		if err := recoverOrphanedMessage(ctx, p.client, msg); err != nil {
			slog.Error("Failed to recover orphaned message",
				"message_id", msg.ID, "error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	if recovered > 0 {
		slog.Warn("Recovered orphaned messages", "count", recovered)
	}
	return nil
}

// recoverOrphanedMessage requeues one orphaned claim, or fails the message
// when its attempts are exhausted.
func recoverOrphanedMessage(ctx context.Context, client *ent.Client, msg *ent.InboundMessage) error {
	if msg.Attempts >= maxMessageAttempts {
		return client.InboundMessage.UpdateOneID(msg.ID).
			SetStatus(inboundmessage.StatusFailed).
			SetCompletedAt(time.Now()).
			SetFailureReason(fmt.Sprintf("orphaned after %d attempts (last claim %s)",
				msg.Attempts, msg.ClaimedBy)).
			ClearClaimedBy().
			ClearClaimedAt().
			ClearHeartbeatAt().
			Exec(ctx)
	}

	err := client.InboundMessage.UpdateOneID(msg.ID).
		SetStatus(inboundmessage.StatusPending).
		ClearClaimedBy().
		ClearClaimedAt().
		ClearHeartbeatAt().
		Exec(ctx)
	if err != nil {
		return err
	}
	slog.Warn("Orphaned message requeued",
		"message_id", msg.ID, "phone", msg.Phone, "attempts", msg.Attempts)
	return nil
}

// CleanupStartupOrphans requeues messages still claimed by this pod from a
// previous run. Called once during startup, before workers begin processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.InboundMessage.Query().
		Where(
			inboundmessage.StatusEQ(inboundmessage.StatusProcessing),
			inboundmessage.ClaimedByHasPrefix(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID, "count", len(orphans))

	for _, msg := range orphans {
		if err := recoverOrphanedMessage(ctx, client, msg); err != nil {
			slog.Error("Failed to recover startup orphan",
				"message_id", msg.ID, "error", err)
		}
	}
	return nil
}
