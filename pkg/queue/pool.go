package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/ent/inboundmessage"
	"github.com/warehouse-exchange/wex/pkg/config"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	executor MessageExecutor
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor MessageExecutor) *WorkerPool {
	return &WorkerPool{
		podID:    podID,
		client:   client,
		config:   cfg,
		executor: executor,
		workers:  make([]*Worker, 0, cfg.WorkerCount),
		stopCh:   make(chan struct{}),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish. Workers
// complete their current message before exiting.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.InboundMessage.Query().
		Where(inboundmessage.StatusEQ(inboundmessage.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	activeMessages, errA := p.client.InboundMessage.Query().
		Where(
			inboundmessage.StatusEQ(inboundmessage.StatusProcessing),
			inboundmessage.ClaimedByHasPrefix(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active messages for health check",
			"pod_id", p.podID, "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeMessages <= p.config.MaxConcurrentMessages && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active messages query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		PodID:            p.podID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveMessages:   activeMessages,
		MaxConcurrent:    p.config.MaxConcurrentMessages,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}
