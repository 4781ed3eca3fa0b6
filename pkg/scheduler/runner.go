// Package scheduler runs the periodic jobs that enforce deadlines, generate
// billing, activate leases, and expire stale work. Every job is idempotent;
// all pods may run the scheduler concurrently.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// JobFunc is one scheduler job: it does its work in its own transactions and
// reports how many records it touched.
type JobFunc func(ctx context.Context) (int, error)

// scheduledJob carries one job's cadence and next-run bookkeeping.
type scheduledJob struct {
	name     string
	run      JobFunc
	interval time.Duration // interval jobs; zero for daily jobs
	dailyAt  string        // "HH:MM" for daily jobs; empty for interval jobs
	nextRun  time.Time
}

// tickGranularity is how often due jobs are checked.
const tickGranularity = 30 * time.Second

// Scheduler owns the job table and the run loop.
type Scheduler struct {
	jobs   []*scheduledJob
	now    func() time.Time
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates an empty scheduler. Jobs are added with AddInterval and
// AddDaily before Start.
func New() *Scheduler {
	return &Scheduler{now: time.Now}
}

// AddInterval registers a job that runs every interval, starting immediately.
func (s *Scheduler) AddInterval(name string, interval time.Duration, run JobFunc) {
	s.jobs = append(s.jobs, &scheduledJob{name: name, run: run, interval: interval})
}

// AddDaily registers a job that runs once a day at HH:MM server time.
func (s *Scheduler) AddDaily(name, at string, run JobFunc) error {
	if _, _, err := parseDailyAt(at); err != nil {
		return fmt.Errorf("job %s: %w", name, err)
	}
	s.jobs = append(s.jobs, &scheduledJob{name: name, run: run, dailyAt: at})
	return nil
}

// Start launches the run loop.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	now := s.now()
	for _, j := range s.jobs {
		j.nextRun = initialRun(j, now)
	}

	go s.loop(ctx)
	slog.Info("Scheduler started", "jobs", len(s.jobs))
}

// Stop signals the loop to exit and waits for the in-flight pass to finish.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(tickGranularity)
	defer ticker.Stop()

	s.runDue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runDue(ctx)
		}
	}
}

// runDue executes every job whose next-run time has passed.
func (s *Scheduler) runDue(ctx context.Context) {
	now := s.now()
	for _, j := range s.jobs {
		if now.Before(j.nextRun) {
			continue
		}
		count, err := j.run(ctx)
		if err != nil {
			slog.Error("Scheduler job failed", "job", j.name, "error", err)
		} else if count > 0 {
			slog.Info("Scheduler job done", "job", j.name, "count", count)
		}
		j.nextRun = nextRun(j, s.now())
	}
}

// initialRun schedules interval jobs immediately and daily jobs at their next
// clock occurrence.
func initialRun(j *scheduledJob, now time.Time) time.Time {
	if j.dailyAt != "" {
		return nextDaily(now, j.dailyAt)
	}
	return now
}

// nextRun advances a job's schedule after a run.
func nextRun(j *scheduledJob, now time.Time) time.Time {
	if j.dailyAt != "" {
		return nextDaily(now, j.dailyAt)
	}
	return now.Add(j.interval)
}

// nextDaily returns the next occurrence of HH:MM strictly after now.
func nextDaily(now time.Time, at string) time.Time {
	h, m, _ := parseDailyAt(at)
	next := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// parseDailyAt validates an "HH:MM" clock time.
func parseDailyAt(at string) (hour, minute int, err error) {
	parts := strings.SplitN(at, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid daily time %q, want HH:MM", at)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in daily time %q", at)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in daily time %q", at)
	}
	return hour, minute, nil
}
