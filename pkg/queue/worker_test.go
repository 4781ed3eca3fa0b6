package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/warehouse-exchange/wex/pkg/config"
)

func TestPollInterval_Jitter(t *testing.T) {
	w := &Worker{config: &config.QueueConfig{
		PollInterval:       time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
	}}

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}

func TestPollInterval_NoJitter(t *testing.T) {
	w := &Worker{config: &config.QueueConfig{PollInterval: time.Second}}
	assert.Equal(t, time.Second, w.pollInterval())
}

func TestWorkerHealthSnapshot(t *testing.T) {
	w := NewWorker("pod-a-worker-0", "pod-a", nil, config.DefaultQueueConfig(), nil)

	h := w.Health()
	assert.Equal(t, "pod-a-worker-0", h.ID)
	assert.Equal(t, string(WorkerStatusIdle), h.Status)

	w.setStatus(WorkerStatusWorking, "msg-1")
	h = w.Health()
	assert.Equal(t, string(WorkerStatusWorking), h.Status)
	assert.Equal(t, "msg-1", h.CurrentMessageID)
}
