package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rowboat-dev/rowboat/pkg/config"
)

func TestPollIntervalJitter(t *testing.T) {
	cfg := &config.DispatcherConfig{
		PollInterval:       2 * time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
	}
	w := NewWorker("w-0", "pod-1", nil, cfg, nil)

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 1500*time.Millisecond)
		assert.LessOrEqual(t, d, 2500*time.Millisecond)
	}
}

func TestPollIntervalNoJitter(t *testing.T) {
	cfg := &config.DispatcherConfig{PollInterval: 2 * time.Second}
	w := NewWorker("w-0", "pod-1", nil, cfg, nil)
	assert.Equal(t, 2*time.Second, w.pollInterval())
}

func TestWorkerHealthTracking(t *testing.T) {
	w := NewWorker("w-0", "pod-1", nil, config.DefaultDispatcherConfig(), nil)

	h := w.Health()
	assert.Equal(t, "w-0", h.ID)
	assert.Equal(t, WorkerStatusIdle, h.Status)
	assert.Zero(t, h.EventsProcessed)

	w.setStatus(WorkerStatusWorking, "event-1")
	h = w.Health()
	assert.Equal(t, WorkerStatusWorking, h.Status)
	assert.Equal(t, "event-1", h.CurrentEventID)

	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, WorkerStatusIdle, h.Status)
	assert.Empty(t, h.CurrentEventID)
}
