package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowboat-dev/rowboat/ent"
	"github.com/rowboat-dev/rowboat/ent/fillevent"
	"github.com/rowboat-dev/rowboat/pkg/config"
	"github.com/rowboat-dev/rowboat/pkg/models"
	testdb "github.com/rowboat-dev/rowboat/test/database"
)

// recordingExecutor completes every event and remembers what it saw.
type recordingExecutor struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingExecutor) Execute(_ context.Context, event *ent.FillEvent) *ExecutionResult {
	r.mu.Lock()
	r.events = append(r.events, event.ID)
	r.mu.Unlock()
	return &ExecutionResult{Status: fillevent.StatusCompleted}
}

func (r *recordingExecutor) seen() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func poolConfig() *config.DispatcherConfig {
	cfg := config.DefaultDispatcherConfig()
	cfg.Parallelism = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 10 * time.Millisecond
	return cfg
}

func TestWorkerPool_ProcessesEnqueuedEvents(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	executor := &recordingExecutor{}
	pool := NewWorkerPool("pod-test", client.Client, poolConfig(), executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	for i := 0; i < 3; i++ {
		_, err := store.Enqueue(ctx, "sheet-1", i, 0, models.EventUserCellEdit,
			map[string]interface{}{"content": "seed"})
		require.NoError(t, err)
	}

	require.Eventually(t, func() bool {
		return executor.seen() == 3
	}, 10*time.Second, 50*time.Millisecond)

	// all events reached a terminal status
	require.Eventually(t, func() bool {
		n, err := client.FillEvent.Query().
			Where(fillevent.StatusEQ(fillevent.StatusCompleted)).
			Count(ctx)
		return err == nil && n == 3
	}, 10*time.Second, 50*time.Millisecond)

	depth, err := store.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Zero(t, depth)
}

func TestWorkerPool_Health(t *testing.T) {
	client := testdb.NewTestClient(t)

	pool := NewWorkerPool("pod-test", client.Client, poolConfig(), &recordingExecutor{})
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-test", health.PodID)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 2)
}

func TestWorkerPool_StartIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)

	pool := NewWorkerPool("pod-test", client.Client, poolConfig(), &recordingExecutor{})
	require.NoError(t, pool.Start(context.Background()))
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	assert.Equal(t, 2, pool.Health().TotalWorkers)
}
