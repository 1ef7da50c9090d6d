package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rowboat-dev/rowboat/ent"
	"github.com/rowboat-dev/rowboat/pkg/config"
)

// WorkerPool manages the dispatcher's workers and the reaper.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	store    *Store
	config   *config.DispatcherConfig
	executor EventExecutor
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	// Reaper state
	reaper reaperState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.DispatcherConfig, executor EventExecutor) *WorkerPool {
	return &WorkerPool{
		podID:    podID,
		client:   client,
		store:    NewStore(client),
		config:   cfg,
		executor: executor,
		workers:  make([]*Worker, 0, cfg.Parallelism),
		stopCh:   make(chan struct{}),
	}
}

// Store returns the pool's queue store.
func (p *WorkerPool) Store() *Store {
	return p.store
}

// Start spawns worker goroutines and the reaper background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "parallelism", p.config.Parallelism)

	for i := 0; i < p.config.Parallelism; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.store, p.config, p.executor)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runReaper(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current events before exiting.
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

	queueDepth, errQ := p.store.QueueDepth(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	p.reaper.mu.Lock()
	lastScan := p.reaper.lastScan
	reaped := p.reaper.eventsReaped
	p.reaper.mu.Unlock()

	return &PoolHealth{
		IsHealthy:      len(p.workers) > 0 && dbHealthy,
		DBReachable:    dbHealthy,
		DBError:        dbError,
		PodID:          p.podID,
		ActiveWorkers:  activeWorkers,
		TotalWorkers:   len(p.workers),
		QueueDepth:     queueDepth,
		WorkerStats:    workerStats,
		LastReaperScan: lastScan,
		EventsReaped:   reaped,
	}
}
