package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rowboat-dev/rowboat/ent"
	"github.com/rowboat-dev/rowboat/ent/fillevent"
	"github.com/rowboat-dev/rowboat/pkg/config"
)

// Worker is a single queue worker that polls for and processes fill
// events. A worker claims a batch and works through it sequentially;
// concurrency comes from running multiple workers.
type Worker struct {
	id       string
	podID    string
	store    *Store
	config   *config.DispatcherConfig
	executor EventExecutor
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu              sync.RWMutex
	status          WorkerStatus
	currentEventID  string
	eventsProcessed int
	lastActivity    time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, store *Store, cfg *config.DispatcherConfig, executor EventExecutor) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		store:        store,
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

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:              w.id,
		Status:          w.status,
		CurrentEventID:  w.currentEventID,
		EventsProcessed: w.eventsProcessed,
		LastActivity:    w.lastActivity,
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
				if errors.Is(err, ErrNoEventsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing batch", "error", err)
				w.sleep(time.Second) // Brief backoff on error
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

// pollAndProcess claims a batch of events and processes them in claim
// order. Same-row ordering holds because a row's next event is only
// enqueued after the previous write succeeded.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	events, err := w.store.Claim(ctx, w.config.ClaimBatchSize, w.podID)
	if err != nil {
		return err
	}

	slog.Debug("Batch claimed", "worker_id", w.id, "count", len(events))

	for _, event := range events {
		select {
		case <-w.stopCh:
			// Shutting down mid-batch: the reaper recovers the rest.
			return nil
		case <-ctx.Done():
			return nil
		default:
		}
		w.processEvent(ctx, event)
	}
	return nil
}

// processEvent runs one event through the executor and records its
// terminal status.
func (w *Worker) processEvent(ctx context.Context, event *ent.FillEvent) {
	log := slog.With("event_id", event.ID, "worker_id", w.id,
		"sheet_id", event.SheetID, "row", event.RowIndex, "col", event.ColIndex)

	w.setStatus(WorkerStatusWorking, event.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	eventCtx, cancel := context.WithTimeout(ctx, w.config.EventTimeout)
	defer cancel()

	result := w.executor.Execute(eventCtx, event)
	if result == nil {
		result = &ExecutionResult{
			Status: fillevent.StatusFailed,
			Err:    fmt.Errorf("executor returned nil result"),
		}
	}
	if result.Err == nil && errors.Is(eventCtx.Err(), context.DeadlineExceeded) {
		result = &ExecutionResult{
			Status: fillevent.StatusFailed,
			Err:    fmt.Errorf("event timed out after %v", w.config.EventTimeout),
		}
	}

	// Terminal status uses a background context: the event context may
	// already be cancelled.
	finalCtx, cancelFinal := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelFinal()

	var err error
	switch result.Status {
	case fillevent.StatusCompleted:
		err = w.store.Complete(finalCtx, event.ID)
	default:
		err = w.store.Fail(finalCtx, event.ID, result.Err)
	}
	if err != nil {
		log.Error("Failed to record terminal event status", "error", err)
		return
	}

	w.mu.Lock()
	w.eventsProcessed++
	w.mu.Unlock()

	log.Debug("Event processing complete", "status", result.Status)
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
func (w *Worker) setStatus(status WorkerStatus, eventID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentEventID = eventID
	w.lastActivity = time.Now()
}
