// Package queue provides the durable fill-event queue: enqueueing,
// atomic claiming, the worker pool that drives event execution, and the
// reaper that unsticks events after crashes.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/rowboat-dev/rowboat/ent"
	"github.com/rowboat-dev/rowboat/ent/fillevent"
)

// ErrNoEventsAvailable indicates no pending events are in the queue.
var ErrNoEventsAvailable = errors.New("no events available")

// EventExecutor runs the fill pipeline for one claimed event. The
// executor owns everything between claim and terminal status: context
// resolution, operator selection and invocation, the cell write, the
// in-process retry, and the cell-status upserts. The worker only
// claims, applies the event timeout, and records the terminal status.
type EventExecutor interface {
	Execute(ctx context.Context, event *ent.FillEvent) *ExecutionResult
}

// ExecutionResult is the terminal state of one event execution. All
// intermediate state (cells, audit records, cell statuses, successor
// events) was already written by the executor.
type ExecutionResult struct {
	Status fillevent.Status // completed or failed
	Err    error            // details when failed
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastReaperScan   time.Time      `json:"last_reaper_scan"`
	EventsReaped     int            `json:"events_reaped"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID              string    `json:"id"`
	Status          WorkerStatus `json:"status"`
	CurrentEventID  string    `json:"current_event_id,omitempty"`
	EventsProcessed int       `json:"events_processed"`
	LastActivity    time.Time `json:"last_activity"`
}
