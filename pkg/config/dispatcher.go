package config

import "time"

// DispatcherConfig controls how fill events are polled, claimed, and
// processed by the worker pool.
type DispatcherConfig struct {
	// Parallelism is the max number of events in flight per replica.
	Parallelism int `yaml:"parallelism"`

	// PollInterval is the base idle poll cadence.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter randomizes the poll cadence.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// ClaimBatchSize is the number of events claimed per poll.
	ClaimBatchSize int `yaml:"claim_batch_size"`

	// MaxRetries bounds in-process retries per event.
	MaxRetries int `yaml:"max_retries"`

	// EventTimeout is the per-event pipeline budget, covering the operator
	// invocation and all surrounding writes.
	EventTimeout time.Duration `yaml:"event_timeout"`

	// ReapInterval is how often the reaper scans for stuck events.
	ReapInterval time.Duration `yaml:"reap_interval"`

	// ReapAfter is how long an event may stay pending/processing before
	// the reaper forces it to completed.
	ReapAfter time.Duration `yaml:"reap_after"`

	// ReapPending controls whether stale pending events are reaped too.
	ReapPending *bool `yaml:"reap_pending"`

	// GracefulShutdownTimeout is the max time to wait for in-flight
	// events to finish during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultDispatcherConfig returns the built-in dispatcher defaults.
func DefaultDispatcherConfig() *DispatcherConfig {
	reapPending := true
	return &DispatcherConfig{
		Parallelism:             8,
		PollInterval:            2 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		ClaimBatchSize:          16,
		MaxRetries:              2,
		EventTimeout:            60 * time.Second,
		ReapInterval:            30 * time.Second,
		ReapAfter:               2 * time.Minute,
		ReapPending:             &reapPending,
		GracefulShutdownTimeout: 90 * time.Second,
	}
}

// ReapsPending reports whether stale pending events should be reaped.
func (c *DispatcherConfig) ReapsPending() bool {
	return c.ReapPending == nil || *c.ReapPending
}
