package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// reaperState tracks reaper metrics (thread-safe).
type reaperState struct {
	mu           sync.Mutex
	lastScan     time.Time
	eventsReaped int
}

// runReaper periodically force-completes stuck events. All pods run
// this independently; the update is idempotent, so overlapping scans
// are harmless.
func (p *WorkerPool) runReaper(ctx context.Context) {
	ticker := time.NewTicker(p.config.ReapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			n, err := p.store.Reap(ctx, p.config.ReapAfter, p.config.ReapsPending())
			if err != nil {
				slog.Error("Reaper scan failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Warn("Reaped stuck events", "count", n, "older_than", p.config.ReapAfter)
			}
			p.reaper.mu.Lock()
			p.reaper.lastScan = time.Now()
			p.reaper.eventsReaped += n
			p.reaper.mu.Unlock()
		}
	}
}
