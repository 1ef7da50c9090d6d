// Package cleanup provides data retention sweeps.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/rowboat-dev/rowboat/ent"
	"github.com/rowboat-dev/rowboat/ent/cellaudit"
	"github.com/rowboat-dev/rowboat/pkg/config"
)

// Service periodically trims the sheet_updates audit log once rows
// pass the configured maximum age. Disabled by default: the audit log
// is retained indefinitely unless AuditMaxAge is set.
//
// The sweep is idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Enabled reports whether the retention sweep will do anything.
func (s *Service) Enabled() bool {
	return s.config.AuditMaxAge > 0
}

// Start launches the background sweep loop. No-op when retention is
// disabled.
func (s *Service) Start(ctx context.Context) {
	if !s.Enabled() || s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention sweep started",
		"audit_max_age", s.config.AuditMaxAge,
		"interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention sweep stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep deletes audit rows older than the retention window.
func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.config.AuditMaxAge)

	n, err := s.client.CellAudit.Delete().
		Where(cellaudit.AppliedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Audit retention sweep failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Audit rows deleted by retention sweep", "count", n, "cutoff", cutoff)
	}
}
