package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/rowboat-dev/rowboat/ent"
	"github.com/rowboat-dev/rowboat/ent/cellstatus"
	"github.com/rowboat-dev/rowboat/ent/fillevent"
	"github.com/rowboat-dev/rowboat/ent/predicate"
	"github.com/rowboat-dev/rowboat/pkg/models"
)

// Store implements the durable queue operations on fill events.
// Delivery is at-least-once: consumers must make their writes
// idempotent (cell writes are keyed upserts).
type Store struct {
	client *ent.Client
}

// NewStore creates a queue store.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// Enqueue inserts a pending event.
func (s *Store) Enqueue(ctx context.Context, sheetID string, rowIndex, colIndex int, eventType models.EventType, payload map[string]interface{}) (*ent.FillEvent, error) {
	event, err := s.client.FillEvent.Create().
		SetID(uuid.New().String()).
		SetSheetID(sheetID).
		SetRowIndex(rowIndex).
		SetColIndex(colIndex).
		SetEventType(fillevent.EventType(eventType)).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue event: %w", err)
	}
	return event, nil
}

// Claim atomically claims up to limit pending events, oldest first,
// using FOR UPDATE SKIP LOCKED so concurrent dispatchers never claim
// the same event. Claimed events are transitioned to processing with
// this pod recorded as the owner.
func (s *Store) Claim(ctx context.Context, limit int, podID string) ([]*ent.FillEvent, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	events, err := tx.FillEvent.Query().
		Where(fillevent.StatusEQ(fillevent.StatusPending)).
		Order(ent.Asc(fillevent.FieldCreatedAt)).
		Limit(limit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending events: %w", err)
	}
	if len(events) == 0 {
		return nil, ErrNoEventsAvailable
	}

	now := time.Now()
	claimed := make([]*ent.FillEvent, 0, len(events))
	for _, e := range events {
		c, err := e.Update().
			SetStatus(fillevent.StatusProcessing).
			SetPodID(podID).
			SetClaimedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim event %s: %w", e.ID, err)
		}
		claimed = append(claimed, c)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// Complete transitions an event to completed and stamps processed_at.
func (s *Store) Complete(ctx context.Context, eventID string) error {
	err := s.client.FillEvent.UpdateOneID(eventID).
		SetStatus(fillevent.StatusCompleted).
		SetProcessedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete event %s: %w", eventID, err)
	}
	return nil
}

// Fail transitions an event to failed, persisting the error.
func (s *Store) Fail(ctx context.Context, eventID string, cause error) error {
	update := s.client.FillEvent.UpdateOneID(eventID).
		SetStatus(fillevent.StatusFailed).
		SetProcessedAt(time.Now())
	if cause != nil {
		update = update.SetLastError(cause.Error())
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to fail event %s: %w", eventID, err)
	}
	return nil
}

// IncrementRetry bumps the event's retry count without changing status.
func (s *Store) IncrementRetry(ctx context.Context, eventID string) error {
	err := s.client.FillEvent.UpdateOneID(eventID).
		AddRetryCount(1).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment retry count for %s: %w", eventID, err)
	}
	return nil
}

// ReadRetryCount returns the event's current retry count.
func (s *Store) ReadRetryCount(ctx context.Context, eventID string) (int, error) {
	event, err := s.client.FillEvent.Query().
		Where(fillevent.IDEQ(eventID)).
		Select(fillevent.FieldRetryCount).
		Only(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read retry count for %s: %w", eventID, err)
	}
	return event.RetryCount, nil
}

// QueueDepth returns the number of pending events.
func (s *Store) QueueDepth(ctx context.Context) (int, error) {
	return s.client.FillEvent.Query().
		Where(fillevent.StatusEQ(fillevent.StatusPending)).
		Count(ctx)
}

// Reap force-completes stuck events older than the threshold:
// processing events whose claim has gone stale, and (when reapPending
// is set) pending events that no dispatcher ever picked up. Forward
// progress is preferred over the stuck fill; the chain halts for the
// affected row, and the halt is recorded on the target cell's status.
// Returns the number of events reaped.
func (s *Store) Reap(ctx context.Context, olderThan time.Duration, reapPending bool) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	reaped, err := s.reapMatching(ctx,
		[]predicate.FillEvent{
			fillevent.StatusEQ(fillevent.StatusProcessing),
			fillevent.ClaimedAtNotNil(),
			fillevent.ClaimedAtLT(cutoff),
		},
		fmt.Sprintf("reaped: stuck in processing for over %v", olderThan))
	if err != nil {
		return 0, fmt.Errorf("failed to reap processing events: %w", err)
	}

	if reapPending {
		n, err := s.reapMatching(ctx,
			[]predicate.FillEvent{
				fillevent.StatusEQ(fillevent.StatusPending),
				fillevent.CreatedAtLT(cutoff),
			},
			fmt.Sprintf("reaped: pending for over %v", olderThan))
		if err != nil {
			return reaped, fmt.Errorf("failed to reap pending events: %w", err)
		}
		reaped += n
	}
	return reaped, nil
}

// reapMatching force-completes the events matching ps and flips their
// target cell statuses to error.
func (s *Store) reapMatching(ctx context.Context, ps []predicate.FillEvent, cause string) (int, error) {
	stuck, err := s.client.FillEvent.Query().Where(ps...).All(ctx)
	if err != nil {
		return 0, err
	}
	if len(stuck) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(stuck))
	for _, e := range stuck {
		ids = append(ids, e.ID)
	}

	n, err := s.client.FillEvent.Update().
		Where(append([]predicate.FillEvent{fillevent.IDIn(ids...)}, ps...)...).
		SetStatus(fillevent.StatusCompleted).
		SetProcessedAt(time.Now()).
		SetLastError(cause).
		Save(ctx)
	if err != nil {
		return 0, err
	}

	markTargetCellError(ctx, s.client, stuck, "fill abandoned: "+cause)
	return n, nil
}

// CleanupStartupOrphans force-fails processing events owned by this pod
// from a previous run, recording the halt on their target cells. Called
// once during startup, before the worker pool begins processing:
// anything this pod held when it died is gone.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.FillEvent.Query().
		Where(
			fillevent.StatusEQ(fillevent.StatusProcessing),
			fillevent.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(orphans) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orphans))
	for _, e := range orphans {
		ids = append(ids, e.ID)
	}

	n, err := client.FillEvent.Update().
		Where(fillevent.IDIn(ids...)).
		SetStatus(fillevent.StatusFailed).
		SetProcessedAt(time.Now()).
		SetLastError(fmt.Sprintf("orphaned: pod %s restarted while event was processing", podID)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to clean up startup orphans: %w", err)
	}

	markTargetCellError(ctx, client, orphans, "fill interrupted by a dispatcher restart")

	if n > 0 {
		slog.Warn("Recovered startup orphans from previous run", "pod_id", podID, "count", n)
	}
	return nil
}

// markTargetCellError upserts an error status for the target cell of
// each event. Every forced event transition must leave a visible trace
// on the cell, or the UI keeps showing a fill in flight. Failures are
// logged and skipped: the sheet may already be deleted, and the events
// are transitioned either way.
func markTargetCellError(ctx context.Context, client *ent.Client, events []*ent.FillEvent, message string) {
	for _, e := range events {
		err := client.CellStatus.Create().
			SetID(uuid.New().String()).
			SetSheetID(e.SheetID).
			SetRowIndex(e.RowIndex).
			SetColIndex(e.ColIndex + 1).
			SetStatus(cellstatus.StatusError).
			SetStatusMessage(message).
			OnConflictColumns(cellstatus.FieldSheetID, cellstatus.FieldRowIndex, cellstatus.FieldColIndex).
			SetStatus(cellstatus.StatusError).
			SetStatusMessage(message).
			SetUpdatedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			slog.Warn("Failed to record halt on target cell",
				"event_id", e.ID, "sheet_id", e.SheetID,
				"row", e.RowIndex, "target_col", e.ColIndex+1, "error", err)
		}
	}
}
