package services

import (
	"context"
	"fmt"

	"github.com/rowboat-dev/rowboat/ent"
	entfillevent "github.com/rowboat-dev/rowboat/ent/fillevent"
)

// EventService reads fill events for the status API.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new event service.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEvent returns one fill event by ID.
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*ent.FillEvent, error) {
	event, err := s.client.FillEvent.Get(ctx, eventID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: event %s", ErrNotFound, eventID)
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// ListRowEvents returns the event chain of one row, oldest first.
func (s *EventService) ListRowEvents(ctx context.Context, sheetID string, rowIndex int) ([]*ent.FillEvent, error) {
	events, err := s.client.FillEvent.Query().
		Where(
			entfillevent.SheetIDEQ(sheetID),
			entfillevent.RowIndexEQ(rowIndex),
		).
		Order(ent.Asc(entfillevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list row events: %w", err)
	}
	return events, nil
}

// CountByStatus returns pending/processing/completed/failed counts,
// used by the health endpoint.
func (s *EventService) CountByStatus(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, 4)
	for _, st := range []entfillevent.Status{
		entfillevent.StatusPending,
		entfillevent.StatusProcessing,
		entfillevent.StatusCompleted,
		entfillevent.StatusFailed,
	} {
		n, err := s.client.FillEvent.Query().
			Where(entfillevent.StatusEQ(st)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s events: %w", st, err)
		}
		counts[string(st)] = n
	}
	return counts, nil
}
