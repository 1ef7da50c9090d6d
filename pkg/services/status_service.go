package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rowboat-dev/rowboat/ent"
	entcellstatus "github.com/rowboat-dev/rowboat/ent/cellstatus"
	"github.com/rowboat-dev/rowboat/pkg/models"
)

// StatusService maintains the per-cell processing state surfaced to the
// UI. All writes are idempotent upserts on the natural key, so
// duplicate event delivery converges to the same observable state.
type StatusService struct {
	client *ent.Client
}

// NewStatusService creates a new status service.
func NewStatusService(client *ent.Client) *StatusService {
	return &StatusService{client: client}
}

// Upsert sets the processing state of one cell. operatorName and
// message are optional.
func (s *StatusService) Upsert(ctx context.Context, sheetID string, rowIndex, colIndex int, state models.CellState, operatorName, message string) error {
	builder := s.client.CellStatus.Create().
		SetID(uuid.New().String()).
		SetSheetID(sheetID).
		SetRowIndex(rowIndex).
		SetColIndex(colIndex).
		SetStatus(entcellstatus.Status(state))
	if operatorName != "" {
		builder = builder.SetOperatorName(operatorName)
	}
	if message != "" {
		builder = builder.SetStatusMessage(message)
	}

	upsert := builder.
		OnConflictColumns(entcellstatus.FieldSheetID, entcellstatus.FieldRowIndex, entcellstatus.FieldColIndex).
		SetStatus(entcellstatus.Status(state)).
		SetUpdatedAt(time.Now())
	if operatorName != "" {
		upsert = upsert.SetOperatorName(operatorName)
	}
	if message != "" {
		upsert = upsert.SetStatusMessage(message)
	} else {
		upsert = upsert.ClearStatusMessage()
	}

	if err := upsert.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert cell status (%s, %d, %d): %w", sheetID, rowIndex, colIndex, err)
	}
	return nil
}

// ListForSheet returns all cell statuses of a sheet.
func (s *StatusService) ListForSheet(ctx context.Context, sheetID string) ([]*ent.CellStatus, error) {
	statuses, err := s.client.CellStatus.Query().
		Where(entcellstatus.SheetIDEQ(sheetID)).
		Order(ent.Asc(entcellstatus.FieldRowIndex), ent.Asc(entcellstatus.FieldColIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cell statuses: %w", err)
	}
	return statuses, nil
}

// Get returns the status of one cell, or ErrNotFound.
func (s *StatusService) Get(ctx context.Context, sheetID string, rowIndex, colIndex int) (*ent.CellStatus, error) {
	status, err := s.client.CellStatus.Query().
		Where(
			entcellstatus.SheetIDEQ(sheetID),
			entcellstatus.RowIndexEQ(rowIndex),
			entcellstatus.ColIndexEQ(colIndex),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: cell status (%s, %d, %d)", ErrNotFound, sheetID, rowIndex, colIndex)
		}
		return nil, fmt.Errorf("failed to get cell status: %w", err)
	}
	return status, nil
}
