package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rowboat-dev/rowboat/ent"
	entcell "github.com/rowboat-dev/rowboat/ent/cell"
	entcolumn "github.com/rowboat-dev/rowboat/ent/column"
	entfillevent "github.com/rowboat-dev/rowboat/ent/fillevent"
	"github.com/rowboat-dev/rowboat/pkg/models"
)

// IngestService is the write-side entry point: it persists seed cell
// content and enqueues the fill events that start each row's chain.
type IngestService struct {
	client *ent.Client
}

// NewIngestService creates a new ingest service.
func NewIngestService(client *ent.Client) *IngestService {
	return &IngestService{client: client}
}

// EnqueueCellEdit writes the edited cell and enqueues a user_cell_edit
// event with the edited column as source. The write and the enqueue
// share one transaction: an event must never exist without its cell.
func (s *IngestService) EnqueueCellEdit(ctx context.Context, req *models.CellEditRequest) (*ent.FillEvent, error) {
	if err := s.validateTarget(ctx, req.SheetID, req.RowIndex, req.ColIndex); err != nil {
		return nil, err
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := upsertCell(ctx, tx, req.SheetID, req.RowIndex, req.ColIndex, req.Content); err != nil {
		return nil, err
	}

	event, err := tx.FillEvent.Create().
		SetID(uuid.New().String()).
		SetSheetID(req.SheetID).
		SetRowIndex(req.RowIndex).
		SetColIndex(req.ColIndex).
		SetEventType(entfillevent.EventTypeUserCellEdit).
		SetPayload(map[string]interface{}{
			models.PayloadKeyContent: req.Content,
			models.PayloadKeyUserID:  req.UserID,
		}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue cell edit: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cell edit: %w", err)
	}
	return event, nil
}

// EnqueueManualTrigger enqueues a manual_trigger event re-running a
// chosen operator on one cell. The source column is colIndex-1: a
// manual trigger refills the named cell from its predecessor.
func (s *IngestService) EnqueueManualTrigger(ctx context.Context, req *models.ManualTriggerRequest) (*ent.FillEvent, error) {
	if req.ColIndex < 1 {
		return nil, NewValidationError("col_index", "manual triggers refill columns 1 and up")
	}
	if err := s.validateTarget(ctx, req.SheetID, req.RowIndex, req.ColIndex); err != nil {
		return nil, err
	}
	if !models.OperatorType(req.TriggerType).IsValid() {
		return nil, NewValidationError("trigger_type", fmt.Sprintf("unknown operator %q", req.TriggerType))
	}

	payload := map[string]interface{}{
		models.PayloadKeyTriggerType: req.TriggerType,
		models.PayloadKeyUserID:      req.UserID,
	}
	if req.Parameters != nil {
		payload[models.PayloadKeyParameters] = req.Parameters
	}

	event, err := s.client.FillEvent.Create().
		SetID(uuid.New().String()).
		SetSheetID(req.SheetID).
		SetRowIndex(req.RowIndex).
		SetColIndex(req.ColIndex - 1).
		SetEventType(entfillevent.EventTypeManualTrigger).
		SetPayload(payload).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue manual trigger: %w", err)
	}
	return event, nil
}

// BulkCreateRows writes pre-filled rows (CSV import, agent insertion)
// and enqueues one user_cell_edit event per row, sourced at column 0.
// Rows with an empty seed value get their cells written but no event:
// there is nothing to chain from.
func (s *IngestService) BulkCreateRows(ctx context.Context, req *models.BulkRowsRequest, startRow int) ([]*ent.FillEvent, error) {
	if len(req.Rows) == 0 {
		return nil, NewValidationError("rows", "required")
	}

	columnCount, err := s.client.Column.Query().
		Where(entcolumn.SheetIDEQ(req.SheetID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count columns: %w", err)
	}
	if columnCount == 0 {
		return nil, fmt.Errorf("%w: sheet %s", ErrNotFound, req.SheetID)
	}
	for i, row := range req.Rows {
		if len(row) > columnCount {
			return nil, NewValidationError("rows", fmt.Sprintf("row %d has %d values, sheet has %d columns", i, len(row), columnCount))
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	events := make([]*ent.FillEvent, 0, len(req.Rows))
	for i, row := range req.Rows {
		rowIndex := startRow + i
		for col, content := range row {
			if content == "" {
				continue
			}
			if err := upsertCell(ctx, tx, req.SheetID, rowIndex, col, content); err != nil {
				return nil, err
			}
		}

		if len(row) == 0 || row[0] == "" {
			continue
		}
		event, err := tx.FillEvent.Create().
			SetID(uuid.New().String()).
			SetSheetID(req.SheetID).
			SetRowIndex(rowIndex).
			SetColIndex(0).
			SetEventType(entfillevent.EventTypeUserCellEdit).
			SetPayload(map[string]interface{}{
				models.PayloadKeyContent: row[0],
				models.PayloadKeyUserID:  req.UserID,
			}).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to enqueue row %d: %w", rowIndex, err)
		}
		events = append(events, event)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bulk rows: %w", err)
	}
	return events, nil
}

// validateTarget checks the (sheet, row, col) coordinates against the
// sheet's column range.
func (s *IngestService) validateTarget(ctx context.Context, sheetID string, rowIndex, colIndex int) error {
	if rowIndex < 0 {
		return NewValidationError("row_index", "must be non-negative")
	}
	if colIndex < 0 {
		return NewValidationError("col_index", "must be non-negative")
	}
	count, err := s.client.Column.Query().
		Where(entcolumn.SheetIDEQ(sheetID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count columns: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: sheet %s", ErrNotFound, sheetID)
	}
	if colIndex >= count {
		return NewValidationError("col_index", fmt.Sprintf("column %d out of range, sheet has %d columns", colIndex, count))
	}
	return nil
}

// upsertCell writes cell content inside the caller's transaction.
func upsertCell(ctx context.Context, tx *ent.Tx, sheetID string, rowIndex, colIndex int, content string) error {
	err := tx.Cell.Create().
		SetID(uuid.New().String()).
		SetSheetID(sheetID).
		SetRowIndex(rowIndex).
		SetColIndex(colIndex).
		SetContent(content).
		OnConflictColumns(entcell.FieldSheetID, entcell.FieldRowIndex, entcell.FieldColIndex).
		SetContent(content).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert cell (%s, %d, %d): %w", sheetID, rowIndex, colIndex, err)
	}
	return nil
}
