package wrapper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rowboat-dev/rowboat/ent"
	"github.com/rowboat-dev/rowboat/ent/cell"
	"github.com/rowboat-dev/rowboat/ent/fillevent"
	"github.com/rowboat-dev/rowboat/pkg/config"
	"github.com/rowboat-dev/rowboat/pkg/models"
	"github.com/rowboat-dev/rowboat/pkg/operator"
	"github.com/rowboat-dev/rowboat/pkg/validator"
)

// Result is the outcome of one write attempt, consumed by the
// dispatcher's retry loop.
type Result struct {
	// Success mirrors validation.Valid for written content; false when
	// the content was rejected pre-write.
	Success bool

	// Written reports whether a cell write actually happened. Rejected
	// content is never written and must never enqueue a successor.
	Written bool

	// Content is the final value written to the cell (empty on rejection).
	Content string

	// NeedsRetry requests one in-process retry with RetryPrompt.
	NeedsRetry bool

	ValidationIssues []string
	RetryPrompt      string
}

// Wrapper owns the write path between an operator output and the sheet.
type Wrapper struct {
	db        *ent.Client
	validator *validator.Validator
	cfg       *config.WrapperConfig
}

// New creates a wrapper.
func New(db *ent.Client, v *validator.Validator, cfg *config.WrapperConfig) *Wrapper {
	return &Wrapper{db: db, validator: v, cfg: cfg}
}

// Apply extracts, sanitizes, validates and writes one operator output
// to the target cell of sctx, recording the write in the audit log.
// originalPrompt is the contextual prompt the operator ran with; it
// seeds the improvement prompt when a retry is requested.
//
// Apply never enqueues the successor event: the dispatcher does that
// once the retry loop has settled, via EnqueueSuccessor.
func (w *Wrapper) Apply(ctx context.Context, sctx *models.SheetContext, op models.OperatorType, out operator.Output, originalPrompt string) (*Result, error) {
	target := sctx.TargetColumn()
	if target == nil {
		return nil, fmt.Errorf("no target column: source %d is the last column", sctx.CurrentColumnIndex)
	}

	extracted, err := ExtractContent(out, w.cfg)
	if err != nil {
		if errors.Is(err, ErrNoContent) {
			return w.rejected(target, originalPrompt, "operator returned no usable content"), nil
		}
		return nil, err
	}

	sanitized, err := Sanitize(extracted, w.cfg.BlockedURLHosts, w.cfg.MaxCellLength)
	if err != nil {
		if errors.Is(err, ErrContentRejected) {
			return w.rejected(target, originalPrompt, err.Error()), nil
		}
		return nil, err
	}

	validation := w.validator.Validate(sanitized, target)
	content := sanitized
	if validation.Sanitized != "" && validation.Valid {
		content = validation.Sanitized
	}

	if err := w.writeCell(ctx, sctx, target.Position, content); err != nil {
		return nil, err
	}

	res := &Result{
		Success:          validation.Valid,
		Written:          true,
		Content:          content,
		NeedsRetry:       w.validator.NeedsRetry(&validation),
		ValidationIssues: validation.IssueMessages(),
	}
	if res.NeedsRetry {
		res.RetryPrompt = validator.GenerateImprovementPrompt(originalPrompt, target, &validation)
	}

	slog.Debug("cell written",
		"sheet_id", sctx.SheetID,
		"row", sctx.RowIndex,
		"col", target.Position,
		"valid", validation.Valid,
		"confidence", validation.Confidence)
	return res, nil
}

// rejected builds the result for content that never reached the cell.
// A retry may still produce writable content, so the improvement prompt
// is generated from a synthetic hard-failure validation.
func (w *Wrapper) rejected(target *models.ColumnSpec, originalPrompt, reason string) *Result {
	synthetic := &validator.ValidationResult{
		Valid:      false,
		Confidence: 0,
		Issues: []validator.Issue{{
			Type:     validator.IssueContent,
			Message:  reason,
			Severity: validator.SeverityError,
		}},
		Suggestions: []string{"produce a concrete value; never answer with null, placeholders, or tracking URLs"},
	}
	return &Result{
		Success:          false,
		Written:          false,
		NeedsRetry:       true,
		ValidationIssues: []string{reason},
		RetryPrompt:      validator.GenerateImprovementPrompt(originalPrompt, target, synthetic),
	}
}

// writeCell upserts the cell and appends the audit record.
func (w *Wrapper) writeCell(ctx context.Context, sctx *models.SheetContext, colIndex int, content string) error {
	err := w.db.Cell.Create().
		SetID(uuid.New().String()).
		SetSheetID(sctx.SheetID).
		SetRowIndex(sctx.RowIndex).
		SetColIndex(colIndex).
		SetContent(content).
		OnConflictColumns(cell.FieldSheetID, cell.FieldRowIndex, cell.FieldColIndex).
		SetContent(content).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert cell (%s, %d, %d): %w", sctx.SheetID, sctx.RowIndex, colIndex, err)
	}

	_, err = w.db.CellAudit.Create().
		SetID(uuid.New().String()).
		SetSheetID(sctx.SheetID).
		SetRowIndex(sctx.RowIndex).
		SetColIndex(colIndex).
		SetContent(content).
		SetUpdateType(models.UpdateTypeAIResponse).
		SetAppliedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to record sheet update: %w", err)
	}
	return nil
}

// EnqueueSuccessor enqueues the robot_cell_update event that fills the
// column after the one just written. No-op when the written column is
// the last one: the chain is complete for this row.
func (w *Wrapper) EnqueueSuccessor(ctx context.Context, sctx *models.SheetContext, content string) error {
	writtenIndex := sctx.TargetIndex()
	if writtenIndex >= len(sctx.Columns)-1 {
		return nil
	}

	_, err := w.db.FillEvent.Create().
		SetID(uuid.New().String()).
		SetSheetID(sctx.SheetID).
		SetRowIndex(sctx.RowIndex).
		SetColIndex(writtenIndex).
		SetEventType(fillevent.EventTypeRobotCellUpdate).
		SetPayload(map[string]interface{}{models.PayloadKeyContent: content}).
		SetStatus(fillevent.StatusPending).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to enqueue successor for (%s, %d, %d): %w", sctx.SheetID, sctx.RowIndex, writtenIndex, err)
	}

	slog.Debug("successor enqueued",
		"sheet_id", sctx.SheetID,
		"row", sctx.RowIndex,
		"source_col", writtenIndex)
	return nil
}
