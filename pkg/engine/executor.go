package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rowboat-dev/rowboat/ent"
	"github.com/rowboat-dev/rowboat/ent/fillevent"
	"github.com/rowboat-dev/rowboat/pkg/config"
	"github.com/rowboat-dev/rowboat/pkg/models"
	"github.com/rowboat-dev/rowboat/pkg/operator"
	"github.com/rowboat-dev/rowboat/pkg/queue"
	"github.com/rowboat-dev/rowboat/pkg/services"
	"github.com/rowboat-dev/rowboat/pkg/wrapper"
)

// Executor implements queue.EventExecutor: one claimed event in, one
// cell write (plus at most MaxRetries improved re-runs) and a terminal
// status out.
type Executor struct {
	sheets   *services.SheetService
	statuses *services.StatusService
	wrapper  *wrapper.Wrapper
	registry *operator.Registry
	store    *queue.Store
	cfg      *config.DispatcherConfig
}

// NewExecutor creates an executor.
func NewExecutor(
	sheets *services.SheetService,
	statuses *services.StatusService,
	w *wrapper.Wrapper,
	registry *operator.Registry,
	store *queue.Store,
	cfg *config.DispatcherConfig,
) *Executor {
	return &Executor{
		sheets:   sheets,
		statuses: statuses,
		wrapper:  w,
		registry: registry,
		store:    store,
		cfg:      cfg,
	}
}

// Execute runs the fill pipeline for one event.
func (e *Executor) Execute(ctx context.Context, event *ent.FillEvent) *queue.ExecutionResult {
	log := slog.With("event_id", event.ID, "sheet_id", event.SheetID,
		"row", event.RowIndex, "source_col", event.ColIndex)

	// 1. Resolve context. A deleted sheet completes the event as a
	// no-op: events outlive sheets by design of their lifecycles.
	sctx, err := e.sheets.BuildSheetContext(ctx, event.SheetID, event.RowIndex, event.ColIndex)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Info("Sheet gone, completing event as no-op")
			return &queue.ExecutionResult{Status: fillevent.StatusCompleted}
		}
		return &queue.ExecutionResult{Status: fillevent.StatusFailed, Err: err}
	}

	target := sctx.TargetColumn()
	if target == nil {
		// Source is the last column: the chain is complete.
		log.Debug("No target column, chain complete")
		return &queue.ExecutionResult{Status: fillevent.StatusCompleted}
	}

	content := models.PayloadContent(event.Payload)
	if content == "" {
		content = sctx.SourceContent()
	}

	// 2. Pick operator.
	opType := SelectOperator(sctx, models.EventType(event.EventType), content, models.PayloadTriggerType(event.Payload))
	op, err := e.registry.Get(opType)
	if err != nil {
		return e.failWith(ctx, event, sctx, target, nil, nil, err)
	}
	log = log.With("operator", opType)

	// 3. Mark processing.
	if err := e.statuses.Upsert(ctx, sctx.SheetID, sctx.RowIndex, target.Position,
		models.CellStateProcessing, string(opType), processingMessage(opType, target.Title)); err != nil {
		return &queue.ExecutionResult{Status: fillevent.StatusFailed, Err: err}
	}

	// 4. Prepare input.
	prompt := wrapper.BuildContextualPrompt(sctx, opType)
	settings := MergeSettings(target.Config, parameters(event.Payload))
	input, err := PrepareInput(opType, prompt, content, sctx, settings)
	if err != nil {
		return e.failWith(ctx, event, sctx, target, op, nil, err)
	}

	opCtx := operator.WithEventID(ctx, event.ID)

	// 5–7. Invoke, write, retry with an improved prompt while the
	// validator asks for it and the retry budget lasts.
	res, err := e.invokeAndWrite(opCtx, sctx, opType, op, input, prompt)
	if err != nil {
		return e.failWith(ctx, event, sctx, target, op, input, err)
	}

	retryCount := event.RetryCount
	for res.NeedsRetry && retryCount < e.cfg.MaxRetries && res.RetryPrompt != "" {
		if err := e.store.IncrementRetry(ctx, event.ID); err != nil {
			return e.failWith(ctx, event, sctx, target, op, input, err)
		}
		retryCount++
		log.Debug("Retrying with improved prompt", "retry", retryCount)

		input = input.WithPrompt(res.RetryPrompt)
		res, err = e.invokeAndWrite(opCtx, sctx, opType, op, input, res.RetryPrompt)
		if err != nil {
			return e.failWith(ctx, event, sctx, target, op, input, err)
		}
	}

	// 8. Finalize status.
	state := models.CellStateCompleted
	message := ""
	if !res.Success {
		state = models.CellStateError
		message = strings.Join(res.ValidationIssues, "; ")
	}
	if err := e.statuses.Upsert(ctx, sctx.SheetID, sctx.RowIndex, target.Position,
		state, string(opType), message); err != nil {
		return &queue.ExecutionResult{Status: fillevent.StatusFailed, Err: err}
	}

	// Successor only after a real write: a rejected write halts the
	// chain for this row.
	if res.Written {
		if err := e.wrapper.EnqueueSuccessor(ctx, sctx, res.Content); err != nil {
			return &queue.ExecutionResult{Status: fillevent.StatusFailed, Err: err}
		}
	}

	log.Info("Fill step complete", "target_col", target.Position,
		"written", res.Written, "valid", res.Success, "retries", retryCount-event.RetryCount)
	return &queue.ExecutionResult{Status: fillevent.StatusCompleted}
}

// invokeAndWrite runs one operator call and hands the output to the
// wrapper's write path.
func (e *Executor) invokeAndWrite(ctx context.Context, sctx *models.SheetContext, opType models.OperatorType, op operator.Operator, input operator.Input, prompt string) (*wrapper.Result, error) {
	out, err := op.Operate(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", opType, err)
	}
	if hook, ok := op.(operator.NextHook); ok {
		hook.Next(ctx, out)
	}
	return e.wrapper.Apply(ctx, sctx, opType, out, prompt)
}

// failWith is the catch-all for pipeline errors: cell status to error,
// the operator's error hook, then event failure.
func (e *Executor) failWith(ctx context.Context, event *ent.FillEvent, sctx *models.SheetContext, target *models.ColumnSpec, op operator.Operator, input operator.Input, cause error) *queue.ExecutionResult {
	operatorName := ""
	if op != nil {
		operatorName = string(op.Name())
	}
	if err := e.statuses.Upsert(ctx, sctx.SheetID, sctx.RowIndex, target.Position,
		models.CellStateError, operatorName, cause.Error()); err != nil {
		slog.Error("Failed to record error status", "event_id", event.ID, "error", err)
	}
	if hook, ok := op.(operator.ErrorHook); ok && input != nil {
		hook.OnError(ctx, cause, input)
	}
	return &queue.ExecutionResult{Status: fillevent.StatusFailed, Err: cause}
}

// processingMessage is the human-readable status shown while an
// operator runs.
func processingMessage(op models.OperatorType, columnTitle string) string {
	switch op {
	case models.OperatorGoogleSearch:
		return fmt.Sprintf("Searching the web for %q...", columnTitle)
	case models.OperatorURLContext:
		return fmt.Sprintf("Reading linked pages for %q...", columnTitle)
	case models.OperatorStructuredOutput:
		return fmt.Sprintf("Structuring data for %q...", columnTitle)
	case models.OperatorFunctionCalling:
		return fmt.Sprintf("Planning function calls for %q...", columnTitle)
	case models.OperatorSimilarityExpansion:
		return fmt.Sprintf("Expanding similar terms for %q...", columnTitle)
	case models.OperatorAcademicSearch:
		return fmt.Sprintf("Searching academic sources for %q...", columnTitle)
	default:
		return fmt.Sprintf("Filling %q...", columnTitle)
	}
}

// parameters extracts manual-trigger parameters from an event payload.
func parameters(payload map[string]interface{}) map[string]interface{} {
	if payload == nil {
		return nil
	}
	if m, ok := payload[models.PayloadKeyParameters].(map[string]interface{}); ok {
		return m
	}
	return nil
}
