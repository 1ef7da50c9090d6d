package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowboat-dev/rowboat/ent"
	entcell "github.com/rowboat-dev/rowboat/ent/cell"
	entcellstatus "github.com/rowboat-dev/rowboat/ent/cellstatus"
	entfillevent "github.com/rowboat-dev/rowboat/ent/fillevent"
	entcellaudit "github.com/rowboat-dev/rowboat/ent/cellaudit"
	"github.com/rowboat-dev/rowboat/pkg/config"
	"github.com/rowboat-dev/rowboat/pkg/database"
	"github.com/rowboat-dev/rowboat/pkg/models"
	"github.com/rowboat-dev/rowboat/pkg/operator"
	"github.com/rowboat-dev/rowboat/pkg/queue"
	"github.com/rowboat-dev/rowboat/pkg/services"
	"github.com/rowboat-dev/rowboat/pkg/validator"
	"github.com/rowboat-dev/rowboat/pkg/wrapper"
	testdb "github.com/rowboat-dev/rowboat/test/database"
)

// stubOperator plays scripted outputs and records the inputs it saw.
type stubOperator struct {
	name    models.OperatorType
	outputs []operator.Output
	err     error
	inputs  []operator.Input
}

func (s *stubOperator) Name() models.OperatorType { return s.name }

func (s *stubOperator) Operate(_ context.Context, in operator.Input) (operator.Output, error) {
	s.inputs = append(s.inputs, in)
	if s.err != nil {
		return nil, s.err
	}
	out := s.outputs[0]
	if len(s.outputs) > 1 {
		s.outputs = s.outputs[1:]
	}
	return out, nil
}

type engineFixture struct {
	client   *database.Client
	store    *queue.Store
	executor *Executor
	ingest   *services.IngestService
	statuses *services.StatusService
	stub     *stubOperator
	sheetID  string
}

// setupEngine builds a three-column sheet whose fill columns are pinned
// to the stub operator, plus the full pipeline around it.
func setupEngine(t *testing.T, stub *stubOperator) *engineFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	sheets := services.NewSheetService(client.Client)
	sheet, err := sheets.CreateSheet(ctx, &services.CreateSheetRequest{
		Columns: []services.ColumnInput{
			{Title: "Company", DataType: models.DataTypeCompany},
			{Title: "Website", DataType: models.DataTypeURL, OperatorType: models.OperatorStructuredOutput},
			{Title: "CEO", DataType: models.DataTypePerson, OperatorType: models.OperatorStructuredOutput},
		},
	})
	require.NoError(t, err)

	statuses := services.NewStatusService(client.Client)
	v := validator.New(config.DefaultValidatorConfig())
	w := wrapper.New(client.Client, v, config.DefaultWrapperConfig())
	store := queue.NewStore(client.Client)

	executor := NewExecutor(sheets, statuses, w, operator.NewRegistry(stub), store,
		config.DefaultDispatcherConfig())

	return &engineFixture{
		client:   client,
		store:    store,
		executor: executor,
		ingest:   services.NewIngestService(client.Client),
		statuses: statuses,
		stub:     stub,
		sheetID:  sheet.ID,
	}
}

func (f *engineFixture) claimOne(t *testing.T) *ent.FillEvent {
	t.Helper()
	events, err := f.store.Claim(context.Background(), 1, "pod-test")
	require.NoError(t, err)
	require.Len(t, events, 1)
	return events[0]
}

func structuredValue(v string) operator.StructuredOutput {
	return operator.StructuredOutput{
		StructuredData: map[string]interface{}{"value": v},
		Confidence:     0.9,
	}
}

func TestExecutor_FillChain(t *testing.T) {
	stub := &stubOperator{
		name: models.OperatorStructuredOutput,
		outputs: []operator.Output{
			structuredValue("https://acme.example"),
			structuredValue("Jane Doe"),
		},
	}
	f := setupEngine(t, stub)
	ctx := context.Background()

	_, err := f.ingest.EnqueueCellEdit(ctx, &models.CellEditRequest{
		SheetID: f.sheetID, RowIndex: 0, ColIndex: 0, Content: "Acme Robotics",
	})
	require.NoError(t, err)

	// first hop: seed → Website
	res := f.executor.Execute(ctx, f.claimOne(t))
	require.NoError(t, res.Err)
	assert.Equal(t, entfillevent.StatusCompleted, res.Status)

	website, err := f.client.Cell.Query().
		Where(entcell.SheetIDEQ(f.sheetID), entcell.RowIndexEQ(0), entcell.ColIndexEQ(1)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example", website.Content)

	// the write enqueued exactly one successor, sourced at the new cell
	successor := f.claimOne(t)
	assert.Equal(t, entfillevent.EventTypeRobotCellUpdate, successor.EventType)
	assert.Equal(t, 1, successor.ColIndex)
	assert.Equal(t, "https://acme.example", models.PayloadContent(successor.Payload))

	// second hop: Website → CEO, last column, so the chain ends
	res = f.executor.Execute(ctx, successor)
	require.NoError(t, res.Err)
	assert.Equal(t, entfillevent.StatusCompleted, res.Status)

	ceo, err := f.client.Cell.Query().
		Where(entcell.SheetIDEQ(f.sheetID), entcell.RowIndexEQ(0), entcell.ColIndexEQ(2)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", ceo.Content)

	_, err = f.store.Claim(ctx, 1, "pod-test")
	assert.ErrorIs(t, err, queue.ErrNoEventsAvailable)

	// one audit row per engine write, none for the user's seed
	audits, err := f.client.CellAudit.Query().
		Where(entcellaudit.SheetIDEQ(f.sheetID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, audits)

	// both fill cells report completed
	statuses, err := f.statuses.ListForSheet(ctx, f.sheetID)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, s := range statuses {
		assert.Equal(t, entcellstatus.StatusCompleted, s.Status)
	}
}

func TestExecutor_RetryWithImprovedPrompt(t *testing.T) {
	stub := &stubOperator{
		name: models.OperatorStructuredOutput,
		outputs: []operator.Output{
			operator.StructuredOutput{RawResponse: "null"}, // rejected
			structuredValue("https://acme.example"),
		},
	}
	f := setupEngine(t, stub)
	ctx := context.Background()

	_, err := f.ingest.EnqueueCellEdit(ctx, &models.CellEditRequest{
		SheetID: f.sheetID, RowIndex: 0, ColIndex: 0, Content: "Acme Robotics",
	})
	require.NoError(t, err)

	event := f.claimOne(t)
	res := f.executor.Execute(ctx, event)
	require.NoError(t, res.Err)
	assert.Equal(t, entfillevent.StatusCompleted, res.Status)

	// the retry ran with an improvement prompt, not the original one
	require.Len(t, stub.inputs, 2)
	assert.True(t, strings.HasPrefix(stub.inputs[1].Prompt(), "RETRY:"))

	n, err := f.store.ReadRetryCount(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	cell, err := f.client.Cell.Query().
		Where(entcell.SheetIDEQ(f.sheetID), entcell.RowIndexEQ(0), entcell.ColIndexEQ(1)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example", cell.Content)
}

func TestExecutor_RetriesExhaustedHaltChain(t *testing.T) {
	stub := &stubOperator{
		name:    models.OperatorStructuredOutput,
		outputs: []operator.Output{operator.StructuredOutput{RawResponse: "null"}},
	}
	f := setupEngine(t, stub)
	ctx := context.Background()

	_, err := f.ingest.EnqueueCellEdit(ctx, &models.CellEditRequest{
		SheetID: f.sheetID, RowIndex: 0, ColIndex: 0, Content: "Acme Robotics",
	})
	require.NoError(t, err)

	res := f.executor.Execute(ctx, f.claimOne(t))
	require.NoError(t, res.Err)
	// the event itself completes; the failure is recorded on the cell
	assert.Equal(t, entfillevent.StatusCompleted, res.Status)

	// initial attempt + MaxRetries
	assert.Len(t, stub.inputs, 1+config.DefaultDispatcherConfig().MaxRetries)

	// nothing was written, so no successor exists
	_, err = f.store.Claim(ctx, 1, "pod-test")
	assert.ErrorIs(t, err, queue.ErrNoEventsAvailable)

	count, err := f.client.Cell.Query().
		Where(entcell.SheetIDEQ(f.sheetID), entcell.ColIndexEQ(1)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	status, err := f.statuses.Get(ctx, f.sheetID, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, entcellstatus.StatusError, status.Status)
}

func TestExecutor_OperatorFailureFailsEvent(t *testing.T) {
	stub := &stubOperator{
		name: models.OperatorStructuredOutput,
		err:  errors.New("tool service unavailable"),
	}
	f := setupEngine(t, stub)
	ctx := context.Background()

	_, err := f.ingest.EnqueueCellEdit(ctx, &models.CellEditRequest{
		SheetID: f.sheetID, RowIndex: 0, ColIndex: 0, Content: "Acme Robotics",
	})
	require.NoError(t, err)

	res := f.executor.Execute(ctx, f.claimOne(t))
	assert.Equal(t, entfillevent.StatusFailed, res.Status)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "tool service unavailable")

	status, err := f.statuses.Get(ctx, f.sheetID, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, entcellstatus.StatusError, status.Status)
}

func TestExecutor_DeletedSheetCompletesAsNoOp(t *testing.T) {
	stub := &stubOperator{name: models.OperatorStructuredOutput}
	f := setupEngine(t, stub)
	ctx := context.Background()

	event, err := f.store.Enqueue(ctx, "no-such-sheet", 0, 0, models.EventUserCellEdit,
		map[string]interface{}{"content": "orphan"})
	require.NoError(t, err)

	res := f.executor.Execute(ctx, event)
	require.NoError(t, res.Err)
	assert.Equal(t, entfillevent.StatusCompleted, res.Status)
	assert.Empty(t, stub.inputs)
}

// echoOperator derives its output from the row's seed value, so
// concurrent chains expose any cross-row leakage in the prompt context.
type echoOperator struct {
	mu    sync.Mutex
	calls int
}

func (e *echoOperator) Name() models.OperatorType { return models.OperatorStructuredOutput }

func (e *echoOperator) Operate(_ context.Context, in operator.Input) (operator.Output, error) {
	e.mu.Lock()
	e.calls++
	e.mu.Unlock()

	si, ok := in.(operator.StructuredInput)
	if !ok {
		return nil, fmt.Errorf("unexpected input type %T", in)
	}
	raw, ok := si.RawData.(map[string]string)
	if !ok {
		return nil, fmt.Errorf("unexpected raw data type %T", si.RawData)
	}
	return structuredValue(raw["Seed"] + "-filled"), nil
}

func TestExecutor_TwoRowsFillConcurrently(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	sheets := services.NewSheetService(client.Client)
	sheet, err := sheets.CreateSheet(ctx, &services.CreateSheetRequest{
		Columns: []services.ColumnInput{
			{Title: "Seed", DataType: models.DataTypeShortText},
			{Title: "First", DataType: models.DataTypeShortText, OperatorType: models.OperatorStructuredOutput},
			{Title: "Second", DataType: models.DataTypeShortText, OperatorType: models.OperatorStructuredOutput},
		},
	})
	require.NoError(t, err)

	statuses := services.NewStatusService(client.Client)
	w := wrapper.New(client.Client, validator.New(config.DefaultValidatorConfig()), config.DefaultWrapperConfig())
	executor := NewExecutor(sheets, statuses, w, operator.NewRegistry(&echoOperator{}),
		queue.NewStore(client.Client), config.DefaultDispatcherConfig())

	poolCfg := config.DefaultDispatcherConfig()
	poolCfg.Parallelism = 2
	poolCfg.PollInterval = 50 * time.Millisecond
	poolCfg.PollIntervalJitter = 10 * time.Millisecond
	pool := queue.NewWorkerPool("pod-test", client.Client, poolCfg, executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	ingest := services.NewIngestService(client.Client)
	seeds := map[int]string{0: "alpha", 1: "beta"}
	for row, seed := range seeds {
		_, err := ingest.EnqueueCellEdit(ctx, &models.CellEditRequest{
			SheetID: sheet.ID, RowIndex: row, ColIndex: 0, Content: seed,
		})
		require.NoError(t, err)
	}

	// both chains drain: two seed events plus two successors
	require.Eventually(t, func() bool {
		n, err := client.FillEvent.Query().
			Where(entfillevent.StatusEQ(entfillevent.StatusCompleted)).
			Count(ctx)
		return err == nil && n == 4
	}, 15*time.Second, 50*time.Millisecond)

	// every filled cell derives from its own row's seed
	for row, seed := range seeds {
		for col := 1; col <= 2; col++ {
			cell, err := client.Cell.Query().
				Where(entcell.SheetIDEQ(sheet.ID), entcell.RowIndexEQ(row), entcell.ColIndexEQ(col)).
				Only(ctx)
			require.NoError(t, err)
			assert.Equal(t, seed+"-filled", cell.Content, "row %d col %d", row, col)
		}
	}

	all, err := statuses.ListForSheet(ctx, sheet.ID)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for _, s := range all {
		assert.Equal(t, entcellstatus.StatusCompleted, s.Status)
	}
}

func TestExecutor_LastColumnSourceCompletesChain(t *testing.T) {
	stub := &stubOperator{name: models.OperatorStructuredOutput}
	f := setupEngine(t, stub)
	ctx := context.Background()

	event, err := f.store.Enqueue(ctx, f.sheetID, 0, 2, models.EventRobotCellUpdate,
		map[string]interface{}{"content": "Jane Doe"})
	require.NoError(t, err)

	res := f.executor.Execute(ctx, event)
	require.NoError(t, res.Err)
	assert.Equal(t, entfillevent.StatusCompleted, res.Status)
	assert.Empty(t, stub.inputs)
}
