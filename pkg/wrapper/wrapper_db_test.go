package wrapper

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entcell "github.com/rowboat-dev/rowboat/ent/cell"
	entfillevent "github.com/rowboat-dev/rowboat/ent/fillevent"
	entcellaudit "github.com/rowboat-dev/rowboat/ent/cellaudit"
	"github.com/rowboat-dev/rowboat/pkg/config"
	"github.com/rowboat-dev/rowboat/pkg/database"
	"github.com/rowboat-dev/rowboat/pkg/models"
	"github.com/rowboat-dev/rowboat/pkg/operator"
	"github.com/rowboat-dev/rowboat/pkg/services"
	"github.com/rowboat-dev/rowboat/pkg/validator"
	testdb "github.com/rowboat-dev/rowboat/test/database"
)

func setupWrapper(t *testing.T) (*database.Client, *Wrapper, *services.SheetService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)

	sheets := services.NewSheetService(client.Client)
	sheet, err := sheets.CreateSheet(context.Background(), &services.CreateSheetRequest{
		Columns: []services.ColumnInput{
			{Title: "Company", DataType: models.DataTypeCompany},
			{Title: "Website", DataType: models.DataTypeURL},
			{Title: "CEO", DataType: models.DataTypePerson},
		},
	})
	require.NoError(t, err)

	w := New(client.Client, validator.New(config.DefaultValidatorConfig()), config.DefaultWrapperConfig())
	return client, w, sheets, sheet.ID
}

func TestWrapper_ApplyWritesCellAndAudit(t *testing.T) {
	client, w, sheets, sheetID := setupWrapper(t)
	ctx := context.Background()

	sctx, err := sheets.BuildSheetContext(ctx, sheetID, 0, 0)
	require.NoError(t, err)

	out := operator.SearchOutput{Results: []operator.SearchResult{
		{Title: "Acme Robotics", URL: "https://acme.example/about"},
	}}

	res, err := w.Apply(ctx, sctx, models.OperatorGoogleSearch, out, "find the website")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, res.Written)
	assert.False(t, res.NeedsRetry)
	assert.Equal(t, "https://acme.example/about", res.Content)

	cell, err := client.Cell.Query().
		Where(entcell.SheetIDEQ(sheetID), entcell.RowIndexEQ(0), entcell.ColIndexEQ(1)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example/about", cell.Content)

	audits, err := client.CellAudit.Query().
		Where(entcellaudit.SheetIDEQ(sheetID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, models.UpdateTypeAIResponse, audits[0].UpdateType)
	assert.Equal(t, 1, audits[0].ColIndex)
}

func TestWrapper_ApplyIsIdempotent(t *testing.T) {
	client, w, sheets, sheetID := setupWrapper(t)
	ctx := context.Background()

	sctx, err := sheets.BuildSheetContext(ctx, sheetID, 0, 0)
	require.NoError(t, err)

	out := operator.SearchOutput{Results: []operator.SearchResult{
		{Title: "Acme Robotics", URL: "https://acme.example/about"},
	}}

	// duplicate delivery of the same event writes the same cell twice
	_, err = w.Apply(ctx, sctx, models.OperatorGoogleSearch, out, "p")
	require.NoError(t, err)
	_, err = w.Apply(ctx, sctx, models.OperatorGoogleSearch, out, "p")
	require.NoError(t, err)

	cells, err := client.Cell.Query().
		Where(entcell.SheetIDEQ(sheetID), entcell.RowIndexEQ(0), entcell.ColIndexEQ(1)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, cells, 1)
}

func TestWrapper_ApplyRejectedContentIsNotWritten(t *testing.T) {
	client, w, sheets, sheetID := setupWrapper(t)
	ctx := context.Background()

	sctx, err := sheets.BuildSheetContext(ctx, sheetID, 0, 0)
	require.NoError(t, err)

	t.Run("nullish sentinel", func(t *testing.T) {
		out := operator.StructuredOutput{RawResponse: "null"}
		res, err := w.Apply(ctx, sctx, models.OperatorStructuredOutput, out, "the prompt")
		require.NoError(t, err)
		assert.False(t, res.Written)
		assert.False(t, res.Success)
		assert.True(t, res.NeedsRetry)
		assert.NotEmpty(t, res.RetryPrompt)
	})

	t.Run("blocked redirect host", func(t *testing.T) {
		out := operator.SearchOutput{Results: []operator.SearchResult{
			{Title: "hit", URL: "https://vertexaisearch.cloud.google.com/grounding/x"},
		}}
		res, err := w.Apply(ctx, sctx, models.OperatorGoogleSearch, out, "the prompt")
		require.NoError(t, err)
		assert.False(t, res.Written)
		assert.True(t, res.NeedsRetry)
	})

	count, err := client.Cell.Query().
		Where(entcell.SheetIDEQ(sheetID), entcell.ColIndexEQ(1)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "rejected content must never reach the sheet")
}

func TestWrapper_EnqueueSuccessor(t *testing.T) {
	client, w, sheets, sheetID := setupWrapper(t)
	ctx := context.Background()

	t.Run("enqueues the next source column", func(t *testing.T) {
		sctx, err := sheets.BuildSheetContext(ctx, sheetID, 0, 0)
		require.NoError(t, err)

		require.NoError(t, w.EnqueueSuccessor(ctx, sctx, "https://acme.example"))

		events, err := client.FillEvent.Query().
			Where(entfillevent.SheetIDEQ(sheetID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, entfillevent.EventTypeRobotCellUpdate, events[0].EventType)
		assert.Equal(t, 1, events[0].ColIndex)
		assert.Equal(t, "https://acme.example", models.PayloadContent(events[0].Payload))
	})

	t.Run("no successor past the last column", func(t *testing.T) {
		sctx, err := sheets.BuildSheetContext(ctx, sheetID, 0, 1)
		require.NoError(t, err)

		require.NoError(t, w.EnqueueSuccessor(ctx, sctx, "Jane Doe"))

		count, err := client.FillEvent.Query().
			Where(entfillevent.SheetIDEQ(sheetID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
