package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowboat-dev/rowboat/ent"
	entcell "github.com/rowboat-dev/rowboat/ent/cell"
	entfillevent "github.com/rowboat-dev/rowboat/ent/fillevent"
	"github.com/rowboat-dev/rowboat/pkg/models"
	testdb "github.com/rowboat-dev/rowboat/test/database"
)

func seedSheet(t *testing.T, client *ent.Client) string {
	t.Helper()
	sheet, err := NewSheetService(client).CreateSheet(context.Background(), &CreateSheetRequest{
		Columns: []ColumnInput{
			{Title: "Company", DataType: models.DataTypeCompany},
			{Title: "Website", DataType: models.DataTypeURL},
			{Title: "CEO", DataType: models.DataTypePerson},
		},
	})
	require.NoError(t, err)
	return sheet.ID
}

func TestIngestService_EnqueueCellEdit(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIngestService(client.Client)
	ctx := context.Background()
	sheetID := seedSheet(t, client.Client)

	t.Run("writes cell and enqueues event atomically", func(t *testing.T) {
		event, err := service.EnqueueCellEdit(ctx, &models.CellEditRequest{
			SheetID: sheetID, UserID: "u1", RowIndex: 0, ColIndex: 0, Content: "Acme Robotics",
		})
		require.NoError(t, err)
		assert.Equal(t, entfillevent.StatusPending, event.Status)
		assert.Equal(t, entfillevent.EventTypeUserCellEdit, event.EventType)
		assert.Equal(t, 0, event.ColIndex)
		assert.Equal(t, "Acme Robotics", models.PayloadContent(event.Payload))

		cell, err := client.Cell.Query().
			Where(entcell.SheetIDEQ(sheetID), entcell.RowIndexEQ(0), entcell.ColIndexEQ(0)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Acme Robotics", cell.Content)
	})

	t.Run("re-edit upserts the same cell", func(t *testing.T) {
		_, err := service.EnqueueCellEdit(ctx, &models.CellEditRequest{
			SheetID: sheetID, RowIndex: 0, ColIndex: 0, Content: "Acme Robotics GmbH",
		})
		require.NoError(t, err)

		cells, err := client.Cell.Query().
			Where(entcell.SheetIDEQ(sheetID), entcell.RowIndexEQ(0), entcell.ColIndexEQ(0)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, cells, 1)
		assert.Equal(t, "Acme Robotics GmbH", cells[0].Content)

		// both edits produced their own event
		count, err := client.FillEvent.Query().
			Where(entfillevent.SheetIDEQ(sheetID), entfillevent.RowIndexEQ(0)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := service.EnqueueCellEdit(ctx, &models.CellEditRequest{
			SheetID: sheetID, RowIndex: 1, ColIndex: 0,
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects out-of-range column", func(t *testing.T) {
		_, err := service.EnqueueCellEdit(ctx, &models.CellEditRequest{
			SheetID: sheetID, RowIndex: 1, ColIndex: 9, Content: "x",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown sheet", func(t *testing.T) {
		_, err := service.EnqueueCellEdit(ctx, &models.CellEditRequest{
			SheetID: "no-such-sheet", RowIndex: 0, ColIndex: 0, Content: "x",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestIngestService_EnqueueManualTrigger(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIngestService(client.Client)
	ctx := context.Background()
	sheetID := seedSheet(t, client.Client)

	t.Run("sources the trigger at the preceding column", func(t *testing.T) {
		event, err := service.EnqueueManualTrigger(ctx, &models.ManualTriggerRequest{
			SheetID:     sheetID,
			RowIndex:    2,
			ColIndex:    2,
			TriggerType: "google_search",
			Parameters:  map[string]any{"max_results": 3},
		})
		require.NoError(t, err)
		assert.Equal(t, entfillevent.EventTypeManualTrigger, event.EventType)
		assert.Equal(t, 1, event.ColIndex)
		assert.Equal(t, "google_search", models.PayloadTriggerType(event.Payload))
	})

	t.Run("rejects column 0", func(t *testing.T) {
		_, err := service.EnqueueManualTrigger(ctx, &models.ManualTriggerRequest{
			SheetID: sheetID, RowIndex: 0, ColIndex: 0, TriggerType: "google_search",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown operator", func(t *testing.T) {
		_, err := service.EnqueueManualTrigger(ctx, &models.ManualTriggerRequest{
			SheetID: sheetID, RowIndex: 0, ColIndex: 1, TriggerType: "crystal_ball",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestIngestService_BulkCreateRows(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewIngestService(client.Client)
	ctx := context.Background()
	sheetID := seedSheet(t, client.Client)

	t.Run("one event per seeded row", func(t *testing.T) {
		events, err := service.BulkCreateRows(ctx, &models.BulkRowsRequest{
			SheetID: sheetID,
			Rows: [][]string{
				{"Acme Robotics", "https://acme.example"},
				{"", "https://orphan.example"}, // no seed, no event
				{"Globex"},
			},
		}, 10)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, 10, events[0].RowIndex)
		assert.Equal(t, 12, events[1].RowIndex)
		for _, e := range events {
			assert.Equal(t, 0, e.ColIndex)
			assert.Equal(t, entfillevent.EventTypeUserCellEdit, e.EventType)
		}

		// pre-filled cells were written even for the unseeded row
		count, err := client.Cell.Query().
			Where(entcell.SheetIDEQ(sheetID), entcell.RowIndexEQ(11)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("rejects rows wider than the sheet", func(t *testing.T) {
		_, err := service.BulkCreateRows(ctx, &models.BulkRowsRequest{
			SheetID: sheetID,
			Rows:    [][]string{{"a", "b", "c", "d"}},
		}, 0)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects empty batch", func(t *testing.T) {
		_, err := service.BulkCreateRows(ctx, &models.BulkRowsRequest{SheetID: sheetID}, 0)
		assert.True(t, IsValidationError(err))
	})
}
