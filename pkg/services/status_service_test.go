package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entcellstatus "github.com/rowboat-dev/rowboat/ent/cellstatus"
	"github.com/rowboat-dev/rowboat/pkg/models"
	testdb "github.com/rowboat-dev/rowboat/test/database"
)

func TestStatusService_Upsert(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewStatusService(client.Client)
	ctx := context.Background()
	sheetID := seedSheet(t, client.Client)

	t.Run("converges to one row per cell", func(t *testing.T) {
		require.NoError(t, service.Upsert(ctx, sheetID, 0, 1, models.CellStateProcessing, "google_search", "Searching the web..."))
		require.NoError(t, service.Upsert(ctx, sheetID, 0, 1, models.CellStateCompleted, "google_search", ""))

		status, err := service.Get(ctx, sheetID, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, entcellstatus.StatusCompleted, status.Status)
		require.NotNil(t, status.OperatorName)
		assert.Equal(t, "google_search", *status.OperatorName)
		// a terminal upsert without a message clears the stale one
		assert.Nil(t, status.StatusMessage)
	})

	t.Run("duplicate delivery is idempotent", func(t *testing.T) {
		require.NoError(t, service.Upsert(ctx, sheetID, 1, 1, models.CellStateError, "", "operator failed"))
		require.NoError(t, service.Upsert(ctx, sheetID, 1, 1, models.CellStateError, "", "operator failed"))

		statuses, err := service.ListForSheet(ctx, sheetID)
		require.NoError(t, err)

		count := 0
		for _, s := range statuses {
			if s.RowIndex == 1 && s.ColIndex == 1 {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("list is ordered by row then column", func(t *testing.T) {
		require.NoError(t, service.Upsert(ctx, sheetID, 0, 2, models.CellStateIdle, "", ""))

		statuses, err := service.ListForSheet(ctx, sheetID)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(statuses), 3)
		for i := 1; i < len(statuses); i++ {
			prev, cur := statuses[i-1], statuses[i]
			ordered := prev.RowIndex < cur.RowIndex ||
				(prev.RowIndex == cur.RowIndex && prev.ColIndex < cur.ColIndex)
			assert.True(t, ordered)
		}
	})

	t.Run("missing cell status", func(t *testing.T) {
		_, err := service.Get(ctx, sheetID, 99, 0)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
