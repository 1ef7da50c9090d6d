package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowboat-dev/rowboat/ent"
	entcellstatus "github.com/rowboat-dev/rowboat/ent/cellstatus"
	"github.com/rowboat-dev/rowboat/ent/fillevent"
	"github.com/rowboat-dev/rowboat/pkg/models"
	testdb "github.com/rowboat-dev/rowboat/test/database"
)

func enqueueN(t *testing.T, store *Store, n int) []*ent.FillEvent {
	t.Helper()
	ctx := context.Background()
	events := make([]*ent.FillEvent, 0, n)
	for i := 0; i < n; i++ {
		e, err := store.Enqueue(ctx, "sheet-1", i, 0, models.EventUserCellEdit,
			map[string]interface{}{"content": "seed"})
		require.NoError(t, err)
		events = append(events, e)
		// distinct created_at so claim ordering is deterministic
		time.Sleep(2 * time.Millisecond)
	}
	return events
}

func TestStore_ClaimOrdering(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	enqueued := enqueueN(t, store, 3)

	claimed, err := store.Claim(ctx, 2, "pod-a")
	require.NoError(t, err)
	require.Len(t, claimed, 2)

	// oldest first
	assert.Equal(t, enqueued[0].ID, claimed[0].ID)
	assert.Equal(t, enqueued[1].ID, claimed[1].ID)
	for _, e := range claimed {
		assert.Equal(t, fillevent.StatusProcessing, e.Status)
		require.NotNil(t, e.PodID)
		assert.Equal(t, "pod-a", *e.PodID)
		assert.NotNil(t, e.ClaimedAt)
	}

	depth, err := store.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)
}

func TestStore_ClaimEmptyQueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)

	_, err := store.Claim(context.Background(), 5, "pod-a")
	assert.ErrorIs(t, err, ErrNoEventsAvailable)
}

func TestStore_ClaimAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	storeA := NewStore(clientA.Client)
	storeB := NewStore(clientB.Client)
	ctx := context.Background()

	enqueueN(t, storeA, 4)

	claimedA, err := storeA.Claim(ctx, 2, "pod-a")
	require.NoError(t, err)
	claimedB, err := storeB.Claim(ctx, 2, "pod-b")
	require.NoError(t, err)

	// no event is delivered to both replicas
	seen := map[string]bool{}
	for _, e := range append(claimedA, claimedB...) {
		assert.False(t, seen[e.ID], "event %s claimed twice", e.ID)
		seen[e.ID] = true
	}
	assert.Len(t, seen, 4)
}

func TestStore_CompleteAndFail(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	events := enqueueN(t, store, 2)

	require.NoError(t, store.Complete(ctx, events[0].ID))
	done, err := client.FillEvent.Get(ctx, events[0].ID)
	require.NoError(t, err)
	assert.Equal(t, fillevent.StatusCompleted, done.Status)
	assert.NotNil(t, done.ProcessedAt)

	require.NoError(t, store.Fail(ctx, events[1].ID, errors.New("operator exploded")))
	failed, err := client.FillEvent.Get(ctx, events[1].ID)
	require.NoError(t, err)
	assert.Equal(t, fillevent.StatusFailed, failed.Status)
	require.NotNil(t, failed.LastError)
	assert.Equal(t, "operator exploded", *failed.LastError)
}

func TestStore_RetryCount(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	events := enqueueN(t, store, 1)
	id := events[0].ID

	require.NoError(t, store.IncrementRetry(ctx, id))
	require.NoError(t, store.IncrementRetry(ctx, id))

	n, err := store.ReadRetryCount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// status untouched
	e, err := client.FillEvent.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, fillevent.StatusPending, e.Status)
}

// createSheet satisfies the cell_statuses foreign key for tests that
// assert the status side effects of forced event transitions.
func createSheet(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Sheet.Create().SetID(id).Save(context.Background())
	require.NoError(t, err)
}

func cellStatusFor(t *testing.T, client *ent.Client, sheetID string, row, col int) *ent.CellStatus {
	t.Helper()
	status, err := client.CellStatus.Query().
		Where(
			entcellstatus.SheetIDEQ(sheetID),
			entcellstatus.RowIndexEQ(row),
			entcellstatus.ColIndexEQ(col),
		).
		Only(context.Background())
	require.NoError(t, err)
	return status
}

func TestStore_Reap(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	createSheet(t, client.Client, "sheet-1")
	events := enqueueN(t, store, 3)

	// stuck processing: claimed long ago, never finished
	_, err := store.Claim(ctx, 1, "pod-a")
	require.NoError(t, err)
	stale := time.Now().Add(-10 * time.Minute)
	require.NoError(t, client.FillEvent.UpdateOneID(events[0].ID).
		SetClaimedAt(stale).Exec(ctx))

	// stale pending: age created_at below the ent layer (the field is
	// immutable in the schema)
	_, err = client.DB().ExecContext(ctx,
		"UPDATE fill_events SET created_at = $1 WHERE event_id = $2",
		stale, events[1].ID)
	require.NoError(t, err)

	t.Run("reaps processing and pending when enabled", func(t *testing.T) {
		reaped, err := store.Reap(ctx, 2*time.Minute, true)
		require.NoError(t, err)
		assert.Equal(t, 2, reaped)

		for _, id := range []string{events[0].ID, events[1].ID} {
			e, err := client.FillEvent.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, fillevent.StatusCompleted, e.Status)
			require.NotNil(t, e.LastError)
			assert.Contains(t, *e.LastError, "reaped")
		}

		// the fresh pending event is untouched
		e, err := client.FillEvent.Get(ctx, events[2].ID)
		require.NoError(t, err)
		assert.Equal(t, fillevent.StatusPending, e.Status)

		// the halt is visible on both target cells
		for _, row := range []int{0, 1} {
			status := cellStatusFor(t, client.Client, "sheet-1", row, 1)
			assert.Equal(t, entcellstatus.StatusError, status.Status)
			require.NotNil(t, status.StatusMessage)
			assert.Contains(t, *status.StatusMessage, "abandoned")
		}
	})

	t.Run("skips pending when disabled", func(t *testing.T) {
		_, err = client.DB().ExecContext(ctx,
			"UPDATE fill_events SET created_at = $1 WHERE event_id = $2",
			stale, events[2].ID)
		require.NoError(t, err)

		reaped, err := store.Reap(ctx, 2*time.Minute, false)
		require.NoError(t, err)
		assert.Zero(t, reaped)

		e, err := client.FillEvent.Get(ctx, events[2].ID)
		require.NoError(t, err)
		assert.Equal(t, fillevent.StatusPending, e.Status)
	})
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewStore(client.Client)
	ctx := context.Background()

	createSheet(t, client.Client, "sheet-1")
	enqueueN(t, store, 3)
	_, err := store.Claim(ctx, 1, "pod-a")
	require.NoError(t, err)
	claimedB, err := store.Claim(ctx, 1, "pod-b")
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, "pod-a"))

	// only pod-a's processing event is failed
	orphaned, err := client.FillEvent.Query().
		Where(fillevent.StatusEQ(fillevent.StatusFailed)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, orphaned, 1)
	require.NotNil(t, orphaned[0].PodID)
	assert.Equal(t, "pod-a", *orphaned[0].PodID)
	require.NotNil(t, orphaned[0].LastError)
	assert.Contains(t, *orphaned[0].LastError, "orphaned")

	other, err := client.FillEvent.Get(ctx, claimedB[0].ID)
	require.NoError(t, err)
	assert.Equal(t, fillevent.StatusProcessing, other.Status)

	// the orphaned target cell shows the error; pod-b's cell is untouched
	status := cellStatusFor(t, client.Client, "sheet-1", orphaned[0].RowIndex, 1)
	assert.Equal(t, entcellstatus.StatusError, status.Status)
	require.NotNil(t, status.StatusMessage)
	assert.Contains(t, *status.StatusMessage, "restart")

	total, err := client.CellStatus.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
