package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowboat-dev/rowboat/ent"
	"github.com/rowboat-dev/rowboat/pkg/config"
	"github.com/rowboat-dev/rowboat/pkg/models"
	testdb "github.com/rowboat-dev/rowboat/test/database"
)

func auditRow(t *testing.T, client *ent.Client, appliedAt time.Time) string {
	t.Helper()
	row, err := client.CellAudit.Create().
		SetID(uuid.New().String()).
		SetSheetID("sheet-1").
		SetRowIndex(0).
		SetColIndex(1).
		SetContent("https://acme.example").
		SetUpdateType(models.UpdateTypeAIResponse).
		SetAppliedAt(appliedAt).
		Save(context.Background())
	require.NoError(t, err)
	return row.ID
}

func TestService_SweepDeletesExpiredAuditRows(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	old := auditRow(t, client.Client, time.Now().Add(-48*time.Hour))
	fresh := auditRow(t, client.Client, time.Now())

	service := NewService(&config.RetentionConfig{
		AuditMaxAge:   24 * time.Hour,
		SweepInterval: time.Hour,
	}, client.Client)
	require.True(t, service.Enabled())

	service.sweep(ctx)

	_, err := client.CellAudit.Get(ctx, old)
	assert.True(t, ent.IsNotFound(err))

	_, err = client.CellAudit.Get(ctx, fresh)
	assert.NoError(t, err)
}

func TestService_DisabledByDefault(t *testing.T) {
	service := NewService(config.DefaultRetentionConfig(), nil)
	assert.False(t, service.Enabled())

	// Start/Stop are no-ops when disabled
	service.Start(context.Background())
	service.Stop()
}
