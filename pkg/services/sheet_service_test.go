package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowboat-dev/rowboat/ent"
	entcolumn "github.com/rowboat-dev/rowboat/ent/column"
	"github.com/rowboat-dev/rowboat/pkg/models"
	testdb "github.com/rowboat-dev/rowboat/test/database"
)

func TestSheetService_CreateSheet(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSheetService(client.Client)
	ctx := context.Background()

	t.Run("creates sheet with ordered columns", func(t *testing.T) {
		sheet, err := service.CreateSheet(ctx, &CreateSheetRequest{
			TemplateType: models.TemplateScientific,
			SystemPrompt: "Track research papers",
			Columns: []ColumnInput{
				{Title: "Topic", DataType: models.DataTypeShortText},
				{Title: "Paper", DataType: models.DataTypeURL, OperatorType: models.OperatorAcademicSearch},
				{Title: "Summary", DataType: models.DataTypeLongText},
			},
		})
		require.NoError(t, err)
		require.NotNil(t, sheet.TemplateType)
		assert.Equal(t, "scientific", string(*sheet.TemplateType))

		columns, err := client.Column.Query().
			Where(entcolumn.SheetIDEQ(sheet.ID)).
			Order(ent.Asc(entcolumn.FieldPosition)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, columns, 3)
		assert.Equal(t, 0, columns[0].Position)
		assert.Equal(t, "Topic", columns[0].Title)
		assert.Equal(t, 2, columns[2].Position)
		require.NotNil(t, columns[1].OperatorType)
		assert.Equal(t, "academic_search", string(*columns[1].OperatorType))
	})

	t.Run("rejects a single-column sheet", func(t *testing.T) {
		_, err := service.CreateSheet(ctx, &CreateSheetRequest{
			Columns: []ColumnInput{{Title: "Lonely"}},
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown operator type", func(t *testing.T) {
		_, err := service.CreateSheet(ctx, &CreateSheetRequest{
			Columns: []ColumnInput{
				{Title: "Seed"},
				{Title: "Fill", OperatorType: models.OperatorType("crystal_ball")},
			},
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestSheetService_GetSheet(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSheetService(client.Client)
	ctx := context.Background()

	_, err := service.GetSheet(ctx, "no-such-sheet")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSheetService_BuildSheetContext(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSheetService(client.Client)
	ingest := NewIngestService(client.Client)
	ctx := context.Background()

	sheet, err := service.CreateSheet(ctx, &CreateSheetRequest{
		SystemPrompt: "Company research",
		Columns: []ColumnInput{
			{Title: "Company", DataType: models.DataTypeCompany},
			{Title: "Website", DataType: models.DataTypeURL, MaxLength: 200},
			{Title: "CEO", DataType: models.DataTypePerson},
		},
	})
	require.NoError(t, err)

	_, err = ingest.EnqueueCellEdit(ctx, &models.CellEditRequest{
		SheetID: sheet.ID, RowIndex: 4, ColIndex: 0, Content: "Acme Robotics",
	})
	require.NoError(t, err)

	t.Run("resolves columns and row data", func(t *testing.T) {
		sctx, err := service.BuildSheetContext(ctx, sheet.ID, 4, 0)
		require.NoError(t, err)

		assert.Equal(t, "Company research", sctx.SystemPrompt)
		require.Len(t, sctx.Columns, 3)
		assert.Equal(t, 200, sctx.Columns[1].MaxLength)
		assert.Equal(t, "Acme Robotics", sctx.SourceContent())

		target := sctx.TargetColumn()
		require.NotNil(t, target)
		assert.Equal(t, "Website", target.Title)
	})

	t.Run("last column has no target", func(t *testing.T) {
		sctx, err := service.BuildSheetContext(ctx, sheet.ID, 4, 2)
		require.NoError(t, err)
		assert.Nil(t, sctx.TargetColumn())
	})

	t.Run("out of range column", func(t *testing.T) {
		_, err := service.BuildSheetContext(ctx, sheet.ID, 4, 7)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("deleted sheet", func(t *testing.T) {
		_, err := service.BuildSheetContext(ctx, "no-such-sheet", 0, 0)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
