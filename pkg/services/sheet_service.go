package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rowboat-dev/rowboat/ent"
	entcell "github.com/rowboat-dev/rowboat/ent/cell"
	entcolumn "github.com/rowboat-dev/rowboat/ent/column"
	entsheet "github.com/rowboat-dev/rowboat/ent/sheet"
	"github.com/rowboat-dev/rowboat/pkg/models"
)

// SheetService reads sheet structure and builds the per-event context.
type SheetService struct {
	client *ent.Client
}

// NewSheetService creates a new sheet service.
func NewSheetService(client *ent.Client) *SheetService {
	return &SheetService{client: client}
}

// ColumnInput describes one column at sheet creation.
type ColumnInput struct {
	Title        string                 `json:"title"`
	DataType     models.DataType        `json:"data_type"`
	OperatorType models.OperatorType    `json:"operator_type,omitempty"`
	Prompt       string                 `json:"prompt,omitempty"`
	Config       map[string]interface{} `json:"operator_config,omitempty"`
	MaxLength    int                    `json:"max_length,omitempty"`
	MinLength    int                    `json:"min_length,omitempty"`
	Examples     []string               `json:"examples,omitempty"`
	Description  string                 `json:"description,omitempty"`
	Required     bool                   `json:"required,omitempty"`
}

// CreateSheetRequest is the input to CreateSheet.
type CreateSheetRequest struct {
	TemplateType models.TemplateType `json:"template_type,omitempty"`
	SystemPrompt string              `json:"system_prompt,omitempty"`
	Columns      []ColumnInput       `json:"columns"`
}

// CreateSheet creates a sheet with its ordered columns in one
// transaction. Column positions are assigned densely from 0.
func (s *SheetService) CreateSheet(ctx context.Context, req *CreateSheetRequest) (*ent.Sheet, error) {
	if len(req.Columns) < 2 {
		return nil, NewValidationError("columns", "a sheet needs at least a seed column and one fill column")
	}
	for i, c := range req.Columns {
		if c.Title == "" {
			return nil, NewValidationError("columns", fmt.Sprintf("column %d has no title", i))
		}
		if c.DataType != "" && !c.DataType.IsValid() {
			return nil, NewValidationError("columns", fmt.Sprintf("unknown data type %q", c.DataType))
		}
		if c.OperatorType != "" && !c.OperatorType.IsValid() {
			return nil, NewValidationError("columns", fmt.Sprintf("unknown operator type %q", c.OperatorType))
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	builder := tx.Sheet.Create().SetID(uuid.New().String())
	if req.TemplateType != models.TemplateNone {
		builder = builder.SetTemplateType(entsheet.TemplateType(req.TemplateType))
	}
	if req.SystemPrompt != "" {
		builder = builder.SetSystemPrompt(req.SystemPrompt)
	}
	sheet, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	for i, c := range req.Columns {
		colBuilder := tx.Column.Create().
			SetID(uuid.New().String()).
			SetSheetID(sheet.ID).
			SetPosition(i).
			SetTitle(c.Title).
			SetRequired(c.Required)
		if c.DataType != "" {
			colBuilder = colBuilder.SetDataType(entcolumn.DataType(c.DataType))
		}
		if c.OperatorType != "" {
			colBuilder = colBuilder.SetOperatorType(entcolumn.OperatorType(c.OperatorType))
		}
		if c.Prompt != "" {
			colBuilder = colBuilder.SetPrompt(c.Prompt)
		}
		if c.Config != nil {
			colBuilder = colBuilder.SetOperatorConfig(c.Config)
		}
		if c.MaxLength > 0 {
			colBuilder = colBuilder.SetMaxLength(c.MaxLength)
		}
		if c.MinLength > 0 {
			colBuilder = colBuilder.SetMinLength(c.MinLength)
		}
		if len(c.Examples) > 0 {
			colBuilder = colBuilder.SetExamples(c.Examples)
		}
		if c.Description != "" {
			colBuilder = colBuilder.SetDescription(c.Description)
		}
		if _, err := colBuilder.Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create column %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sheet creation: %w", err)
	}
	return sheet, nil
}

// GetSheet returns one sheet by ID.
func (s *SheetService) GetSheet(ctx context.Context, sheetID string) (*ent.Sheet, error) {
	sheet, err := s.client.Sheet.Get(ctx, sheetID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: sheet %s", ErrNotFound, sheetID)
		}
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}
	return sheet, nil
}

// BuildSheetContext resolves the ephemeral per-event view of a sheet:
// its columns in order and the current content of one row. It is
// rebuilt on every event because row state changes between events.
func (s *SheetService) BuildSheetContext(ctx context.Context, sheetID string, rowIndex, colIndex int) (*models.SheetContext, error) {
	sheet, err := s.GetSheet(ctx, sheetID)
	if err != nil {
		return nil, err
	}

	columns, err := s.client.Column.Query().
		Where(entcolumn.SheetIDEQ(sheetID)).
		Order(ent.Asc(entcolumn.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load columns: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: sheet %s has no columns", ErrNotFound, sheetID)
	}
	if colIndex < 0 || colIndex >= len(columns) {
		return nil, fmt.Errorf("%w: column %d out of range [0,%d)", ErrInvalidInput, colIndex, len(columns))
	}

	cells, err := s.client.Cell.Query().
		Where(entcell.SheetIDEQ(sheetID), entcell.RowIndexEQ(rowIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load row %d: %w", rowIndex, err)
	}

	sctx := &models.SheetContext{
		SheetID:            sheetID,
		RowIndex:           rowIndex,
		CurrentColumnIndex: colIndex,
		Columns:            make([]models.ColumnSpec, 0, len(columns)),
		RowData:            make(map[int]string, len(cells)),
	}
	if sheet.TemplateType != nil {
		sctx.TemplateType = models.TemplateType(*sheet.TemplateType)
	}
	if sheet.SystemPrompt != nil {
		sctx.SystemPrompt = *sheet.SystemPrompt
	}
	for _, c := range columns {
		sctx.Columns = append(sctx.Columns, columnSpec(c))
	}
	for _, c := range cells {
		sctx.RowData[c.ColIndex] = c.Content
	}
	return sctx, nil
}

func columnSpec(c *ent.Column) models.ColumnSpec {
	spec := models.ColumnSpec{
		ID:       c.ID,
		Position: c.Position,
		Title:    c.Title,
		DataType: models.DataType(c.DataType),
		Config:   c.OperatorConfig,
		Examples: c.Examples,
		Required: c.Required,
	}
	if c.OperatorType != nil {
		spec.OperatorType = models.OperatorType(*c.OperatorType)
	}
	if c.Prompt != nil {
		spec.Prompt = *c.Prompt
	}
	if c.MaxLength != nil {
		spec.MaxLength = *c.MaxLength
	}
	if c.MinLength != nil {
		spec.MinLength = *c.MinLength
	}
	if c.Description != nil {
		spec.Description = *c.Description
	}
	return spec
}
