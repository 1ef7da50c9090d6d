package models

// ColumnSpec is the format contract of a single column as seen by the
// engine: enough to select an operator, build the contextual prompt, and
// validate results, without dragging the persistence layer along.
type ColumnSpec struct {
	ID           string
	Position     int
	Title        string
	DataType     DataType
	OperatorType OperatorType // empty when the dispatcher selects by heuristic
	Prompt       string
	Config       map[string]interface{}

	// Format hints
	MaxLength   int // 0 = unset
	MinLength   int // 0 = unset
	Examples    []string
	Description string
	Required    bool
}

// SheetContext is the ephemeral per-event view of a sheet, rebuilt at
// dispatch time because row state changes between events.
type SheetContext struct {
	SheetID            string
	TemplateType       TemplateType
	SystemPrompt       string
	Columns            []ColumnSpec // ordered by position
	RowIndex           int
	CurrentColumnIndex int            // source column of the event
	RowData            map[int]string // col index -> current cell content
}

// TargetIndex returns the index of the column being filled.
func (c *SheetContext) TargetIndex() int {
	return c.CurrentColumnIndex + 1
}

// TargetColumn returns the column being filled, or nil when the chain is
// complete (the source column is the last one).
func (c *SheetContext) TargetColumn() *ColumnSpec {
	idx := c.TargetIndex()
	if idx < 0 || idx >= len(c.Columns) {
		return nil
	}
	return &c.Columns[idx]
}

// SourceContent returns the current content of the source column.
func (c *SheetContext) SourceContent() string {
	return c.RowData[c.CurrentColumnIndex]
}
