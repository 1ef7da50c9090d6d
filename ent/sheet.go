// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

// Sheet is the model entity for the Sheet schema.
type Sheet struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Template the sheet was created from; biases operator selection
	TemplateType *sheet.TemplateType `json:"template_type,omitempty"`
	// Sheet-wide goal injected into every contextual prompt
	SystemPrompt *string `json:"system_prompt,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SheetQuery when eager-loading is set.
	Edges        SheetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SheetEdges holds the relations/edges for other nodes in the graph.
type SheetEdges struct {
	// Columns holds the value of the columns edge.
	Columns []*Column `json:"columns,omitempty"`
	// Cells holds the value of the cells edge.
	Cells []*Cell `json:"cells,omitempty"`
	// CellStatuses holds the value of the cell_statuses edge.
	CellStatuses []*CellStatus `json:"cell_statuses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ColumnsOrErr returns the Columns value or an error if the edge
// was not loaded in eager-loading.
func (e SheetEdges) ColumnsOrErr() ([]*Column, error) {
	if e.loadedTypes[0] {
		return e.Columns, nil
	}
	return nil, &NotLoadedError{edge: "columns"}
}

// CellsOrErr returns the Cells value or an error if the edge
// was not loaded in eager-loading.
func (e SheetEdges) CellsOrErr() ([]*Cell, error) {
	if e.loadedTypes[1] {
		return e.Cells, nil
	}
	return nil, &NotLoadedError{edge: "cells"}
}

// CellStatusesOrErr returns the CellStatuses value or an error if the edge
// was not loaded in eager-loading.
func (e SheetEdges) CellStatusesOrErr() ([]*CellStatus, error) {
	if e.loadedTypes[2] {
		return e.CellStatuses, nil
	}
	return nil, &NotLoadedError{edge: "cell_statuses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Sheet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sheet.FieldID, sheet.FieldTemplateType, sheet.FieldSystemPrompt:
			values[i] = new(sql.NullString)
		case sheet.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Sheet fields.
func (_m *Sheet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sheet.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sheet.FieldTemplateType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_type", values[i])
			} else if value.Valid {
				_m.TemplateType = new(sheet.TemplateType)
				*_m.TemplateType = sheet.TemplateType(value.String)
			}
		case sheet.FieldSystemPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_prompt", values[i])
			} else if value.Valid {
				_m.SystemPrompt = new(string)
				*_m.SystemPrompt = value.String
			}
		case sheet.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Sheet.
// This includes values selected through modifiers, order, etc.
func (_m *Sheet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryColumns queries the "columns" edge of the Sheet entity.
func (_m *Sheet) QueryColumns() *ColumnQuery {
	return NewSheetClient(_m.config).QueryColumns(_m)
}

// QueryCells queries the "cells" edge of the Sheet entity.
func (_m *Sheet) QueryCells() *CellQuery {
	return NewSheetClient(_m.config).QueryCells(_m)
}

// QueryCellStatuses queries the "cell_statuses" edge of the Sheet entity.
func (_m *Sheet) QueryCellStatuses() *CellStatusQuery {
	return NewSheetClient(_m.config).QueryCellStatuses(_m)
}

// Update returns a builder for updating this Sheet.
// Note that you need to call Sheet.Unwrap() before calling this method if this Sheet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Sheet) Update() *SheetUpdateOne {
	return NewSheetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Sheet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Sheet) Unwrap() *Sheet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Sheet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Sheet) String() string {
	var builder strings.Builder
	builder.WriteString("Sheet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.TemplateType; v != nil {
		builder.WriteString("template_type=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SystemPrompt; v != nil {
		builder.WriteString("system_prompt=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Sheets is a parsable slice of Sheet.
type Sheets []*Sheet
