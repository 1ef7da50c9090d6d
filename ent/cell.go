// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rowboat-dev/rowboat/ent/cell"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

// Cell is the model entity for the Cell schema.
type Cell struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SheetID holds the value of the "sheet_id" field.
	SheetID string `json:"sheet_id,omitempty"`
	// RowIndex holds the value of the "row_index" field.
	RowIndex int `json:"row_index,omitempty"`
	// ColIndex holds the value of the "col_index" field.
	ColIndex int `json:"col_index,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CellQuery when eager-loading is set.
	Edges        CellEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CellEdges holds the relations/edges for other nodes in the graph.
type CellEdges struct {
	// Sheet holds the value of the sheet edge.
	Sheet *Sheet `json:"sheet,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SheetOrErr returns the Sheet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CellEdges) SheetOrErr() (*Sheet, error) {
	if e.Sheet != nil {
		return e.Sheet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sheet.Label}
	}
	return nil, &NotLoadedError{edge: "sheet"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Cell) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cell.FieldRowIndex, cell.FieldColIndex:
			values[i] = new(sql.NullInt64)
		case cell.FieldID, cell.FieldSheetID, cell.FieldContent:
			values[i] = new(sql.NullString)
		case cell.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Cell fields.
func (_m *Cell) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cell.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case cell.FieldSheetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sheet_id", values[i])
			} else if value.Valid {
				_m.SheetID = value.String
			}
		case cell.FieldRowIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_index", values[i])
			} else if value.Valid {
				_m.RowIndex = int(value.Int64)
			}
		case cell.FieldColIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field col_index", values[i])
			} else if value.Valid {
				_m.ColIndex = int(value.Int64)
			}
		case cell.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case cell.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Cell.
// This includes values selected through modifiers, order, etc.
func (_m *Cell) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySheet queries the "sheet" edge of the Cell entity.
func (_m *Cell) QuerySheet() *SheetQuery {
	return NewCellClient(_m.config).QuerySheet(_m)
}

// Update returns a builder for updating this Cell.
// Note that you need to call Cell.Unwrap() before calling this method if this Cell
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Cell) Update() *CellUpdateOne {
	return NewCellClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Cell entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Cell) Unwrap() *Cell {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Cell is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Cell) String() string {
	var builder strings.Builder
	builder.WriteString("Cell(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sheet_id=")
	builder.WriteString(_m.SheetID)
	builder.WriteString(", ")
	builder.WriteString("row_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowIndex))
	builder.WriteString(", ")
	builder.WriteString("col_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ColIndex))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Cells is a parsable slice of Cell.
type Cells []*Cell
