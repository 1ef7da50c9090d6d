// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rowboat-dev/rowboat/ent/cellstatus"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

// CellStatus is the model entity for the CellStatus schema.
type CellStatus struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SheetID holds the value of the "sheet_id" field.
	SheetID string `json:"sheet_id,omitempty"`
	// RowIndex holds the value of the "row_index" field.
	RowIndex int `json:"row_index,omitempty"`
	// ColIndex holds the value of the "col_index" field.
	ColIndex int `json:"col_index,omitempty"`
	// Status holds the value of the "status" field.
	Status cellstatus.Status `json:"status,omitempty"`
	// OperatorName holds the value of the "operator_name" field.
	OperatorName *string `json:"operator_name,omitempty"`
	// Human-readable progress or validation issues
	StatusMessage *string `json:"status_message,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CellStatusQuery when eager-loading is set.
	Edges        CellStatusEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CellStatusEdges holds the relations/edges for other nodes in the graph.
type CellStatusEdges struct {
	// Sheet holds the value of the sheet edge.
	Sheet *Sheet `json:"sheet,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SheetOrErr returns the Sheet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CellStatusEdges) SheetOrErr() (*Sheet, error) {
	if e.Sheet != nil {
		return e.Sheet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sheet.Label}
	}
	return nil, &NotLoadedError{edge: "sheet"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CellStatus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cellstatus.FieldRowIndex, cellstatus.FieldColIndex:
			values[i] = new(sql.NullInt64)
		case cellstatus.FieldID, cellstatus.FieldSheetID, cellstatus.FieldStatus, cellstatus.FieldOperatorName, cellstatus.FieldStatusMessage:
			values[i] = new(sql.NullString)
		case cellstatus.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CellStatus fields.
func (_m *CellStatus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cellstatus.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case cellstatus.FieldSheetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sheet_id", values[i])
			} else if value.Valid {
				_m.SheetID = value.String
			}
		case cellstatus.FieldRowIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_index", values[i])
			} else if value.Valid {
				_m.RowIndex = int(value.Int64)
			}
		case cellstatus.FieldColIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field col_index", values[i])
			} else if value.Valid {
				_m.ColIndex = int(value.Int64)
			}
		case cellstatus.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = cellstatus.Status(value.String)
			}
		case cellstatus.FieldOperatorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operator_name", values[i])
			} else if value.Valid {
				_m.OperatorName = new(string)
				*_m.OperatorName = value.String
			}
		case cellstatus.FieldStatusMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_message", values[i])
			} else if value.Valid {
				_m.StatusMessage = new(string)
				*_m.StatusMessage = value.String
			}
		case cellstatus.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CellStatus.
// This includes values selected through modifiers, order, etc.
func (_m *CellStatus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySheet queries the "sheet" edge of the CellStatus entity.
func (_m *CellStatus) QuerySheet() *SheetQuery {
	return NewCellStatusClient(_m.config).QuerySheet(_m)
}

// Update returns a builder for updating this CellStatus.
// Note that you need to call CellStatus.Unwrap() before calling this method if this CellStatus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CellStatus) Update() *CellStatusUpdateOne {
	return NewCellStatusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CellStatus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CellStatus) Unwrap() *CellStatus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CellStatus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CellStatus) String() string {
	var builder strings.Builder
	builder.WriteString("CellStatus(")
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
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.OperatorName; v != nil {
		builder.WriteString("operator_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.StatusMessage; v != nil {
		builder.WriteString("status_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CellStatusSlice is a parsable slice of CellStatus.
type CellStatusSlice []*CellStatus
