// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rowboat-dev/rowboat/ent/cellaudit"
)

// CellAudit is the model entity for the CellAudit schema.
type CellAudit struct {
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
	// e.g. ai_response
	UpdateType string `json:"update_type,omitempty"`
	// AppliedAt holds the value of the "applied_at" field.
	AppliedAt    time.Time `json:"applied_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CellAudit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cellaudit.FieldRowIndex, cellaudit.FieldColIndex:
			values[i] = new(sql.NullInt64)
		case cellaudit.FieldID, cellaudit.FieldSheetID, cellaudit.FieldContent, cellaudit.FieldUpdateType:
			values[i] = new(sql.NullString)
		case cellaudit.FieldAppliedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CellAudit fields.
func (_m *CellAudit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cellaudit.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case cellaudit.FieldSheetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sheet_id", values[i])
			} else if value.Valid {
				_m.SheetID = value.String
			}
		case cellaudit.FieldRowIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_index", values[i])
			} else if value.Valid {
				_m.RowIndex = int(value.Int64)
			}
		case cellaudit.FieldColIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field col_index", values[i])
			} else if value.Valid {
				_m.ColIndex = int(value.Int64)
			}
		case cellaudit.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case cellaudit.FieldUpdateType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field update_type", values[i])
			} else if value.Valid {
				_m.UpdateType = value.String
			}
		case cellaudit.FieldAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field applied_at", values[i])
			} else if value.Valid {
				_m.AppliedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CellAudit.
// This includes values selected through modifiers, order, etc.
func (_m *CellAudit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CellAudit.
// Note that you need to call CellAudit.Unwrap() before calling this method if this CellAudit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CellAudit) Update() *CellAuditUpdateOne {
	return NewCellAuditClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CellAudit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CellAudit) Unwrap() *CellAudit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CellAudit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CellAudit) String() string {
	var builder strings.Builder
	builder.WriteString("CellAudit(")
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
	builder.WriteString("update_type=")
	builder.WriteString(_m.UpdateType)
	builder.WriteString(", ")
	builder.WriteString("applied_at=")
	builder.WriteString(_m.AppliedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CellAudits is a parsable slice of CellAudit.
type CellAudits []*CellAudit
