// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/rowboat-dev/rowboat/ent/column"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

// Column is the model entity for the Column schema.
type Column struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SheetID holds the value of the "sheet_id" field.
	SheetID string `json:"sheet_id,omitempty"`
	// Dense from 0 per sheet; position 0 is the seed column
	Position int `json:"position,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// DataType holds the value of the "data_type" field.
	DataType column.DataType `json:"data_type,omitempty"`
	// Nil means the dispatcher selects by heuristic
	OperatorType *column.OperatorType `json:"operator_type,omitempty"`
	// Custom instructions appended to the contextual prompt
	Prompt *string `json:"prompt,omitempty"`
	// Opaque operator-specific settings
	OperatorConfig map[string]interface{} `json:"operator_config,omitempty"`
	// MaxLength holds the value of the "max_length" field.
	MaxLength *int `json:"max_length,omitempty"`
	// MinLength holds the value of the "min_length" field.
	MinLength *int `json:"min_length,omitempty"`
	// Examples holds the value of the "examples" field.
	Examples []string `json:"examples,omitempty"`
	// Description holds the value of the "description" field.
	Description *string `json:"description,omitempty"`
	// Required holds the value of the "required" field.
	Required bool `json:"required,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ColumnQuery when eager-loading is set.
	Edges        ColumnEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ColumnEdges holds the relations/edges for other nodes in the graph.
type ColumnEdges struct {
	// Sheet holds the value of the sheet edge.
	Sheet *Sheet `json:"sheet,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SheetOrErr returns the Sheet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ColumnEdges) SheetOrErr() (*Sheet, error) {
	if e.Sheet != nil {
		return e.Sheet, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: sheet.Label}
	}
	return nil, &NotLoadedError{edge: "sheet"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Column) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case column.FieldOperatorConfig, column.FieldExamples:
			values[i] = new([]byte)
		case column.FieldRequired:
			values[i] = new(sql.NullBool)
		case column.FieldPosition, column.FieldMaxLength, column.FieldMinLength:
			values[i] = new(sql.NullInt64)
		case column.FieldID, column.FieldSheetID, column.FieldTitle, column.FieldDataType, column.FieldOperatorType, column.FieldPrompt, column.FieldDescription:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Column fields.
func (_m *Column) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case column.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case column.FieldSheetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sheet_id", values[i])
			} else if value.Valid {
				_m.SheetID = value.String
			}
		case column.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case column.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case column.FieldDataType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_type", values[i])
			} else if value.Valid {
				_m.DataType = column.DataType(value.String)
			}
		case column.FieldOperatorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operator_type", values[i])
			} else if value.Valid {
				_m.OperatorType = new(column.OperatorType)
				*_m.OperatorType = column.OperatorType(value.String)
			}
		case column.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = new(string)
				*_m.Prompt = value.String
			}
		case column.FieldOperatorConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field operator_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OperatorConfig); err != nil {
					return fmt.Errorf("unmarshal field operator_config: %w", err)
				}
			}
		case column.FieldMaxLength:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_length", values[i])
			} else if value.Valid {
				_m.MaxLength = new(int)
				*_m.MaxLength = int(value.Int64)
			}
		case column.FieldMinLength:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_length", values[i])
			} else if value.Valid {
				_m.MinLength = new(int)
				*_m.MinLength = int(value.Int64)
			}
		case column.FieldExamples:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field examples", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Examples); err != nil {
					return fmt.Errorf("unmarshal field examples: %w", err)
				}
			}
		case column.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case column.FieldRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field required", values[i])
			} else if value.Valid {
				_m.Required = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Column.
// This includes values selected through modifiers, order, etc.
func (_m *Column) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySheet queries the "sheet" edge of the Column entity.
func (_m *Column) QuerySheet() *SheetQuery {
	return NewColumnClient(_m.config).QuerySheet(_m)
}

// Update returns a builder for updating this Column.
// Note that you need to call Column.Unwrap() before calling this method if this Column
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Column) Update() *ColumnUpdateOne {
	return NewColumnClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Column entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Column) Unwrap() *Column {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Column is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Column) String() string {
	var builder strings.Builder
	builder.WriteString("Column(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sheet_id=")
	builder.WriteString(_m.SheetID)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("data_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.DataType))
	builder.WriteString(", ")
	if v := _m.OperatorType; v != nil {
		builder.WriteString("operator_type=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Prompt; v != nil {
		builder.WriteString("prompt=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("operator_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.OperatorConfig))
	builder.WriteString(", ")
	if v := _m.MaxLength; v != nil {
		builder.WriteString("max_length=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MinLength; v != nil {
		builder.WriteString("min_length=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("examples=")
	builder.WriteString(fmt.Sprintf("%v", _m.Examples))
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("required=")
	builder.WriteString(fmt.Sprintf("%v", _m.Required))
	builder.WriteByte(')')
	return builder.String()
}

// Columns is a parsable slice of Column.
type Columns []*Column
