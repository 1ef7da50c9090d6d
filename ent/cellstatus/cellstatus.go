// Code generated by ent, DO NOT EDIT.

package cellstatus

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the cellstatus type in the database.
	Label = "cell_status"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "status_id"
	// FieldSheetID holds the string denoting the sheet_id field in the database.
	FieldSheetID = "sheet_id"
	// FieldRowIndex holds the string denoting the row_index field in the database.
	FieldRowIndex = "row_index"
	// FieldColIndex holds the string denoting the col_index field in the database.
	FieldColIndex = "col_index"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOperatorName holds the string denoting the operator_name field in the database.
	FieldOperatorName = "operator_name"
	// FieldStatusMessage holds the string denoting the status_message field in the database.
	FieldStatusMessage = "status_message"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSheet holds the string denoting the sheet edge name in mutations.
	EdgeSheet = "sheet"
	// SheetFieldID holds the string denoting the ID field of the Sheet.
	SheetFieldID = "sheet_id"
	// Table holds the table name of the cellstatus in the database.
	Table = "cell_status"
	// SheetTable is the table that holds the sheet relation/edge.
	SheetTable = "cell_status"
	// SheetInverseTable is the table name for the Sheet entity.
	// It exists in this package in order to avoid circular dependency with the "sheet" package.
	SheetInverseTable = "sheets"
	// SheetColumn is the table column denoting the sheet relation/edge.
	SheetColumn = "sheet_id"
)

// Columns holds all SQL columns for cellstatus fields.
var Columns = []string{
	FieldID,
	FieldSheetID,
	FieldRowIndex,
	FieldColIndex,
	FieldStatus,
	FieldOperatorName,
	FieldStatusMessage,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusIdle is the default value of the Status enum.
const DefaultStatus = StatusIdle

// Status values.
const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIdle, StatusProcessing, StatusCompleted, StatusError:
		return nil
	default:
		return fmt.Errorf("cellstatus: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CellStatus queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySheetID orders the results by the sheet_id field.
func BySheetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSheetID, opts...).ToFunc()
}

// ByRowIndex orders the results by the row_index field.
func ByRowIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowIndex, opts...).ToFunc()
}

// ByColIndex orders the results by the col_index field.
func ByColIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldColIndex, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOperatorName orders the results by the operator_name field.
func ByOperatorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperatorName, opts...).ToFunc()
}

// ByStatusMessage orders the results by the status_message field.
func ByStatusMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusMessage, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySheetField orders the results by sheet field.
func BySheetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSheetStep(), sql.OrderByField(field, opts...))
	}
}
func newSheetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SheetInverseTable, SheetFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SheetTable, SheetColumn),
	)
}
