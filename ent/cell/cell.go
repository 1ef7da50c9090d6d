// Code generated by ent, DO NOT EDIT.

package cell

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the cell type in the database.
	Label = "cell"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "cell_id"
	// FieldSheetID holds the string denoting the sheet_id field in the database.
	FieldSheetID = "sheet_id"
	// FieldRowIndex holds the string denoting the row_index field in the database.
	FieldRowIndex = "row_index"
	// FieldColIndex holds the string denoting the col_index field in the database.
	FieldColIndex = "col_index"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSheet holds the string denoting the sheet edge name in mutations.
	EdgeSheet = "sheet"
	// SheetFieldID holds the string denoting the ID field of the Sheet.
	SheetFieldID = "sheet_id"
	// Table holds the table name of the cell in the database.
	Table = "cells"
	// SheetTable is the table that holds the sheet relation/edge.
	SheetTable = "cells"
	// SheetInverseTable is the table name for the Sheet entity.
	// It exists in this package in order to avoid circular dependency with the "sheet" package.
	SheetInverseTable = "sheets"
	// SheetColumn is the table column denoting the sheet relation/edge.
	SheetColumn = "sheet_id"
)

// Columns holds all SQL columns for cell fields.
var Columns = []string{
	FieldID,
	FieldSheetID,
	FieldRowIndex,
	FieldColIndex,
	FieldContent,
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

// OrderOption defines the ordering options for the Cell queries.
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

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
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
