// Code generated by ent, DO NOT EDIT.

package cellaudit

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the cellaudit type in the database.
	Label = "cell_audit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "update_id"
	// FieldSheetID holds the string denoting the sheet_id field in the database.
	FieldSheetID = "sheet_id"
	// FieldRowIndex holds the string denoting the row_index field in the database.
	FieldRowIndex = "row_index"
	// FieldColIndex holds the string denoting the col_index field in the database.
	FieldColIndex = "col_index"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldUpdateType holds the string denoting the update_type field in the database.
	FieldUpdateType = "update_type"
	// FieldAppliedAt holds the string denoting the applied_at field in the database.
	FieldAppliedAt = "applied_at"
	// Table holds the table name of the cellaudit in the database.
	Table = "sheet_updates"
)

// Columns holds all SQL columns for cellaudit fields.
var Columns = []string{
	FieldID,
	FieldSheetID,
	FieldRowIndex,
	FieldColIndex,
	FieldContent,
	FieldUpdateType,
	FieldAppliedAt,
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
	// DefaultAppliedAt holds the default value on creation for the "applied_at" field.
	DefaultAppliedAt func() time.Time
)

// OrderOption defines the ordering options for the CellAudit queries.
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

// ByUpdateType orders the results by the update_type field.
func ByUpdateType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateType, opts...).ToFunc()
}

// ByAppliedAt orders the results by the applied_at field.
func ByAppliedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppliedAt, opts...).ToFunc()
}
