// Code generated by ent, DO NOT EDIT.

package sheet

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sheet type in the database.
	Label = "sheet"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "sheet_id"
	// FieldTemplateType holds the string denoting the template_type field in the database.
	FieldTemplateType = "template_type"
	// FieldSystemPrompt holds the string denoting the system_prompt field in the database.
	FieldSystemPrompt = "system_prompt"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeColumns holds the string denoting the columns edge name in mutations.
	EdgeColumns = "columns"
	// EdgeCells holds the string denoting the cells edge name in mutations.
	EdgeCells = "cells"
	// EdgeCellStatuses holds the string denoting the cell_statuses edge name in mutations.
	EdgeCellStatuses = "cell_statuses"
	// ColumnFieldID holds the string denoting the ID field of the Column.
	ColumnFieldID = "column_id"
	// CellFieldID holds the string denoting the ID field of the Cell.
	CellFieldID = "cell_id"
	// CellStatusFieldID holds the string denoting the ID field of the CellStatus.
	CellStatusFieldID = "status_id"
	// Table holds the table name of the sheet in the database.
	Table = "sheets"
	// ColumnsTable is the table that holds the columns relation/edge.
	ColumnsTable = "columns"
	// ColumnsInverseTable is the table name for the Column entity.
	// It exists in this package in order to avoid circular dependency with the "column" package.
	ColumnsInverseTable = "columns"
	// ColumnsColumn is the table column denoting the columns relation/edge.
	ColumnsColumn = "sheet_id"
	// CellsTable is the table that holds the cells relation/edge.
	CellsTable = "cells"
	// CellsInverseTable is the table name for the Cell entity.
	// It exists in this package in order to avoid circular dependency with the "cell" package.
	CellsInverseTable = "cells"
	// CellsColumn is the table column denoting the cells relation/edge.
	CellsColumn = "sheet_id"
	// CellStatusesTable is the table that holds the cell_statuses relation/edge.
	CellStatusesTable = "cell_status"
	// CellStatusesInverseTable is the table name for the CellStatus entity.
	// It exists in this package in order to avoid circular dependency with the "cellstatus" package.
	CellStatusesInverseTable = "cell_status"
	// CellStatusesColumn is the table column denoting the cell_statuses relation/edge.
	CellStatusesColumn = "sheet_id"
)

// Columns holds all SQL columns for sheet fields.
var Columns = []string{
	FieldID,
	FieldTemplateType,
	FieldSystemPrompt,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// TemplateType defines the type for the "template_type" enum field.
type TemplateType string

// TemplateType values.
const (
	TemplateTypeGeneric    TemplateType = "generic"
	TemplateTypeMarketing  TemplateType = "marketing"
	TemplateTypeScientific TemplateType = "scientific"
	TemplateTypeLucky      TemplateType = "lucky"
)

func (tt TemplateType) String() string {
	return string(tt)
}

// TemplateTypeValidator is a validator for the "template_type" field enum values. It is called by the builders before save.
func TemplateTypeValidator(tt TemplateType) error {
	switch tt {
	case TemplateTypeGeneric, TemplateTypeMarketing, TemplateTypeScientific, TemplateTypeLucky:
		return nil
	default:
		return fmt.Errorf("sheet: invalid enum value for template_type field: %q", tt)
	}
}

// OrderOption defines the ordering options for the Sheet queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTemplateType orders the results by the template_type field.
func ByTemplateType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateType, opts...).ToFunc()
}

// BySystemPrompt orders the results by the system_prompt field.
func BySystemPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemPrompt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByColumnsCount orders the results by columns count.
func ByColumnsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newColumnsStep(), opts...)
	}
}

// ByColumns orders the results by columns terms.
func ByColumns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newColumnsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCellsCount orders the results by cells count.
func ByCellsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCellsStep(), opts...)
	}
}

// ByCells orders the results by cells terms.
func ByCells(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCellsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCellStatusesCount orders the results by cell_statuses count.
func ByCellStatusesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCellStatusesStep(), opts...)
	}
}

// ByCellStatuses orders the results by cell_statuses terms.
func ByCellStatuses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCellStatusesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newColumnsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ColumnsInverseTable, ColumnFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ColumnsTable, ColumnsColumn),
	)
}
func newCellsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CellsInverseTable, CellFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CellsTable, CellsColumn),
	)
}
func newCellStatusesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CellStatusesInverseTable, CellStatusFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CellStatusesTable, CellStatusesColumn),
	)
}
