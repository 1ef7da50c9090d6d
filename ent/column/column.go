// Code generated by ent, DO NOT EDIT.

package column

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the column type in the database.
	Label = "column"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "column_id"
	// FieldSheetID holds the string denoting the sheet_id field in the database.
	FieldSheetID = "sheet_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDataType holds the string denoting the data_type field in the database.
	FieldDataType = "data_type"
	// FieldOperatorType holds the string denoting the operator_type field in the database.
	FieldOperatorType = "operator_type"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldOperatorConfig holds the string denoting the operator_config field in the database.
	FieldOperatorConfig = "operator_config"
	// FieldMaxLength holds the string denoting the max_length field in the database.
	FieldMaxLength = "max_length"
	// FieldMinLength holds the string denoting the min_length field in the database.
	FieldMinLength = "min_length"
	// FieldExamples holds the string denoting the examples field in the database.
	FieldExamples = "examples"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldRequired holds the string denoting the required field in the database.
	FieldRequired = "required"
	// EdgeSheet holds the string denoting the sheet edge name in mutations.
	EdgeSheet = "sheet"
	// SheetFieldID holds the string denoting the ID field of the Sheet.
	SheetFieldID = "sheet_id"
	// Table holds the table name of the column in the database.
	Table = "columns"
	// SheetTable is the table that holds the sheet relation/edge.
	SheetTable = "columns"
	// SheetInverseTable is the table name for the Sheet entity.
	// It exists in this package in order to avoid circular dependency with the "sheet" package.
	SheetInverseTable = "sheets"
	// SheetColumn is the table column denoting the sheet relation/edge.
	SheetColumn = "sheet_id"
)

// Columns holds all SQL columns for column fields.
var Columns = []string{
	FieldID,
	FieldSheetID,
	FieldPosition,
	FieldTitle,
	FieldDataType,
	FieldOperatorType,
	FieldPrompt,
	FieldOperatorConfig,
	FieldMaxLength,
	FieldMinLength,
	FieldExamples,
	FieldDescription,
	FieldRequired,
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
	// DefaultRequired holds the default value on creation for the "required" field.
	DefaultRequired bool
)

// DataType defines the type for the "data_type" enum field.
type DataType string

// DataTypeShortText is the default value of the DataType enum.
const DefaultDataType = DataTypeShortText

// DataType values.
const (
	DataTypeShortText DataType = "short_text"
	DataTypeLongText  DataType = "long_text"
	DataTypeURL       DataType = "url"
	DataTypeEmail     DataType = "email"
	DataTypeNumber    DataType = "number"
	DataTypeCurrency  DataType = "currency"
	DataTypeDate      DataType = "date"
	DataTypeBoolean   DataType = "boolean"
	DataTypeList      DataType = "list"
	DataTypePerson    DataType = "person"
	DataTypeCompany   DataType = "company"
	DataTypeJSON      DataType = "json"
)

func (dt DataType) String() string {
	return string(dt)
}

// DataTypeValidator is a validator for the "data_type" field enum values. It is called by the builders before save.
func DataTypeValidator(dt DataType) error {
	switch dt {
	case DataTypeShortText, DataTypeLongText, DataTypeURL, DataTypeEmail, DataTypeNumber, DataTypeCurrency, DataTypeDate, DataTypeBoolean, DataTypeList, DataTypePerson, DataTypeCompany, DataTypeJSON:
		return nil
	default:
		return fmt.Errorf("column: invalid enum value for data_type field: %q", dt)
	}
}

// OperatorType defines the type for the "operator_type" enum field.
type OperatorType string

// OperatorType values.
const (
	OperatorTypeGoogleSearch        OperatorType = "google_search"
	OperatorTypeURLContext          OperatorType = "url_context"
	OperatorTypeStructuredOutput    OperatorType = "structured_output"
	OperatorTypeFunctionCalling     OperatorType = "function_calling"
	OperatorTypeSimilarityExpansion OperatorType = "similarity_expansion"
	OperatorTypeAcademicSearch      OperatorType = "academic_search"
)

func (ot OperatorType) String() string {
	return string(ot)
}

// OperatorTypeValidator is a validator for the "operator_type" field enum values. It is called by the builders before save.
func OperatorTypeValidator(ot OperatorType) error {
	switch ot {
	case OperatorTypeGoogleSearch, OperatorTypeURLContext, OperatorTypeStructuredOutput, OperatorTypeFunctionCalling, OperatorTypeSimilarityExpansion, OperatorTypeAcademicSearch:
		return nil
	default:
		return fmt.Errorf("column: invalid enum value for operator_type field: %q", ot)
	}
}

// OrderOption defines the ordering options for the Column queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySheetID orders the results by the sheet_id field.
func BySheetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSheetID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDataType orders the results by the data_type field.
func ByDataType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataType, opts...).ToFunc()
}

// ByOperatorType orders the results by the operator_type field.
func ByOperatorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperatorType, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByMaxLength orders the results by the max_length field.
func ByMaxLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxLength, opts...).ToFunc()
}

// ByMinLength orders the results by the min_length field.
func ByMinLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinLength, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByRequired orders the results by the required field.
func ByRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequired, opts...).ToFunc()
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
