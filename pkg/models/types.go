// Package models contains domain types shared across the fill engine:
// enums mirroring the database values, the per-event sheet context, and
// API request/response shapes.
package models

// DataType is the format contract of a column.
type DataType string

// Column data types.
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

// IsValid checks if the data type is a known value.
func (d DataType) IsValid() bool {
	switch d {
	case DataTypeShortText, DataTypeLongText, DataTypeURL, DataTypeEmail,
		DataTypeNumber, DataTypeCurrency, DataTypeDate, DataTypeBoolean,
		DataTypeList, DataTypePerson, DataTypeCompany, DataTypeJSON:
		return true
	default:
		return false
	}
}

// OperatorType identifies one of the six fill operators.
type OperatorType string

// Operator types.
const (
	OperatorGoogleSearch        OperatorType = "google_search"
	OperatorURLContext          OperatorType = "url_context"
	OperatorStructuredOutput    OperatorType = "structured_output"
	OperatorFunctionCalling     OperatorType = "function_calling"
	OperatorSimilarityExpansion OperatorType = "similarity_expansion"
	OperatorAcademicSearch      OperatorType = "academic_search"
)

// IsValid checks if the operator type is a known value.
func (o OperatorType) IsValid() bool {
	switch o {
	case OperatorGoogleSearch, OperatorURLContext, OperatorStructuredOutput,
		OperatorFunctionCalling, OperatorSimilarityExpansion, OperatorAcademicSearch:
		return true
	default:
		return false
	}
}

// TemplateType classifies the sheet blueprint the sheet was created from.
type TemplateType string

// Template types. TemplateNone means the sheet has no template.
const (
	TemplateNone       TemplateType = ""
	TemplateGeneric    TemplateType = "generic"
	TemplateMarketing  TemplateType = "marketing"
	TemplateScientific TemplateType = "scientific"
	TemplateLucky      TemplateType = "lucky"
)

// EventType classifies how a fill event was produced.
type EventType string

// Event types.
const (
	EventUserCellEdit    EventType = "user_cell_edit"
	EventRobotCellUpdate EventType = "robot_cell_update"
	EventManualTrigger   EventType = "manual_trigger"
)

// IsValid checks if the event type is a known value.
func (e EventType) IsValid() bool {
	switch e {
	case EventUserCellEdit, EventRobotCellUpdate, EventManualTrigger:
		return true
	default:
		return false
	}
}

// CellState is the observable per-cell processing state.
type CellState string

// Cell processing states.
const (
	CellStateIdle       CellState = "idle"
	CellStateProcessing CellState = "processing"
	CellStateCompleted  CellState = "completed"
	CellStateError      CellState = "error"
)

// UpdateTypeAIResponse is the audit update type for engine cell writes.
const UpdateTypeAIResponse = "ai_response"
