package models

// CellEditRequest is the ingress payload for a user cell edit.
// Writes the seed cell and enqueues a user_cell_edit event.
type CellEditRequest struct {
	SheetID  string `json:"sheet_id"`
	UserID   string `json:"user_id"`
	RowIndex int    `json:"row_index"`
	ColIndex int    `json:"col_index"`
	Content  string `json:"content"`
}

// ManualTriggerRequest is the ingress payload for re-running an operator
// on a specific cell with an explicit operator choice.
type ManualTriggerRequest struct {
	SheetID     string         `json:"sheet_id"`
	UserID      string         `json:"user_id"`
	RowIndex    int            `json:"row_index"`
	ColIndex    int            `json:"col_index"`
	TriggerType string         `json:"trigger_type"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// BulkRowsRequest is the ingress payload for CSV / agent row insertion.
// Each inner slice is one row; values map to columns 0..len-1.
type BulkRowsRequest struct {
	SheetID string     `json:"sheet_id"`
	UserID  string     `json:"user_id"`
	Rows    [][]string `json:"rows"`
}

// EventPayload keys. Payloads are stored as JSON maps on fill events.
const (
	PayloadKeyContent     = "content"
	PayloadKeyUserID      = "user_id"
	PayloadKeyTriggerType = "trigger_type"
	PayloadKeyParameters  = "parameters"
)

// PayloadContent extracts the source content from an event payload.
func PayloadContent(payload map[string]interface{}) string {
	if payload == nil {
		return ""
	}
	if s, ok := payload[PayloadKeyContent].(string); ok {
		return s
	}
	return ""
}

// PayloadTriggerType extracts the manual trigger type from an event payload.
func PayloadTriggerType(payload map[string]interface{}) string {
	if payload == nil {
		return ""
	}
	if s, ok := payload[PayloadKeyTriggerType].(string); ok {
		return s
	}
	return ""
}
