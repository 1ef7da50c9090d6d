// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CellsColumns holds the columns for the "cells" table.
	CellsColumns = []*schema.Column{
		{Name: "cell_id", Type: field.TypeString, Unique: true},
		{Name: "row_index", Type: field.TypeInt},
		{Name: "col_index", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "sheet_id", Type: field.TypeString},
	}
	// CellsTable holds the schema information for the "cells" table.
	CellsTable = &schema.Table{
		Name:       "cells",
		Columns:    CellsColumns,
		PrimaryKey: []*schema.Column{CellsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cells_sheets_cells",
				Columns:    []*schema.Column{CellsColumns[5]},
				RefColumns: []*schema.Column{SheetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cell_sheet_id_row_index_col_index",
				Unique:  true,
				Columns: []*schema.Column{CellsColumns[5], CellsColumns[1], CellsColumns[2]},
			},
			{
				Name:    "cell_sheet_id_row_index",
				Unique:  false,
				Columns: []*schema.Column{CellsColumns[5], CellsColumns[1]},
			},
		},
	}
	// SheetUpdatesColumns holds the columns for the "sheet_updates" table.
	SheetUpdatesColumns = []*schema.Column{
		{Name: "update_id", Type: field.TypeString, Unique: true},
		{Name: "sheet_id", Type: field.TypeString},
		{Name: "row_index", Type: field.TypeInt},
		{Name: "col_index", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "update_type", Type: field.TypeString},
		{Name: "applied_at", Type: field.TypeTime},
	}
	// SheetUpdatesTable holds the schema information for the "sheet_updates" table.
	SheetUpdatesTable = &schema.Table{
		Name:       "sheet_updates",
		Columns:    SheetUpdatesColumns,
		PrimaryKey: []*schema.Column{SheetUpdatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cellaudit_sheet_id_row_index_col_index",
				Unique:  false,
				Columns: []*schema.Column{SheetUpdatesColumns[1], SheetUpdatesColumns[2], SheetUpdatesColumns[3]},
			},
			{
				Name:    "cellaudit_applied_at",
				Unique:  false,
				Columns: []*schema.Column{SheetUpdatesColumns[6]},
			},
		},
	}
	// CellStatusColumns holds the columns for the "cell_status" table.
	CellStatusColumns = []*schema.Column{
		{Name: "status_id", Type: field.TypeString, Unique: true},
		{Name: "row_index", Type: field.TypeInt},
		{Name: "col_index", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "processing", "completed", "error"}, Default: "idle"},
		{Name: "operator_name", Type: field.TypeString, Nullable: true},
		{Name: "status_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "sheet_id", Type: field.TypeString},
	}
	// CellStatusTable holds the schema information for the "cell_status" table.
	CellStatusTable = &schema.Table{
		Name:       "cell_status",
		Columns:    CellStatusColumns,
		PrimaryKey: []*schema.Column{CellStatusColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cell_status_sheets_cell_statuses",
				Columns:    []*schema.Column{CellStatusColumns[7]},
				RefColumns: []*schema.Column{SheetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cellstatus_sheet_id_row_index_col_index",
				Unique:  true,
				Columns: []*schema.Column{CellStatusColumns[7], CellStatusColumns[1], CellStatusColumns[2]},
			},
			{
				Name:    "cellstatus_sheet_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{CellStatusColumns[7], CellStatusColumns[6]},
			},
		},
	}
	// ColumnsColumns holds the columns for the "columns" table.
	ColumnsColumns = []*schema.Column{
		{Name: "column_id", Type: field.TypeString, Unique: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "data_type", Type: field.TypeEnum, Enums: []string{"short_text", "long_text", "url", "email", "number", "currency", "date", "boolean", "list", "person", "company", "json"}, Default: "short_text"},
		{Name: "operator_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"google_search", "url_context", "structured_output", "function_calling", "similarity_expansion", "academic_search"}},
		{Name: "prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "operator_config", Type: field.TypeJSON, Nullable: true},
		{Name: "max_length", Type: field.TypeInt, Nullable: true},
		{Name: "min_length", Type: field.TypeInt, Nullable: true},
		{Name: "examples", Type: field.TypeJSON, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "required", Type: field.TypeBool, Default: false},
		{Name: "sheet_id", Type: field.TypeString},
	}
	// ColumnsTable holds the schema information for the "columns" table.
	ColumnsTable = &schema.Table{
		Name:       "columns",
		Columns:    ColumnsColumns,
		PrimaryKey: []*schema.Column{ColumnsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "columns_sheets_columns",
				Columns:    []*schema.Column{ColumnsColumns[12]},
				RefColumns: []*schema.Column{SheetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "column_sheet_id_position",
				Unique:  true,
				Columns: []*schema.Column{ColumnsColumns[12], ColumnsColumns[1]},
			},
		},
	}
	// FillEventsColumns holds the columns for the "fill_events" table.
	FillEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "sheet_id", Type: field.TypeString},
		{Name: "row_index", Type: field.TypeInt},
		{Name: "col_index", Type: field.TypeInt},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"user_cell_edit", "robot_cell_update", "manual_trigger"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// FillEventsTable holds the schema information for the "fill_events" table.
	FillEventsTable = &schema.Table{
		Name:       "fill_events",
		Columns:    FillEventsColumns,
		PrimaryKey: []*schema.Column{FillEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fillevent_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{FillEventsColumns[6], FillEventsColumns[10]},
			},
			{
				Name:    "fillevent_status_claimed_at",
				Unique:  false,
				Columns: []*schema.Column{FillEventsColumns[6], FillEventsColumns[11]},
			},
			{
				Name:    "fillevent_sheet_id_row_index_created_at",
				Unique:  false,
				Columns: []*schema.Column{FillEventsColumns[1], FillEventsColumns[2], FillEventsColumns[10]},
			},
		},
	}
	// SheetsColumns holds the columns for the "sheets" table.
	SheetsColumns = []*schema.Column{
		{Name: "sheet_id", Type: field.TypeString, Unique: true},
		{Name: "template_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"generic", "marketing", "scientific", "lucky"}},
		{Name: "system_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SheetsTable holds the schema information for the "sheets" table.
	SheetsTable = &schema.Table{
		Name:       "sheets",
		Columns:    SheetsColumns,
		PrimaryKey: []*schema.Column{SheetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sheet_created_at",
				Unique:  false,
				Columns: []*schema.Column{SheetsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CellsTable,
		SheetUpdatesTable,
		CellStatusTable,
		ColumnsTable,
		FillEventsTable,
		SheetsTable,
	}
)

func init() {
	CellsTable.ForeignKeys[0].RefTable = SheetsTable
	SheetUpdatesTable.Annotation = &entsql.Annotation{
		Table: "sheet_updates",
	}
	CellStatusTable.ForeignKeys[0].RefTable = SheetsTable
	ColumnsTable.ForeignKeys[0].RefTable = SheetsTable
}
