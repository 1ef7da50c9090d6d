package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CellStatus holds the schema definition for the CellStatus entity.
// Per-cell processing state surfaced to the UI. Written by the wrapper
// around each operator invocation; upserts are idempotent on the natural
// key (sheet, row, col).
type CellStatus struct {
	ent.Schema
}

// Fields of the CellStatus.
func (CellStatus) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("status_id").
			Unique().
			Immutable(),
		field.String("sheet_id").
			Immutable(),
		field.Int("row_index").
			Immutable(),
		field.Int("col_index").
			Immutable(),
		field.Enum("status").
			Values("idle", "processing", "completed", "error").
			Default("idle"),
		field.String("operator_name").
			Optional().
			Nillable(),
		field.Text("status_message").
			Optional().
			Nillable().
			Comment("Human-readable progress or validation issues"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the CellStatus.
func (CellStatus) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sheet", Sheet.Type).
			Ref("cell_statuses").
			Field("sheet_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CellStatus.
func (CellStatus) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sheet_id", "row_index", "col_index").
			Unique(),
		index.Fields("sheet_id", "updated_at"),
	}
}
