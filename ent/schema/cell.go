package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Cell holds the schema definition for the Cell entity.
// A cell row exists only once a write has occurred; absence is distinct
// from empty string. All writes are upserts on (sheet, row, col).
type Cell struct {
	ent.Schema
}

// Fields of the Cell.
func (Cell) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cell_id").
			Unique().
			Immutable(),
		field.String("sheet_id").
			Immutable(),
		field.Int("row_index").
			Immutable(),
		field.Int("col_index").
			Immutable(),
		field.Text("content"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Cell.
func (Cell) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sheet", Sheet.Type).
			Ref("cells").
			Field("sheet_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Cell.
func (Cell) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sheet_id", "row_index", "col_index").
			Unique(),
		index.Fields("sheet_id", "row_index"),
	}
}
