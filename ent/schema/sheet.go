package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Sheet holds the schema definition for the Sheet entity.
// Sheets are created by the external edit layer; the fill engine treats
// them as read-only containers for columns and cells.
type Sheet struct {
	ent.Schema
}

// Fields of the Sheet.
func (Sheet) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sheet_id").
			Unique().
			Immutable(),
		field.Enum("template_type").
			Values("generic", "marketing", "scientific", "lucky").
			Optional().
			Nillable().
			Comment("Template the sheet was created from; biases operator selection"),
		field.Text("system_prompt").
			Optional().
			Nillable().
			Comment("Sheet-wide goal injected into every contextual prompt"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Sheet.
func (Sheet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("columns", Column.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("cells", Cell.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("cell_statuses", CellStatus.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Sheet.
func (Sheet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
