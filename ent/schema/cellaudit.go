package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CellAudit holds the schema definition for the CellAudit entity — the
// append-only audit log of every cell write the engine performs, stored
// in the sheet_updates table. Never read by the engine; retained past
// sheet deletion (no FK).
type CellAudit struct {
	ent.Schema
}

// Annotations of the CellAudit.
func (CellAudit) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sheet_updates"},
	}
}

// Fields of the CellAudit.
func (CellAudit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("update_id").
			Unique().
			Immutable(),
		field.String("sheet_id").
			Immutable(),
		field.Int("row_index").
			Immutable(),
		field.Int("col_index").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.String("update_type").
			Immutable().
			Comment("e.g. ai_response"),
		field.Time("applied_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CellAudit.
func (CellAudit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sheet_id", "row_index", "col_index"),
		index.Fields("applied_at"),
	}
}
