package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Column holds the schema definition for the Column entity.
// A column declares how its cells are produced: the data type is the
// format contract, the operator type (when set) pins the operator, and
// the optional prompt carries custom instructions.
type Column struct {
	ent.Schema
}

// Fields of the Column.
func (Column) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("column_id").
			Unique().
			Immutable(),
		field.String("sheet_id").
			Immutable(),
		field.Int("position").
			Comment("Dense from 0 per sheet; position 0 is the seed column"),
		field.String("title"),
		field.Enum("data_type").
			Values(
				"short_text",
				"long_text",
				"url",
				"email",
				"number",
				"currency",
				"date",
				"boolean",
				"list",
				"person",
				"company",
				"json",
			).
			Default("short_text"),
		field.Enum("operator_type").
			Values(
				"google_search",
				"url_context",
				"structured_output",
				"function_calling",
				"similarity_expansion",
				"academic_search",
			).
			Optional().
			Nillable().
			Comment("Nil means the dispatcher selects by heuristic"),
		field.Text("prompt").
			Optional().
			Nillable().
			Comment("Custom instructions appended to the contextual prompt"),
		field.JSON("operator_config", map[string]interface{}{}).
			Optional().
			Comment("Opaque operator-specific settings"),

		// Format hints
		field.Int("max_length").
			Optional().
			Nillable(),
		field.Int("min_length").
			Optional().
			Nillable(),
		field.JSON("examples", []string{}).
			Optional(),
		field.String("description").
			Optional().
			Nillable(),
		field.Bool("required").
			Default(false),
	}
}

// Edges of the Column.
func (Column) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("sheet", Sheet.Type).
			Ref("columns").
			Field("sheet_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Column.
func (Column) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sheet_id", "position").
			Unique(),
	}
}
