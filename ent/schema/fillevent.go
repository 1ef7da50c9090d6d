package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FillEvent holds the schema definition for the FillEvent entity — the
// durable unit of work in the fill queue.
//
// col_index is the SOURCE column: the column whose content triggered
// filling col_index+1. The payload carries at minimum the source content.
// Events reference sheets by ID only and outlive them (no FK cascade):
// the queue doubles as a processing record.
type FillEvent struct {
	ent.Schema
}

// Fields of the FillEvent.
func (FillEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("sheet_id").
			Immutable(),
		field.Int("row_index").
			Immutable(),
		field.Int("col_index").
			Immutable().
			Comment("Source column; the fill target is col_index+1"),
		field.Enum("event_type").
			Values("user_cell_edit", "robot_cell_update", "manual_trigger"),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Per-type data; minimally {content: <source cell>}"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed").
			Default("pending"),
		field.Int("retry_count").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("Dispatcher instance that claimed the event"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the FillEvent.
func (FillEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Claim scan: oldest pending first
		index.Fields("status", "created_at"),
		// Reaper scan
		index.Fields("status", "claimed_at"),
		// Per-row chain lookups
		index.Fields("sheet_id", "row_index", "created_at"),
	}
}
