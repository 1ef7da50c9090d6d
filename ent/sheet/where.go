// Code generated by ent, DO NOT EDIT.

package sheet

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rowboat-dev/rowboat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContainsFold(FieldID, id))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldSystemPrompt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldCreatedAt, v))
}

// TemplateTypeEQ applies the EQ predicate on the "template_type" field.
func TemplateTypeEQ(v TemplateType) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldTemplateType, v))
}

// TemplateTypeNEQ applies the NEQ predicate on the "template_type" field.
func TemplateTypeNEQ(v TemplateType) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldTemplateType, v))
}

// TemplateTypeIn applies the In predicate on the "template_type" field.
func TemplateTypeIn(vs ...TemplateType) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldTemplateType, vs...))
}

// TemplateTypeNotIn applies the NotIn predicate on the "template_type" field.
func TemplateTypeNotIn(vs ...TemplateType) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldTemplateType, vs...))
}

// TemplateTypeIsNil applies the IsNil predicate on the "template_type" field.
func TemplateTypeIsNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldIsNull(FieldTemplateType))
}

// TemplateTypeNotNil applies the NotNil predicate on the "template_type" field.
func TemplateTypeNotNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldNotNull(FieldTemplateType))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptIsNil applies the IsNil predicate on the "system_prompt" field.
func SystemPromptIsNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldIsNull(FieldSystemPrompt))
}

// SystemPromptNotNil applies the NotNil predicate on the "system_prompt" field.
func SystemPromptNotNil() predicate.Sheet {
	return predicate.Sheet(sql.FieldNotNull(FieldSystemPrompt))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.Sheet {
	return predicate.Sheet(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Sheet {
	return predicate.Sheet(sql.FieldLTE(FieldCreatedAt, v))
}

// HasColumns applies the HasEdge predicate on the "columns" edge.
func HasColumns() predicate.Sheet {
	return predicate.Sheet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ColumnsTable, ColumnsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasColumnsWith applies the HasEdge predicate on the "columns" edge with a given conditions (other predicates).
func HasColumnsWith(preds ...predicate.Column) predicate.Sheet {
	return predicate.Sheet(func(s *sql.Selector) {
		step := newColumnsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCells applies the HasEdge predicate on the "cells" edge.
func HasCells() predicate.Sheet {
	return predicate.Sheet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CellsTable, CellsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCellsWith applies the HasEdge predicate on the "cells" edge with a given conditions (other predicates).
func HasCellsWith(preds ...predicate.Cell) predicate.Sheet {
	return predicate.Sheet(func(s *sql.Selector) {
		step := newCellsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCellStatuses applies the HasEdge predicate on the "cell_statuses" edge.
func HasCellStatuses() predicate.Sheet {
	return predicate.Sheet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CellStatusesTable, CellStatusesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCellStatusesWith applies the HasEdge predicate on the "cell_statuses" edge with a given conditions (other predicates).
func HasCellStatusesWith(preds ...predicate.CellStatus) predicate.Sheet {
	return predicate.Sheet(func(s *sql.Selector) {
		step := newCellStatusesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Sheet) predicate.Sheet {
	return predicate.Sheet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Sheet) predicate.Sheet {
	return predicate.Sheet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Sheet) predicate.Sheet {
	return predicate.Sheet(sql.NotPredicates(p))
}
