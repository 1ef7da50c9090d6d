// Code generated by ent, DO NOT EDIT.

package cell

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rowboat-dev/rowboat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Cell {
	return predicate.Cell(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Cell {
	return predicate.Cell(sql.FieldContainsFold(FieldID, id))
}

// SheetID applies equality check predicate on the "sheet_id" field. It's identical to SheetIDEQ.
func SheetID(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldSheetID, v))
}

// RowIndex applies equality check predicate on the "row_index" field. It's identical to RowIndexEQ.
func RowIndex(v int) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldRowIndex, v))
}

// ColIndex applies equality check predicate on the "col_index" field. It's identical to ColIndexEQ.
func ColIndex(v int) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldColIndex, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldContent, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldUpdatedAt, v))
}

// SheetIDEQ applies the EQ predicate on the "sheet_id" field.
func SheetIDEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldSheetID, v))
}

// SheetIDNEQ applies the NEQ predicate on the "sheet_id" field.
func SheetIDNEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldSheetID, v))
}

// SheetIDIn applies the In predicate on the "sheet_id" field.
func SheetIDIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldSheetID, vs...))
}

// SheetIDNotIn applies the NotIn predicate on the "sheet_id" field.
func SheetIDNotIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldSheetID, vs...))
}

// SheetIDGT applies the GT predicate on the "sheet_id" field.
func SheetIDGT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldSheetID, v))
}

// SheetIDGTE applies the GTE predicate on the "sheet_id" field.
func SheetIDGTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldSheetID, v))
}

// SheetIDLT applies the LT predicate on the "sheet_id" field.
func SheetIDLT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldSheetID, v))
}

// SheetIDLTE applies the LTE predicate on the "sheet_id" field.
func SheetIDLTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldSheetID, v))
}

// SheetIDContains applies the Contains predicate on the "sheet_id" field.
func SheetIDContains(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContains(FieldSheetID, v))
}

// SheetIDHasPrefix applies the HasPrefix predicate on the "sheet_id" field.
func SheetIDHasPrefix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasPrefix(FieldSheetID, v))
}

// SheetIDHasSuffix applies the HasSuffix predicate on the "sheet_id" field.
func SheetIDHasSuffix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasSuffix(FieldSheetID, v))
}

// SheetIDEqualFold applies the EqualFold predicate on the "sheet_id" field.
func SheetIDEqualFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEqualFold(FieldSheetID, v))
}

// SheetIDContainsFold applies the ContainsFold predicate on the "sheet_id" field.
func SheetIDContainsFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContainsFold(FieldSheetID, v))
}

// RowIndexEQ applies the EQ predicate on the "row_index" field.
func RowIndexEQ(v int) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldRowIndex, v))
}

// RowIndexNEQ applies the NEQ predicate on the "row_index" field.
func RowIndexNEQ(v int) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldRowIndex, v))
}

// RowIndexIn applies the In predicate on the "row_index" field.
func RowIndexIn(vs ...int) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldRowIndex, vs...))
}

// RowIndexNotIn applies the NotIn predicate on the "row_index" field.
func RowIndexNotIn(vs ...int) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldRowIndex, vs...))
}

// RowIndexGT applies the GT predicate on the "row_index" field.
func RowIndexGT(v int) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldRowIndex, v))
}

// RowIndexGTE applies the GTE predicate on the "row_index" field.
func RowIndexGTE(v int) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldRowIndex, v))
}

// RowIndexLT applies the LT predicate on the "row_index" field.
func RowIndexLT(v int) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldRowIndex, v))
}

// RowIndexLTE applies the LTE predicate on the "row_index" field.
func RowIndexLTE(v int) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldRowIndex, v))
}

// ColIndexEQ applies the EQ predicate on the "col_index" field.
func ColIndexEQ(v int) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldColIndex, v))
}

// ColIndexNEQ applies the NEQ predicate on the "col_index" field.
func ColIndexNEQ(v int) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldColIndex, v))
}

// ColIndexIn applies the In predicate on the "col_index" field.
func ColIndexIn(vs ...int) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldColIndex, vs...))
}

// ColIndexNotIn applies the NotIn predicate on the "col_index" field.
func ColIndexNotIn(vs ...int) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldColIndex, vs...))
}

// ColIndexGT applies the GT predicate on the "col_index" field.
func ColIndexGT(v int) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldColIndex, v))
}

// ColIndexGTE applies the GTE predicate on the "col_index" field.
func ColIndexGTE(v int) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldColIndex, v))
}

// ColIndexLT applies the LT predicate on the "col_index" field.
func ColIndexLT(v int) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldColIndex, v))
}

// ColIndexLTE applies the LTE predicate on the "col_index" field.
func ColIndexLTE(v int) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldColIndex, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Cell {
	return predicate.Cell(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Cell {
	return predicate.Cell(sql.FieldContainsFold(FieldContent, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Cell {
	return predicate.Cell(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSheet applies the HasEdge predicate on the "sheet" edge.
func HasSheet() predicate.Cell {
	return predicate.Cell(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SheetTable, SheetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSheetWith applies the HasEdge predicate on the "sheet" edge with a given conditions (other predicates).
func HasSheetWith(preds ...predicate.Sheet) predicate.Cell {
	return predicate.Cell(func(s *sql.Selector) {
		step := newSheetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Cell) predicate.Cell {
	return predicate.Cell(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Cell) predicate.Cell {
	return predicate.Cell(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Cell) predicate.Cell {
	return predicate.Cell(sql.NotPredicates(p))
}
