// Code generated by ent, DO NOT EDIT.

package cellaudit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/rowboat-dev/rowboat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldContainsFold(FieldID, id))
}

// SheetID applies equality check predicate on the "sheet_id" field. It's identical to SheetIDEQ.
func SheetID(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldSheetID, v))
}

// RowIndex applies equality check predicate on the "row_index" field. It's identical to RowIndexEQ.
func RowIndex(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldRowIndex, v))
}

// ColIndex applies equality check predicate on the "col_index" field. It's identical to ColIndexEQ.
func ColIndex(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldColIndex, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldContent, v))
}

// UpdateType applies equality check predicate on the "update_type" field. It's identical to UpdateTypeEQ.
func UpdateType(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldUpdateType, v))
}

// AppliedAt applies equality check predicate on the "applied_at" field. It's identical to AppliedAtEQ.
func AppliedAt(v time.Time) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldAppliedAt, v))
}

// SheetIDEQ applies the EQ predicate on the "sheet_id" field.
func SheetIDEQ(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldSheetID, v))
}

// SheetIDNEQ applies the NEQ predicate on the "sheet_id" field.
func SheetIDNEQ(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNEQ(FieldSheetID, v))
}

// SheetIDIn applies the In predicate on the "sheet_id" field.
func SheetIDIn(vs ...string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldIn(FieldSheetID, vs...))
}

// SheetIDNotIn applies the NotIn predicate on the "sheet_id" field.
func SheetIDNotIn(vs ...string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNotIn(FieldSheetID, vs...))
}

// SheetIDGT applies the GT predicate on the "sheet_id" field.
func SheetIDGT(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGT(FieldSheetID, v))
}

// SheetIDGTE applies the GTE predicate on the "sheet_id" field.
func SheetIDGTE(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGTE(FieldSheetID, v))
}

// SheetIDLT applies the LT predicate on the "sheet_id" field.
func SheetIDLT(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLT(FieldSheetID, v))
}

// SheetIDLTE applies the LTE predicate on the "sheet_id" field.
func SheetIDLTE(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLTE(FieldSheetID, v))
}

// SheetIDContains applies the Contains predicate on the "sheet_id" field.
func SheetIDContains(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldContains(FieldSheetID, v))
}

// SheetIDHasPrefix applies the HasPrefix predicate on the "sheet_id" field.
func SheetIDHasPrefix(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldHasPrefix(FieldSheetID, v))
}

// SheetIDHasSuffix applies the HasSuffix predicate on the "sheet_id" field.
func SheetIDHasSuffix(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldHasSuffix(FieldSheetID, v))
}

// SheetIDEqualFold applies the EqualFold predicate on the "sheet_id" field.
func SheetIDEqualFold(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEqualFold(FieldSheetID, v))
}

// SheetIDContainsFold applies the ContainsFold predicate on the "sheet_id" field.
func SheetIDContainsFold(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldContainsFold(FieldSheetID, v))
}

// RowIndexEQ applies the EQ predicate on the "row_index" field.
func RowIndexEQ(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldRowIndex, v))
}

// RowIndexNEQ applies the NEQ predicate on the "row_index" field.
func RowIndexNEQ(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNEQ(FieldRowIndex, v))
}

// RowIndexIn applies the In predicate on the "row_index" field.
func RowIndexIn(vs ...int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldIn(FieldRowIndex, vs...))
}

// RowIndexNotIn applies the NotIn predicate on the "row_index" field.
func RowIndexNotIn(vs ...int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNotIn(FieldRowIndex, vs...))
}

// RowIndexGT applies the GT predicate on the "row_index" field.
func RowIndexGT(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGT(FieldRowIndex, v))
}

// RowIndexGTE applies the GTE predicate on the "row_index" field.
func RowIndexGTE(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGTE(FieldRowIndex, v))
}

// RowIndexLT applies the LT predicate on the "row_index" field.
func RowIndexLT(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLT(FieldRowIndex, v))
}

// RowIndexLTE applies the LTE predicate on the "row_index" field.
func RowIndexLTE(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLTE(FieldRowIndex, v))
}

// ColIndexEQ applies the EQ predicate on the "col_index" field.
func ColIndexEQ(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldColIndex, v))
}

// ColIndexNEQ applies the NEQ predicate on the "col_index" field.
func ColIndexNEQ(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNEQ(FieldColIndex, v))
}

// ColIndexIn applies the In predicate on the "col_index" field.
func ColIndexIn(vs ...int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldIn(FieldColIndex, vs...))
}

// ColIndexNotIn applies the NotIn predicate on the "col_index" field.
func ColIndexNotIn(vs ...int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNotIn(FieldColIndex, vs...))
}

// ColIndexGT applies the GT predicate on the "col_index" field.
func ColIndexGT(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGT(FieldColIndex, v))
}

// ColIndexGTE applies the GTE predicate on the "col_index" field.
func ColIndexGTE(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGTE(FieldColIndex, v))
}

// ColIndexLT applies the LT predicate on the "col_index" field.
func ColIndexLT(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLT(FieldColIndex, v))
}

// ColIndexLTE applies the LTE predicate on the "col_index" field.
func ColIndexLTE(v int) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLTE(FieldColIndex, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldContainsFold(FieldContent, v))
}

// UpdateTypeEQ applies the EQ predicate on the "update_type" field.
func UpdateTypeEQ(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldUpdateType, v))
}

// UpdateTypeNEQ applies the NEQ predicate on the "update_type" field.
func UpdateTypeNEQ(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNEQ(FieldUpdateType, v))
}

// UpdateTypeIn applies the In predicate on the "update_type" field.
func UpdateTypeIn(vs ...string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldIn(FieldUpdateType, vs...))
}

// UpdateTypeNotIn applies the NotIn predicate on the "update_type" field.
func UpdateTypeNotIn(vs ...string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNotIn(FieldUpdateType, vs...))
}

// UpdateTypeGT applies the GT predicate on the "update_type" field.
func UpdateTypeGT(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGT(FieldUpdateType, v))
}

// UpdateTypeGTE applies the GTE predicate on the "update_type" field.
func UpdateTypeGTE(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGTE(FieldUpdateType, v))
}

// UpdateTypeLT applies the LT predicate on the "update_type" field.
func UpdateTypeLT(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLT(FieldUpdateType, v))
}

// UpdateTypeLTE applies the LTE predicate on the "update_type" field.
func UpdateTypeLTE(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLTE(FieldUpdateType, v))
}

// UpdateTypeContains applies the Contains predicate on the "update_type" field.
func UpdateTypeContains(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldContains(FieldUpdateType, v))
}

// UpdateTypeHasPrefix applies the HasPrefix predicate on the "update_type" field.
func UpdateTypeHasPrefix(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldHasPrefix(FieldUpdateType, v))
}

// UpdateTypeHasSuffix applies the HasSuffix predicate on the "update_type" field.
func UpdateTypeHasSuffix(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldHasSuffix(FieldUpdateType, v))
}

// UpdateTypeEqualFold applies the EqualFold predicate on the "update_type" field.
func UpdateTypeEqualFold(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEqualFold(FieldUpdateType, v))
}

// UpdateTypeContainsFold applies the ContainsFold predicate on the "update_type" field.
func UpdateTypeContainsFold(v string) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldContainsFold(FieldUpdateType, v))
}

// AppliedAtEQ applies the EQ predicate on the "applied_at" field.
func AppliedAtEQ(v time.Time) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldEQ(FieldAppliedAt, v))
}

// AppliedAtNEQ applies the NEQ predicate on the "applied_at" field.
func AppliedAtNEQ(v time.Time) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNEQ(FieldAppliedAt, v))
}

// AppliedAtIn applies the In predicate on the "applied_at" field.
func AppliedAtIn(vs ...time.Time) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldIn(FieldAppliedAt, vs...))
}

// AppliedAtNotIn applies the NotIn predicate on the "applied_at" field.
func AppliedAtNotIn(vs ...time.Time) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldNotIn(FieldAppliedAt, vs...))
}

// AppliedAtGT applies the GT predicate on the "applied_at" field.
func AppliedAtGT(v time.Time) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGT(FieldAppliedAt, v))
}

// AppliedAtGTE applies the GTE predicate on the "applied_at" field.
func AppliedAtGTE(v time.Time) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldGTE(FieldAppliedAt, v))
}

// AppliedAtLT applies the LT predicate on the "applied_at" field.
func AppliedAtLT(v time.Time) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLT(FieldAppliedAt, v))
}

// AppliedAtLTE applies the LTE predicate on the "applied_at" field.
func AppliedAtLTE(v time.Time) predicate.CellAudit {
	return predicate.CellAudit(sql.FieldLTE(FieldAppliedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CellAudit) predicate.CellAudit {
	return predicate.CellAudit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CellAudit) predicate.CellAudit {
	return predicate.CellAudit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CellAudit) predicate.CellAudit {
	return predicate.CellAudit(sql.NotPredicates(p))
}
