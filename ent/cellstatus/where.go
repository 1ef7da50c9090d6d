// Code generated by ent, DO NOT EDIT.

package cellstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rowboat-dev/rowboat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldContainsFold(FieldID, id))
}

// SheetID applies equality check predicate on the "sheet_id" field. It's identical to SheetIDEQ.
func SheetID(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldSheetID, v))
}

// RowIndex applies equality check predicate on the "row_index" field. It's identical to RowIndexEQ.
func RowIndex(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldRowIndex, v))
}

// ColIndex applies equality check predicate on the "col_index" field. It's identical to ColIndexEQ.
func ColIndex(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldColIndex, v))
}

// OperatorName applies equality check predicate on the "operator_name" field. It's identical to OperatorNameEQ.
func OperatorName(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldOperatorName, v))
}

// StatusMessage applies equality check predicate on the "status_message" field. It's identical to StatusMessageEQ.
func StatusMessage(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldStatusMessage, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// SheetIDEQ applies the EQ predicate on the "sheet_id" field.
func SheetIDEQ(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldSheetID, v))
}

// SheetIDNEQ applies the NEQ predicate on the "sheet_id" field.
func SheetIDNEQ(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNEQ(FieldSheetID, v))
}

// SheetIDIn applies the In predicate on the "sheet_id" field.
func SheetIDIn(vs ...string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldIn(FieldSheetID, vs...))
}

// SheetIDNotIn applies the NotIn predicate on the "sheet_id" field.
func SheetIDNotIn(vs ...string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNotIn(FieldSheetID, vs...))
}

// SheetIDGT applies the GT predicate on the "sheet_id" field.
func SheetIDGT(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGT(FieldSheetID, v))
}

// SheetIDGTE applies the GTE predicate on the "sheet_id" field.
func SheetIDGTE(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGTE(FieldSheetID, v))
}

// SheetIDLT applies the LT predicate on the "sheet_id" field.
func SheetIDLT(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLT(FieldSheetID, v))
}

// SheetIDLTE applies the LTE predicate on the "sheet_id" field.
func SheetIDLTE(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLTE(FieldSheetID, v))
}

// SheetIDContains applies the Contains predicate on the "sheet_id" field.
func SheetIDContains(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldContains(FieldSheetID, v))
}

// SheetIDHasPrefix applies the HasPrefix predicate on the "sheet_id" field.
func SheetIDHasPrefix(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldHasPrefix(FieldSheetID, v))
}

// SheetIDHasSuffix applies the HasSuffix predicate on the "sheet_id" field.
func SheetIDHasSuffix(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldHasSuffix(FieldSheetID, v))
}

// SheetIDEqualFold applies the EqualFold predicate on the "sheet_id" field.
func SheetIDEqualFold(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEqualFold(FieldSheetID, v))
}

// SheetIDContainsFold applies the ContainsFold predicate on the "sheet_id" field.
func SheetIDContainsFold(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldContainsFold(FieldSheetID, v))
}

// RowIndexEQ applies the EQ predicate on the "row_index" field.
func RowIndexEQ(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldRowIndex, v))
}

// RowIndexNEQ applies the NEQ predicate on the "row_index" field.
func RowIndexNEQ(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNEQ(FieldRowIndex, v))
}

// RowIndexIn applies the In predicate on the "row_index" field.
func RowIndexIn(vs ...int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldIn(FieldRowIndex, vs...))
}

// RowIndexNotIn applies the NotIn predicate on the "row_index" field.
func RowIndexNotIn(vs ...int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNotIn(FieldRowIndex, vs...))
}

// RowIndexGT applies the GT predicate on the "row_index" field.
func RowIndexGT(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGT(FieldRowIndex, v))
}

// RowIndexGTE applies the GTE predicate on the "row_index" field.
func RowIndexGTE(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGTE(FieldRowIndex, v))
}

// RowIndexLT applies the LT predicate on the "row_index" field.
func RowIndexLT(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLT(FieldRowIndex, v))
}

// RowIndexLTE applies the LTE predicate on the "row_index" field.
func RowIndexLTE(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLTE(FieldRowIndex, v))
}

// ColIndexEQ applies the EQ predicate on the "col_index" field.
func ColIndexEQ(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldColIndex, v))
}

// ColIndexNEQ applies the NEQ predicate on the "col_index" field.
func ColIndexNEQ(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNEQ(FieldColIndex, v))
}

// ColIndexIn applies the In predicate on the "col_index" field.
func ColIndexIn(vs ...int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldIn(FieldColIndex, vs...))
}

// ColIndexNotIn applies the NotIn predicate on the "col_index" field.
func ColIndexNotIn(vs ...int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNotIn(FieldColIndex, vs...))
}

// ColIndexGT applies the GT predicate on the "col_index" field.
func ColIndexGT(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGT(FieldColIndex, v))
}

// ColIndexGTE applies the GTE predicate on the "col_index" field.
func ColIndexGTE(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGTE(FieldColIndex, v))
}

// ColIndexLT applies the LT predicate on the "col_index" field.
func ColIndexLT(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLT(FieldColIndex, v))
}

// ColIndexLTE applies the LTE predicate on the "col_index" field.
func ColIndexLTE(v int) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLTE(FieldColIndex, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNotIn(FieldStatus, vs...))
}

// OperatorNameEQ applies the EQ predicate on the "operator_name" field.
func OperatorNameEQ(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldOperatorName, v))
}

// OperatorNameNEQ applies the NEQ predicate on the "operator_name" field.
func OperatorNameNEQ(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNEQ(FieldOperatorName, v))
}

// OperatorNameIn applies the In predicate on the "operator_name" field.
func OperatorNameIn(vs ...string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldIn(FieldOperatorName, vs...))
}

// OperatorNameNotIn applies the NotIn predicate on the "operator_name" field.
func OperatorNameNotIn(vs ...string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNotIn(FieldOperatorName, vs...))
}

// OperatorNameGT applies the GT predicate on the "operator_name" field.
func OperatorNameGT(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGT(FieldOperatorName, v))
}

// OperatorNameGTE applies the GTE predicate on the "operator_name" field.
func OperatorNameGTE(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGTE(FieldOperatorName, v))
}

// OperatorNameLT applies the LT predicate on the "operator_name" field.
func OperatorNameLT(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLT(FieldOperatorName, v))
}

// OperatorNameLTE applies the LTE predicate on the "operator_name" field.
func OperatorNameLTE(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLTE(FieldOperatorName, v))
}

// OperatorNameContains applies the Contains predicate on the "operator_name" field.
func OperatorNameContains(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldContains(FieldOperatorName, v))
}

// OperatorNameHasPrefix applies the HasPrefix predicate on the "operator_name" field.
func OperatorNameHasPrefix(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldHasPrefix(FieldOperatorName, v))
}

// OperatorNameHasSuffix applies the HasSuffix predicate on the "operator_name" field.
func OperatorNameHasSuffix(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldHasSuffix(FieldOperatorName, v))
}

// OperatorNameIsNil applies the IsNil predicate on the "operator_name" field.
func OperatorNameIsNil() predicate.CellStatus {
	return predicate.CellStatus(sql.FieldIsNull(FieldOperatorName))
}

// OperatorNameNotNil applies the NotNil predicate on the "operator_name" field.
func OperatorNameNotNil() predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNotNull(FieldOperatorName))
}

// OperatorNameEqualFold applies the EqualFold predicate on the "operator_name" field.
func OperatorNameEqualFold(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEqualFold(FieldOperatorName, v))
}

// OperatorNameContainsFold applies the ContainsFold predicate on the "operator_name" field.
func OperatorNameContainsFold(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldContainsFold(FieldOperatorName, v))
}

// StatusMessageEQ applies the EQ predicate on the "status_message" field.
func StatusMessageEQ(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldStatusMessage, v))
}

// StatusMessageNEQ applies the NEQ predicate on the "status_message" field.
func StatusMessageNEQ(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNEQ(FieldStatusMessage, v))
}

// StatusMessageIn applies the In predicate on the "status_message" field.
func StatusMessageIn(vs ...string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldIn(FieldStatusMessage, vs...))
}

// StatusMessageNotIn applies the NotIn predicate on the "status_message" field.
func StatusMessageNotIn(vs ...string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNotIn(FieldStatusMessage, vs...))
}

// StatusMessageGT applies the GT predicate on the "status_message" field.
func StatusMessageGT(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGT(FieldStatusMessage, v))
}

// StatusMessageGTE applies the GTE predicate on the "status_message" field.
func StatusMessageGTE(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGTE(FieldStatusMessage, v))
}

// StatusMessageLT applies the LT predicate on the "status_message" field.
func StatusMessageLT(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLT(FieldStatusMessage, v))
}

// StatusMessageLTE applies the LTE predicate on the "status_message" field.
func StatusMessageLTE(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLTE(FieldStatusMessage, v))
}

// StatusMessageContains applies the Contains predicate on the "status_message" field.
func StatusMessageContains(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldContains(FieldStatusMessage, v))
}

// StatusMessageHasPrefix applies the HasPrefix predicate on the "status_message" field.
func StatusMessageHasPrefix(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldHasPrefix(FieldStatusMessage, v))
}

// StatusMessageHasSuffix applies the HasSuffix predicate on the "status_message" field.
func StatusMessageHasSuffix(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldHasSuffix(FieldStatusMessage, v))
}

// StatusMessageIsNil applies the IsNil predicate on the "status_message" field.
func StatusMessageIsNil() predicate.CellStatus {
	return predicate.CellStatus(sql.FieldIsNull(FieldStatusMessage))
}

// StatusMessageNotNil applies the NotNil predicate on the "status_message" field.
func StatusMessageNotNil() predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNotNull(FieldStatusMessage))
}

// StatusMessageEqualFold applies the EqualFold predicate on the "status_message" field.
func StatusMessageEqualFold(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEqualFold(FieldStatusMessage, v))
}

// StatusMessageContainsFold applies the ContainsFold predicate on the "status_message" field.
func StatusMessageContainsFold(v string) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldContainsFold(FieldStatusMessage, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CellStatus {
	return predicate.CellStatus(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSheet applies the HasEdge predicate on the "sheet" edge.
func HasSheet() predicate.CellStatus {
	return predicate.CellStatus(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SheetTable, SheetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSheetWith applies the HasEdge predicate on the "sheet" edge with a given conditions (other predicates).
func HasSheetWith(preds ...predicate.Sheet) predicate.CellStatus {
	return predicate.CellStatus(func(s *sql.Selector) {
		step := newSheetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CellStatus) predicate.CellStatus {
	return predicate.CellStatus(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CellStatus) predicate.CellStatus {
	return predicate.CellStatus(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CellStatus) predicate.CellStatus {
	return predicate.CellStatus(sql.NotPredicates(p))
}
