// Code generated by ent, DO NOT EDIT.

package column

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rowboat-dev/rowboat/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Column {
	return predicate.Column(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Column {
	return predicate.Column(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Column {
	return predicate.Column(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Column {
	return predicate.Column(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Column {
	return predicate.Column(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Column {
	return predicate.Column(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Column {
	return predicate.Column(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Column {
	return predicate.Column(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Column {
	return predicate.Column(sql.FieldContainsFold(FieldID, id))
}

// SheetID applies equality check predicate on the "sheet_id" field. It's identical to SheetIDEQ.
func SheetID(v string) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldSheetID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldPosition, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldTitle, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldPrompt, v))
}

// MaxLength applies equality check predicate on the "max_length" field. It's identical to MaxLengthEQ.
func MaxLength(v int) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldMaxLength, v))
}

// MinLength applies equality check predicate on the "min_length" field. It's identical to MinLengthEQ.
func MinLength(v int) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldMinLength, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldDescription, v))
}

// Required applies equality check predicate on the "required" field. It's identical to RequiredEQ.
func Required(v bool) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldRequired, v))
}

// SheetIDEQ applies the EQ predicate on the "sheet_id" field.
func SheetIDEQ(v string) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldSheetID, v))
}

// SheetIDNEQ applies the NEQ predicate on the "sheet_id" field.
func SheetIDNEQ(v string) predicate.Column {
	return predicate.Column(sql.FieldNEQ(FieldSheetID, v))
}

// SheetIDIn applies the In predicate on the "sheet_id" field.
func SheetIDIn(vs ...string) predicate.Column {
	return predicate.Column(sql.FieldIn(FieldSheetID, vs...))
}

// SheetIDNotIn applies the NotIn predicate on the "sheet_id" field.
func SheetIDNotIn(vs ...string) predicate.Column {
	return predicate.Column(sql.FieldNotIn(FieldSheetID, vs...))
}

// SheetIDGT applies the GT predicate on the "sheet_id" field.
func SheetIDGT(v string) predicate.Column {
	return predicate.Column(sql.FieldGT(FieldSheetID, v))
}

// SheetIDGTE applies the GTE predicate on the "sheet_id" field.
func SheetIDGTE(v string) predicate.Column {
	return predicate.Column(sql.FieldGTE(FieldSheetID, v))
}

// SheetIDLT applies the LT predicate on the "sheet_id" field.
func SheetIDLT(v string) predicate.Column {
	return predicate.Column(sql.FieldLT(FieldSheetID, v))
}

// SheetIDLTE applies the LTE predicate on the "sheet_id" field.
func SheetIDLTE(v string) predicate.Column {
	return predicate.Column(sql.FieldLTE(FieldSheetID, v))
}

// SheetIDContains applies the Contains predicate on the "sheet_id" field.
func SheetIDContains(v string) predicate.Column {
	return predicate.Column(sql.FieldContains(FieldSheetID, v))
}

// SheetIDHasPrefix applies the HasPrefix predicate on the "sheet_id" field.
func SheetIDHasPrefix(v string) predicate.Column {
	return predicate.Column(sql.FieldHasPrefix(FieldSheetID, v))
}

// SheetIDHasSuffix applies the HasSuffix predicate on the "sheet_id" field.
func SheetIDHasSuffix(v string) predicate.Column {
	return predicate.Column(sql.FieldHasSuffix(FieldSheetID, v))
}

// SheetIDEqualFold applies the EqualFold predicate on the "sheet_id" field.
func SheetIDEqualFold(v string) predicate.Column {
	return predicate.Column(sql.FieldEqualFold(FieldSheetID, v))
}

// SheetIDContainsFold applies the ContainsFold predicate on the "sheet_id" field.
func SheetIDContainsFold(v string) predicate.Column {
	return predicate.Column(sql.FieldContainsFold(FieldSheetID, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.Column {
	return predicate.Column(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.Column {
	return predicate.Column(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.Column {
	return predicate.Column(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.Column {
	return predicate.Column(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.Column {
	return predicate.Column(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.Column {
	return predicate.Column(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.Column {
	return predicate.Column(sql.FieldLTE(FieldPosition, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Column {
	return predicate.Column(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Column {
	return predicate.Column(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Column {
	return predicate.Column(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Column {
	return predicate.Column(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Column {
	return predicate.Column(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Column {
	return predicate.Column(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Column {
	return predicate.Column(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Column {
	return predicate.Column(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Column {
	return predicate.Column(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Column {
	return predicate.Column(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Column {
	return predicate.Column(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Column {
	return predicate.Column(sql.FieldContainsFold(FieldTitle, v))
}

// DataTypeEQ applies the EQ predicate on the "data_type" field.
func DataTypeEQ(v DataType) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldDataType, v))
}

// DataTypeNEQ applies the NEQ predicate on the "data_type" field.
func DataTypeNEQ(v DataType) predicate.Column {
	return predicate.Column(sql.FieldNEQ(FieldDataType, v))
}

// DataTypeIn applies the In predicate on the "data_type" field.
func DataTypeIn(vs ...DataType) predicate.Column {
	return predicate.Column(sql.FieldIn(FieldDataType, vs...))
}

// DataTypeNotIn applies the NotIn predicate on the "data_type" field.
func DataTypeNotIn(vs ...DataType) predicate.Column {
	return predicate.Column(sql.FieldNotIn(FieldDataType, vs...))
}

// OperatorTypeEQ applies the EQ predicate on the "operator_type" field.
func OperatorTypeEQ(v OperatorType) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldOperatorType, v))
}

// OperatorTypeNEQ applies the NEQ predicate on the "operator_type" field.
func OperatorTypeNEQ(v OperatorType) predicate.Column {
	return predicate.Column(sql.FieldNEQ(FieldOperatorType, v))
}

// OperatorTypeIn applies the In predicate on the "operator_type" field.
func OperatorTypeIn(vs ...OperatorType) predicate.Column {
	return predicate.Column(sql.FieldIn(FieldOperatorType, vs...))
}

// OperatorTypeNotIn applies the NotIn predicate on the "operator_type" field.
func OperatorTypeNotIn(vs ...OperatorType) predicate.Column {
	return predicate.Column(sql.FieldNotIn(FieldOperatorType, vs...))
}

// OperatorTypeIsNil applies the IsNil predicate on the "operator_type" field.
func OperatorTypeIsNil() predicate.Column {
	return predicate.Column(sql.FieldIsNull(FieldOperatorType))
}

// OperatorTypeNotNil applies the NotNil predicate on the "operator_type" field.
func OperatorTypeNotNil() predicate.Column {
	return predicate.Column(sql.FieldNotNull(FieldOperatorType))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Column {
	return predicate.Column(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Column {
	return predicate.Column(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Column {
	return predicate.Column(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Column {
	return predicate.Column(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Column {
	return predicate.Column(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Column {
	return predicate.Column(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Column {
	return predicate.Column(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Column {
	return predicate.Column(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Column {
	return predicate.Column(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Column {
	return predicate.Column(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptIsNil applies the IsNil predicate on the "prompt" field.
func PromptIsNil() predicate.Column {
	return predicate.Column(sql.FieldIsNull(FieldPrompt))
}

// PromptNotNil applies the NotNil predicate on the "prompt" field.
func PromptNotNil() predicate.Column {
	return predicate.Column(sql.FieldNotNull(FieldPrompt))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Column {
	return predicate.Column(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Column {
	return predicate.Column(sql.FieldContainsFold(FieldPrompt, v))
}

// OperatorConfigIsNil applies the IsNil predicate on the "operator_config" field.
func OperatorConfigIsNil() predicate.Column {
	return predicate.Column(sql.FieldIsNull(FieldOperatorConfig))
}

// OperatorConfigNotNil applies the NotNil predicate on the "operator_config" field.
func OperatorConfigNotNil() predicate.Column {
	return predicate.Column(sql.FieldNotNull(FieldOperatorConfig))
}

// MaxLengthEQ applies the EQ predicate on the "max_length" field.
func MaxLengthEQ(v int) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldMaxLength, v))
}

// MaxLengthNEQ applies the NEQ predicate on the "max_length" field.
func MaxLengthNEQ(v int) predicate.Column {
	return predicate.Column(sql.FieldNEQ(FieldMaxLength, v))
}

// MaxLengthIn applies the In predicate on the "max_length" field.
func MaxLengthIn(vs ...int) predicate.Column {
	return predicate.Column(sql.FieldIn(FieldMaxLength, vs...))
}

// MaxLengthNotIn applies the NotIn predicate on the "max_length" field.
func MaxLengthNotIn(vs ...int) predicate.Column {
	return predicate.Column(sql.FieldNotIn(FieldMaxLength, vs...))
}

// MaxLengthGT applies the GT predicate on the "max_length" field.
func MaxLengthGT(v int) predicate.Column {
	return predicate.Column(sql.FieldGT(FieldMaxLength, v))
}

// MaxLengthGTE applies the GTE predicate on the "max_length" field.
func MaxLengthGTE(v int) predicate.Column {
	return predicate.Column(sql.FieldGTE(FieldMaxLength, v))
}

// MaxLengthLT applies the LT predicate on the "max_length" field.
func MaxLengthLT(v int) predicate.Column {
	return predicate.Column(sql.FieldLT(FieldMaxLength, v))
}

// MaxLengthLTE applies the LTE predicate on the "max_length" field.
func MaxLengthLTE(v int) predicate.Column {
	return predicate.Column(sql.FieldLTE(FieldMaxLength, v))
}

// MaxLengthIsNil applies the IsNil predicate on the "max_length" field.
func MaxLengthIsNil() predicate.Column {
	return predicate.Column(sql.FieldIsNull(FieldMaxLength))
}

// MaxLengthNotNil applies the NotNil predicate on the "max_length" field.
func MaxLengthNotNil() predicate.Column {
	return predicate.Column(sql.FieldNotNull(FieldMaxLength))
}

// MinLengthEQ applies the EQ predicate on the "min_length" field.
func MinLengthEQ(v int) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldMinLength, v))
}

// MinLengthNEQ applies the NEQ predicate on the "min_length" field.
func MinLengthNEQ(v int) predicate.Column {
	return predicate.Column(sql.FieldNEQ(FieldMinLength, v))
}

// MinLengthIn applies the In predicate on the "min_length" field.
func MinLengthIn(vs ...int) predicate.Column {
	return predicate.Column(sql.FieldIn(FieldMinLength, vs...))
}

// MinLengthNotIn applies the NotIn predicate on the "min_length" field.
func MinLengthNotIn(vs ...int) predicate.Column {
	return predicate.Column(sql.FieldNotIn(FieldMinLength, vs...))
}

// MinLengthGT applies the GT predicate on the "min_length" field.
func MinLengthGT(v int) predicate.Column {
	return predicate.Column(sql.FieldGT(FieldMinLength, v))
}

// MinLengthGTE applies the GTE predicate on the "min_length" field.
func MinLengthGTE(v int) predicate.Column {
	return predicate.Column(sql.FieldGTE(FieldMinLength, v))
}

// MinLengthLT applies the LT predicate on the "min_length" field.
func MinLengthLT(v int) predicate.Column {
	return predicate.Column(sql.FieldLT(FieldMinLength, v))
}

// MinLengthLTE applies the LTE predicate on the "min_length" field.
func MinLengthLTE(v int) predicate.Column {
	return predicate.Column(sql.FieldLTE(FieldMinLength, v))
}

// MinLengthIsNil applies the IsNil predicate on the "min_length" field.
func MinLengthIsNil() predicate.Column {
	return predicate.Column(sql.FieldIsNull(FieldMinLength))
}

// MinLengthNotNil applies the NotNil predicate on the "min_length" field.
func MinLengthNotNil() predicate.Column {
	return predicate.Column(sql.FieldNotNull(FieldMinLength))
}

// ExamplesIsNil applies the IsNil predicate on the "examples" field.
func ExamplesIsNil() predicate.Column {
	return predicate.Column(sql.FieldIsNull(FieldExamples))
}

// ExamplesNotNil applies the NotNil predicate on the "examples" field.
func ExamplesNotNil() predicate.Column {
	return predicate.Column(sql.FieldNotNull(FieldExamples))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Column {
	return predicate.Column(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Column {
	return predicate.Column(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Column {
	return predicate.Column(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Column {
	return predicate.Column(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Column {
	return predicate.Column(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Column {
	return predicate.Column(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Column {
	return predicate.Column(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Column {
	return predicate.Column(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Column {
	return predicate.Column(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Column {
	return predicate.Column(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Column {
	return predicate.Column(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Column {
	return predicate.Column(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Column {
	return predicate.Column(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Column {
	return predicate.Column(sql.FieldContainsFold(FieldDescription, v))
}

// RequiredEQ applies the EQ predicate on the "required" field.
func RequiredEQ(v bool) predicate.Column {
	return predicate.Column(sql.FieldEQ(FieldRequired, v))
}

// RequiredNEQ applies the NEQ predicate on the "required" field.
func RequiredNEQ(v bool) predicate.Column {
	return predicate.Column(sql.FieldNEQ(FieldRequired, v))
}

// HasSheet applies the HasEdge predicate on the "sheet" edge.
func HasSheet() predicate.Column {
	return predicate.Column(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SheetTable, SheetColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSheetWith applies the HasEdge predicate on the "sheet" edge with a given conditions (other predicates).
func HasSheetWith(preds ...predicate.Sheet) predicate.Column {
	return predicate.Column(func(s *sql.Selector) {
		step := newSheetStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Column) predicate.Column {
	return predicate.Column(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Column) predicate.Column {
	return predicate.Column(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Column) predicate.Column {
	return predicate.Column(sql.NotPredicates(p))
}
